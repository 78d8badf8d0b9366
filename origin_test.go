// Copyright 2022  Il Sub Bang
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package a5

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOriginsAreDistinct(t *testing.T) {
	origins := Origins()
	require.Len(t, origins, 12)

	seen := make(map[int]bool, 12)
	for _, o := range origins {
		require.False(t, seen[o.ID], "duplicate origin id %d", o.ID)
		seen[o.ID] = true
	}
}

func TestFindNearestOriginMatchesOwnAxis(t *testing.T) {
	for _, o := range Origins() {
		nearest := findNearestOrigin(o.Axis)
		require.Equal(t, o.ID, nearest.ID, "origin %d's own axis should be its own nearest origin", o.ID)
	}
}

func TestIsNearestOriginAgreesWithFindNearestOrigin(t *testing.T) {
	for _, o := range Origins() {
		point := toSpherical(o.Axis)
		require.True(t, isNearestOrigin(point, o))

		nearest := findNearestOrigin(o.Axis)
		for _, other := range Origins() {
			if other.ID == nearest.ID {
				continue
			}
			require.False(t, isNearestOrigin(point, other))
		}
	}
}

func TestQuintantSegmentRoundTrip(t *testing.T) {
	for _, o := range Origins() {
		for quintant := 0; quintant < 5; quintant++ {
			segment, orientation := quintantToSegment(o, quintant)
			require.GreaterOrEqual(t, segment, 0)
			require.Less(t, segment, 5)

			roundTripped, roundTrippedOrientation := segmentToQuintant(o, segment)
			require.Equal(t, quintant, roundTripped)
			require.Equal(t, orientation, roundTrippedOrientation)
		}
	}
}

func TestQuintantToSegmentIsBijective(t *testing.T) {
	for _, o := range Origins() {
		seen := make(map[int]bool, 5)
		for quintant := 0; quintant < 5; quintant++ {
			segment, _ := quintantToSegment(o, quintant)
			require.False(t, seen[segment], "origin %d: quintant %d collided on segment %d", o.ID, quintant, segment)
			seen[segment] = true
		}
	}
}
