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

var allOrientations = []Orientation{
	OrientationUV, OrientationVU, OrientationUW, OrientationWU, OrientationVW, OrientationWV,
}

func TestSToAnchorToSRoundTrip(t *testing.T) {
	for _, o := range allOrientations {
		for _, levels := range []int{1, 2, 3, 4} {
			total := uint64(1) << uint(2*levels)
			for s := uint64(0); s < total; s++ {
				a := sToAnchor(s, levels, o)
				got := ijToS(a.offset, levels, o)
				require.Equal(t, s, got, "orientation %v levels %d: s=%d round-tripped to %d via offset %+v", o, levels, s, got, a.offset)
			}
		}
	}
}

func TestSToAnchorProducesDistinctAnchors(t *testing.T) {
	type anchorKey struct {
		offset IJ
		flips  [2]Flip
	}
	for _, o := range allOrientations {
		const levels = 3
		total := uint64(1) << uint(2*levels)
		seen := make(map[anchorKey]bool, total)
		for s := uint64(0); s < total; s++ {
			a := sToAnchor(s, levels, o)
			key := anchorKey{offset: a.offset, flips: a.flips}
			require.False(t, seen[key], "orientation %v: duplicate anchor %+v flips %v at s=%d", o, a.offset, a.flips, s)
			seen[key] = true
		}
	}
}

func TestHilbertLevels(t *testing.T) {
	require.Equal(t, 0, hilbertLevels(0))
	require.Equal(t, 0, hilbertLevels(1))
	require.Equal(t, 1, hilbertLevels(FirstHilbertResolution))
	require.Equal(t, 2, hilbertLevels(FirstHilbertResolution+1))
}
