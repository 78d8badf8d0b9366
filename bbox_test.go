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

func TestBBoxIsTransmeridian(t *testing.T) {
	normal := BBox{North: 10, South: -10, East: 20, West: -20}
	require.False(t, normal.IsTransmeridian())

	wrapped := BBox{North: 10, South: -10, East: -170, West: 170}
	require.True(t, wrapped.IsTransmeridian())
}

func TestBBoxContains(t *testing.T) {
	b := BBox{North: 10, South: -10, East: 20, West: -20}
	require.True(t, b.Contains(LonLat{Longitude: 0, Latitude: 0}))
	require.False(t, b.Contains(LonLat{Longitude: 30, Latitude: 0}))
	require.False(t, b.Contains(LonLat{Longitude: 0, Latitude: 20}))
}

func TestBBoxContainsTransmeridian(t *testing.T) {
	b := BBox{North: 10, South: -10, East: -170, West: 170}
	require.True(t, b.Contains(LonLat{Longitude: 175, Latitude: 0}))
	require.True(t, b.Contains(LonLat{Longitude: -175, Latitude: 0}))
	require.False(t, b.Contains(LonLat{Longitude: 0, Latitude: 0}))
}

func TestBBoxCenter(t *testing.T) {
	b := BBox{North: 10, South: -10, East: 20, West: -20}
	c := b.Center()
	require.InDelta(t, 0.0, c.Latitude, 1e-9)
	require.InDelta(t, 0.0, c.Longitude, 1e-9)
}

func TestBBoxEquals(t *testing.T) {
	a := BBox{North: 10, South: -10, East: 20, West: -20}
	b := BBox{North: 10, South: -10, East: 20, West: -20}
	c := BBox{North: 5, South: -10, East: 20, West: -20}
	require.True(t, a.Equals(b))
	require.False(t, a.Equals(c))
}

func TestBBoxCellEstimateGrowsWithResolution(t *testing.T) {
	b := BBox{North: 10, South: -10, East: 20, West: -20}

	coarse, err := b.CellEstimate(2)
	require.NoError(t, err)
	require.GreaterOrEqual(t, coarse, 1)

	fine, err := b.CellEstimate(4)
	require.NoError(t, err)
	require.Greater(t, fine, coarse)
}

func TestBBoxCellEstimateRejectsInvalidResolution(t *testing.T) {
	b := BBox{North: 10, South: -10, East: 20, West: -20}
	_, err := b.CellEstimate(-5)
	require.Error(t, err)
}
