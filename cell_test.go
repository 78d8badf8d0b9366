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

func TestLonLatToCellResolution0(t *testing.T) {
	cell, err := LonLatToCell(LonLat{Longitude: 0, Latitude: 90}, 0)
	require.NoError(t, err)
	require.Equal(t, 0, getResolution(cell))
}

func TestLonLatToCellNeverErrorsOnFiniteInput(t *testing.T) {
	points := []LonLat{
		{Longitude: 0, Latitude: 0},
		{Longitude: 179.9, Latitude: 45},
		{Longitude: -179.9, Latitude: -45},
		{Longitude: 90, Latitude: 89},
		{Longitude: -90, Latitude: -89},
	}
	for _, p := range points {
		_, err := LonLatToCell(p, 3)
		require.NoError(t, err)
	}
}

func TestCellToLonLatWithinRange(t *testing.T) {
	for _, root := range GetRes0Cells() {
		ll, err := CellToLonLat(root)
		require.NoError(t, err)
		require.GreaterOrEqual(t, ll.Latitude, -90.0)
		require.LessOrEqual(t, ll.Latitude, 90.0)
		require.GreaterOrEqual(t, ll.Longitude, -180.0)
		require.LessOrEqual(t, ll.Longitude, 180.0)
	}
}

func TestCellToBoundaryIsClosedRing(t *testing.T) {
	root := GetRes0Cells()[0]
	boundary, err := CellToBoundary(root, CellToBoundaryOptions{Segments: 1})
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(boundary), 2)
	require.Equal(t, boundary[0], boundary[len(boundary)-1])
}

func TestCellToBoundaryRejectsWorldCell(t *testing.T) {
	_, err := CellToBoundary(WorldCell, CellToBoundaryOptions{})
	require.ErrorIs(t, err, ErrInvalidCell)
}

func TestGetCellIDFromHexRejectsGarbage(t *testing.T) {
	_, err := GetCellIDFromHex("not-hex")
	require.ErrorIs(t, err, ErrInvalidInput)
}
