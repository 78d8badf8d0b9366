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

func TestGetRes0CellsAreDistinct(t *testing.T) {
	cells := GetRes0Cells()
	require.Len(t, cells, 12)

	seen := make(map[CellID]bool, 12)
	for _, c := range cells {
		require.False(t, seen[c], "duplicate resolution-0 cell %v", c)
		seen[c] = true
		require.Equal(t, 0, getResolution(c))
	}
}

func TestWorldCellResolution(t *testing.T) {
	require.Equal(t, -1, getResolution(WorldCell))
}

func TestCellToParentRoundTrip(t *testing.T) {
	for _, root := range GetRes0Cells() {
		children, err := CellToChildren(root, 2)
		require.NoError(t, err)
		for _, child := range children {
			parent, err := CellToParent(child, 0)
			require.NoError(t, err)
			require.Equal(t, root, parent)
		}
	}
}

func TestCellToParentSameResolution(t *testing.T) {
	root := GetRes0Cells()[0]
	parent, err := CellToParent(root, 0)
	require.NoError(t, err)
	require.Equal(t, root, parent)
}

func TestCellToParentRejectsFinerResolution(t *testing.T) {
	root := GetRes0Cells()[0]
	_, err := CellToParent(root, 1)
	require.ErrorIs(t, err, ErrInvalidResolution)
}

func TestCellToChildrenCount(t *testing.T) {
	root := GetRes0Cells()[0]
	children, err := CellToChildren(root, 1)
	require.NoError(t, err)
	require.Len(t, children, 5)

	grandchildren, err := CellToChildren(root, 2)
	require.NoError(t, err)
	require.Len(t, grandchildren, 20)
}

func TestHexStringRoundTrip(t *testing.T) {
	for _, c := range GetRes0Cells() {
		s := c.String()
		require.Len(t, s, 16)
		parsed, err := GetCellIDFromHex(s)
		require.NoError(t, err)
		require.Equal(t, c, parsed)
	}
}
