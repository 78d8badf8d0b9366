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

func TestCompactUncompactRoundTrip(t *testing.T) {
	var all []CellID
	for _, root := range GetRes0Cells() {
		children, err := CellToChildren(root, 1)
		require.NoError(t, err)
		all = append(all, children...)
	}
	require.Len(t, all, 60)

	compacted, err := Compact(all)
	require.NoError(t, err)
	require.Len(t, compacted, 12, "60 resolution-1 cells, one full group per origin, should compact to 12 roots")

	uncompacted, err := Uncompact(compacted, 1)
	require.NoError(t, err)
	require.Len(t, uncompacted, 60)

	want := make(map[CellID]bool, len(all))
	for _, c := range all {
		want[c] = true
	}
	for _, c := range uncompacted {
		require.True(t, want[c], "uncompact produced a cell not in the original set: %v", c)
	}
}

func TestCompactRejectsDuplicates(t *testing.T) {
	root := GetRes0Cells()[0]
	_, err := Compact([]CellID{root, root})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCompactPartialGroupStaysUncompacted(t *testing.T) {
	root := GetRes0Cells()[0]
	children, err := CellToChildren(root, 1)
	require.NoError(t, err)

	partial := children[:len(children)-1]
	compacted, err := Compact(partial)
	require.NoError(t, err)
	require.Len(t, compacted, len(partial))
}
