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

import "sort"

// Compact replaces any run of sibling cells that together cover their
// parent with that parent, recursively, producing the smallest set of
// cells covering the same area as cells. Input cells need not be at a
// uniform resolution, and duplicates are rejected.
func Compact(cells []CellID) ([]CellID, error) {
	seen := make(map[CellID]struct{}, len(cells))
	working := make([]CellID, 0, len(cells))
	for _, c := range cells {
		if _, dup := seen[c]; dup {
			return nil, ErrInvalidInput
		}
		seen[c] = struct{}{}
		working = append(working, c)
	}

	for {
		byParent := make(map[CellID][]CellID)
		changed := false

		for _, c := range working {
			r := getResolution(c)
			if r <= 0 {
				continue
			}
			parent, err := CellToParent(c, r-1)
			if err != nil {
				continue
			}
			group, ok := byParent[parent]
			if !ok {
				group = nil
			}
			group = append(group, c)
			byParent[parent] = group
		}

		next := make([]CellID, 0, len(working))
		grouped := make(map[CellID]bool)

		for parent, group := range byParent {
			want := int(getNumChildren(getResolution(parent), getResolution(group[0])))
			if len(group) != want {
				continue
			}
			dedup := make(map[CellID]struct{}, len(group))
			ok := true
			for _, g := range group {
				if _, dup := dedup[g]; dup {
					ok = false
					break
				}
				dedup[g] = struct{}{}
			}
			if !ok {
				continue
			}
			for _, g := range group {
				grouped[g] = true
			}
			next = append(next, parent)
			changed = true
		}

		for _, c := range working {
			if !grouped[c] {
				next = append(next, c)
			}
		}

		working = next
		if !changed {
			break
		}
	}

	sort.Slice(working, func(i, j int) bool { return working[i] < working[j] })
	return working, nil
}

// Uncompact expands every cell in cells to resolution, returning the full
// set of descendants. Cells already finer than resolution are an error.
func Uncompact(cells []CellID, resolution int) ([]CellID, error) {
	out := make([]CellID, 0, len(cells))
	for _, c := range cells {
		r := getResolution(c)
		if r > resolution {
			return nil, ErrInvalidResolution
		}
		children, err := CellToChildren(c, resolution)
		if err != nil {
			return nil, err
		}
		out = append(out, children...)
	}
	return out, nil
}
