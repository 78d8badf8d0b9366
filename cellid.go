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

// CellID is a bit-packed identifier for an A5 cell: the top 6 bits select
// one of the 12 dodecahedron origins and, from resolution 1 up, one of 5
// quintant segments (as 5*origin+segment); the remaining bits hold quaternary Hilbert-curve
// digits, two bits per resolution step from FirstHilbertResolution up.
// The resolution itself isn't stored explicitly — it's recovered as the
// bit position of the lowest set '1' bit, the "resolution marker".
type CellID uint64

const (
	// FirstHilbertResolution is the first resolution whose cells are
	// addressed by the quaternary Hilbert curve rather than directly by
	// origin/segment selection.
	FirstHilbertResolution = 2

	// MaxResolution is the finest resolution a CellID can address.
	MaxResolution = 30

	// HilbertStartBit is the number of bits below the origin/segment
	// selector: 64 bits total, less the top 6 bits reserved for it. The
	// selector is shifted left by this amount, and the Hilbert digits and
	// the resolution marker bit sit beneath it.
	HilbertStartBit = 58

	// removalMask clears the top 6 bits (origin/segment selector),
	// leaving only the Hilbert-curve and marker bits.
	removalMask uint64 = 0x03ffffffffffffff
)

// WorldCell is the canonical CellID of resolution -1: the entire globe,
// represented as all-zero bits. getResolution's all-zero special case is
// preserved from upstream rather than "fixed" to a more conventional
// sentinel, per spec section 9.
const WorldCell CellID = 0

// getResolution recovers the resolution of a cell by walking up from bit 1
// until it finds the first nonzero bit, moving one bit at a time below
// FirstHilbertResolution and two bits at a time (one per quaternary digit)
// at or above it.
func getResolution(cell CellID) int {
	resolution := MaxResolution - 1
	shifted := uint64(cell) >> 1
	for resolution > -1 && shifted&1 == 0 {
		resolution--
		if resolution < FirstHilbertResolution {
			shifted >>= 1
		} else {
			shifted >>= 2
		}
	}
	return resolution
}

// serialize packs an origin id, a quintant segment (meaningful once
// resolution >= 1, expressed relative to the origin's own layout — see
// Origin.FirstQuintant), and a Hilbert curve index s into a CellID.
func serialize(originID, segment int, s uint64, resolution int) CellID {
	if resolution < 0 {
		return WorldCell
	}

	r := resolution + 1
	if resolution >= FirstHilbertResolution {
		r = 2*(resolution-FirstHilbertResolution+1) + 1
	}

	var v uint64
	if resolution == 0 {
		v = uint64(originID) << HilbertStartBit
	} else {
		firstQuintant := Origins()[originID].FirstQuintant
		segmentN := (segment + 5 - firstQuintant) % 5
		v = uint64(5*originID+segmentN) << HilbertStartBit
	}

	if resolution >= FirstHilbertResolution {
		h := resolution - FirstHilbertResolution + 1
		v += s << uint(HilbertStartBit-2*h)
	}

	v |= uint64(1) << uint(HilbertStartBit-r)

	return CellID(v)
}

// deserialize splits a CellID back into its origin id, quintant segment
// (valid once resolution >= 1), Hilbert curve index s, and resolution.
func deserialize(cell CellID) (originID, segment int, s uint64, resolution int) {
	resolution = getResolution(cell)
	if resolution < 0 {
		return 0, 0, 0, resolution
	}

	v := uint64(cell)
	top6 := int(v >> HilbertStartBit)

	if resolution == 0 {
		return top6, 0, 0, resolution
	}

	originID = top6 / 5
	firstQuintant := Origins()[originID].FirstQuintant
	segment = (top6%5 + firstQuintant) % 5

	if resolution < FirstHilbertResolution {
		return originID, segment, 0, resolution
	}

	h := resolution - FirstHilbertResolution + 1
	s = (v & removalMask) >> uint(HilbertStartBit-2*h)

	return originID, segment, s, resolution
}

// getNumChildren reports how many descendants a cell at current resolution
// has at target resolution (target >= current), or 1 if current == target.
func getNumChildren(current, target int) uint64 {
	if current == target {
		return 1
	}

	originCount := uint64(1)
	if current == -1 {
		originCount = 12
	}

	segmentCount := uint64(1)
	if (current == -1 && target > 0) || current == 0 {
		segmentCount = 5
	}

	base := current
	if base < FirstHilbertResolution-1 {
		base = FirstHilbertResolution - 1
	}
	diff := target - base
	childrenCount := uint64(1)
	if diff > 0 {
		childrenCount = ipowU64(4, diff)
	}

	return originCount * segmentCount * childrenCount
}

// CellToParent returns the ancestor of cell at the given resolution.
func CellToParent(cell CellID, resolution int) (CellID, error) {
	originID, segment, s, currentRes := deserialize(cell)
	if resolution < -1 || resolution > currentRes {
		return 0, ErrInvalidResolution
	}
	if resolution == currentRes {
		return cell, nil
	}
	if resolution == -1 {
		return WorldCell, nil
	}

	diff := currentRes - resolution
	return serialize(originID, segment, s>>uint(2*diff), resolution), nil
}

// CellToChildren returns every descendant of cell at the given resolution,
// in Hilbert-curve order.
func CellToChildren(cell CellID, resolution int) ([]CellID, error) {
	originID, segment, s, currentRes := deserialize(cell)
	if resolution < currentRes || resolution > MaxResolution {
		return nil, ErrInvalidResolution
	}
	if resolution == currentRes {
		return []CellID{cell}, nil
	}

	originIDs := []int{originID}
	if currentRes == -1 {
		originIDs = []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	}

	segments := []int{segment}
	if (currentRes == -1 && resolution > 0) || currentRes == 0 {
		segments = []int{0, 1, 2, 3, 4}
	}

	base := currentRes
	if base < FirstHilbertResolution-1 {
		base = FirstHilbertResolution - 1
	}
	diff := resolution - base
	childrenCount := uint64(1)
	shiftedS := s
	if diff > 0 {
		childrenCount = ipowU64(4, diff)
		shiftedS = s << uint(2*diff)
	}

	children := make([]CellID, 0, uint64(len(originIDs))*uint64(len(segments))*childrenCount)
	for _, oid := range originIDs {
		for _, seg := range segments {
			for i := uint64(0); i < childrenCount; i++ {
				children = append(children, serialize(oid, seg, shiftedS+i, resolution))
			}
		}
	}

	return children, nil
}

// GetRes0Cells returns the 12 resolution-0 cells, one per dodecahedron
// origin.
func GetRes0Cells() []CellID {
	cells, _ := CellToChildren(WorldCell, 0)
	return cells
}
