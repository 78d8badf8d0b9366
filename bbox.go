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

import "math"

// BBox is a geographic bounding box, coordinates in decimal degrees.
type BBox struct {
	North float64
	South float64
	East  float64
	West  float64
}

// IsTransmeridian reports whether the bounding box crosses the
// antimeridian.
func (b BBox) IsTransmeridian() bool {
	return b.East < b.West
}

// Center returns the bounding box's center point.
func (b BBox) Center() LonLat {
	east := b.East
	if b.IsTransmeridian() {
		east += 360.0
	}
	return LonLat{
		Latitude:  (b.North + b.South) / 2.0,
		Longitude: constrainLongitude((east + b.West) / 2.0),
	}
}

// Contains reports whether point lies within the bounding box.
func (b BBox) Contains(point LonLat) bool {
	if point.Latitude < b.South || point.Latitude > b.North {
		return false
	}
	if b.IsTransmeridian() {
		return point.Longitude >= b.West || point.Longitude <= b.East
	}
	return point.Longitude >= b.West && point.Longitude <= b.East
}

// Equals reports whether b and o describe the same bounding box.
func (b BBox) Equals(o BBox) bool {
	return b.North == o.North && b.South == o.South && b.East == o.East && b.West == o.West
}

// CellEstimate returns an estimated number of cells, at the given
// resolution, needed to cover the bounding box. It uses the (constant,
// since the projection is equal-area) per-cell area rather than the
// upstream's pentagon-radius-based hexagon estimate, since A5 cells don't
// have a meaningful "radius" the way H3's near-regular hexagons do.
func (b BBox) CellEstimate(resolution int) (int, error) {
	area, err := CellArea(resolution)
	if err != nil {
		return 0, err
	}

	latSpan := DegsToRads(b.North - b.South)
	lonSpan := DegsToRads(b.East - b.West)
	if b.IsTransmeridian() {
		lonSpan = DegsToRads(360.0 - (b.West - b.East))
	}

	midLat := DegsToRads(b.Center().Latitude)
	bboxAreaM2 := latSpan * lonSpan * math.Cos(midLat) * AuthalicRadius * AuthalicRadius

	estimate := int(math.Ceil(math.Abs(bboxAreaM2) / area))
	if estimate < 1 {
		estimate = 1
	}
	return estimate, nil
}
