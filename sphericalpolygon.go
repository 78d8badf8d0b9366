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

// SphericalPolygonShape is a closed polygon of unit vectors on the
// sphere, with lazily computed, memoized area.
type SphericalPolygonShape struct {
	vertices []Cartesian
	area     *float64
}

// NewSphericalPolygonShape wraps vertices as a SphericalPolygonShape.
func NewSphericalPolygonShape(vertices []Cartesian) *SphericalPolygonShape {
	return &SphericalPolygonShape{vertices: vertices}
}

// getBoundary samples the polygon boundary at nSegments points per edge,
// via great-circle (slerp) interpolation. If closedRing is true the first
// point is repeated at the end.
func (s *SphericalPolygonShape) getBoundary(nSegments int, closedRing bool) []Cartesian {
	n := len(s.vertices)
	var out []Cartesian
	for i := 0; i < n; i++ {
		a := s.vertices[i]
		b := s.vertices[(i+1)%n]
		for k := 0; k < nSegments; k++ {
			t := float64(k) / float64(nSegments)
			out = append(out, slerp(a, b, t))
		}
	}
	if closedRing && len(out) > 0 {
		out = append(out, out[0])
	}
	return out
}

// getTransformedVertices returns, for vertex index t, the vertex itself
// and the vectors from it to its two neighbors.
func (s *SphericalPolygonShape) getTransformedVertices(t int) (vertex, va, vb Cartesian) {
	n := len(s.vertices)
	prev := s.vertices[(t-1+n)%n]
	next := s.vertices[(t+1)%n]
	vertex = s.vertices[t]
	va = subtract(prev, vertex)
	vb = subtract(next, vertex)
	return
}

// containsPoint reports whether point lies inside the spherical polygon,
// via the "necessary strike" test: point is inside iff, for every edge,
// the great circle through that edge doesn't separate point from the
// polygon's interior side.
func (s *SphericalPolygonShape) containsPoint(point Cartesian) bool {
	n := len(s.vertices)
	minStrike := math.Inf(1)
	for i := 0; i < n; i++ {
		a := s.vertices[i]
		b := s.vertices[(i+1)%n]
		normal := cross(a, b)
		strike := dot(normal, point)
		if strike < minStrike {
			minStrike = strike
		}
	}
	return minStrike >= -1e-9
}

// getArea computes the polygon's spherical area by fanning it into
// triangles around the normalized sum of its vertices.
func (s *SphericalPolygonShape) getArea() float64 {
	if s.area != nil {
		return *s.area
	}

	center := Cartesian{}
	for _, v := range s.vertices {
		center = add3(center, v)
	}
	center = normalize(center)

	n := len(s.vertices)
	total := 0.0
	for i := 0; i < n; i++ {
		a := s.vertices[i]
		b := s.vertices[(i+1)%n]
		total += getTriangleArea(center, a, b)
	}

	s.area = &total
	return total
}

// getTriangleArea computes the spherical excess area of triangle (a, b,
// c) via the midpoint-based triple-product formula, with a small-angle
// fallback (sin(x) ~= x) to avoid cancellation for near-degenerate
// triangles.
func getTriangleArea(a, b, c Cartesian) float64 {
	s := tripleProduct(a, b, c)
	if math.Abs(s) < 1e-8 {
		return 2 * s
	}

	denom := 1 + dot(a, b) + dot(b, c) + dot(c, a)
	return 2 * math.Atan2(s, denom)
}
