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
//
// The IVEA (Icosahedral Vertex Equal Area) projection below is ported
// from the DGGAL project's icoVertexGreatCircle.ec (BSD-3-Clause, Ecere
// Corporation) via original_source/src/projections/polyhedral.rs: a
// Face-plane point's barycentric coordinates relative to a FaceTriangle
// are recovered on the sphere from spherical sub-triangle AREA ratios,
// not from a plain double slerp, since area (not arc length) is what the
// projection must preserve.

package a5

import "math"

// safeAcos computes acos(1 - 2*x*x), the form polyhedralInverse needs
// when going from a chord-length ratio to its subtended angle, with a
// small-x series substituted below 1e-3 where acos(1-2x^2) loses
// precision to catastrophic cancellation.
func safeAcos(x float64) float64 {
	if x < 1e-3 {
		return 2*x + x*x*x/3.0
	}
	return math.Acos(1 - 2*x*x)
}

// polyhedralForward maps a Face-plane point to its corresponding point on
// the sphere, given the FaceTriangle it lies in and the matching
// SphericalTriangle. It locates the great-circle intersection p of edge
// BC with the line through A and v (via quadrupleProduct, stable even as
// v approaches A), then recovers v's barycentric coordinates from the
// ratio of spherical sub-triangle areas ABP/ABC and ACP/ABC scaled by
// h = |Av|/|Ap| — the construction that makes equal-area cells equal-area
// on the sphere, rather than a plain linear interpolation.
func polyhedralForward(ft FaceTriangle, st SphericalTriangle, v Cartesian) Face {
	a, b, c := st.V0, st.V1, st.V2
	triangleShape := NewSphericalTriangleShape(st)

	z := normalize(subtract(v, a))
	p := normalize(quadrupleProduct(a, z, b, c))

	h := vectorDifference(a, v) / vectorDifference(a, p)
	areaABC := triangleShape.getArea()
	scaledArea := h / areaABC

	bc := Barycentric{
		A: 1.0 - h,
		B: scaledArea * NewSphericalTriangleShape(SphericalTriangle{V0: a, V1: p, V2: c}).getArea(),
		C: scaledArea * NewSphericalTriangleShape(SphericalTriangle{V0: a, V1: b, V2: p}).getArea(),
	}
	return barycentricToFace(ft, bc)
}

// polyhedralInverse is the inverse of polyhedralForward: given a
// Face-plane point, recovers the point on the sphere with the same
// equal-area barycentric coordinates relative to st. It solves for the
// fraction r = w/h of the way around edge BC the projection ray crosses
// via the spherical law of cosines (cc, f, g below), locating that edge
// point with slerp, then steps in from A along the great circle through
// that edge point by t = safeAcos(h*k)/safeAcos(k).
func polyhedralInverse(ft FaceTriangle, st SphericalTriangle, facePoint Face) Cartesian {
	a, b, c := st.V0, st.V1, st.V2
	triangleShape := NewSphericalTriangleShape(st)
	bc := faceToBarycentric(ft, facePoint)

	const threshold = 1.0 - 1e-14
	switch {
	case bc.A > threshold:
		return a
	case bc.B > threshold:
		return b
	case bc.C > threshold:
		return c
	}

	c1 := cross(b, c)
	areaABC := triangleShape.getArea()
	h := 1.0 - bc.A
	r := bc.C / h
	alpha := r * areaABC
	s := math.Sin(alpha)
	halfC := math.Sin(alpha / 2.0)
	cc := 2.0 * halfC * halfC

	c01 := dot(a, b)
	c12 := dot(b, c)
	c20 := dot(c, a)
	s12 := length(c1)

	tripleABC := dot(a, c1)
	f := s*tripleABC + cc*(c01*c12-c20)
	g := cc * s12 * (1.0 + c01)
	q := (2.0 / math.Acos(c12)) * math.Atan2(g, f)
	p := slerp(b, c, q)
	k := vectorDifference(a, p)
	t := safeAcos(h*k) / safeAcos(k)
	return slerp(a, p, t)
}
