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

// Face is a 2D coordinate on the gnomonic projection plane of a single
// dodecahedron face (pentagon), centered on the face's own origin.
type Face struct {
	X, Y float64
}

// IJ is a coordinate in the triangular lattice used by the quaternary
// Hilbert curve, expressed along the lattice's i/j axes. Lattice anchors are
// integer-valued, but intermediate values during Hilbert encode/decode are
// not, so the fields are float64 rather than int.
type IJ struct {
	I, J float64
}

// KJ is the same triangular lattice expressed along the k/j axes, which the
// Hilbert anchor/orientation logic in hilbert.go operates on directly.
type KJ struct {
	K, J float64
}

// Polar is a polar coordinate (rho, gamma) in a plane, rho the distance
// from the origin and gamma the angle from the plane's reference axis,
// both in radians.
type Polar struct {
	Rho   float64
	Gamma float64
}

// Spherical is a spherical coordinate (theta, phi) centered on a
// dodecahedron face's origin, theta the azimuth and phi the polar angle
// from the face normal, both in radians.
type Spherical struct {
	Theta float64
	Phi   float64
}

// Barycentric is a barycentric coordinate (a, b, c) relative to a
// FaceTriangle, with a+b+c == 1 for points inside the triangle.
type Barycentric struct {
	A, B, C float64
}

// FaceTriangle is a triangle in Face-plane coordinates, one of the
// sub-triangles a pentagon face is split into for projection.
type FaceTriangle struct {
	V0, V1, V2 Face
}

// SphericalTriangle is a triangle of unit vectors on the sphere,
// corresponding to a FaceTriangle after the dodecahedron projection.
type SphericalTriangle struct {
	V0, V1, V2 Cartesian
}

// projectGnomonic converts a Spherical coordinate to the Polar coordinate
// of its gnomonic projection, combining gnomonicForward with the
// theta-is-gamma identity of the projection.
func (s Spherical) projectGnomonic() Polar {
	return Polar{
		Rho:   gnomonicForward(s.Phi),
		Gamma: s.Theta,
	}
}

// unprojectGnomonic inverts projectGnomonic, recovering the Spherical
// coordinate a gnomonic-plane Polar coordinate came from.
func (p Polar) unprojectGnomonic() Spherical {
	return Spherical{
		Phi:   gnomonicInverse(p.Rho),
		Theta: p.Gamma,
	}
}
