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

// toPolar converts a Face coordinate to its Polar (rho, gamma) form.
func toPolar(f Face) Polar {
	return Polar{
		Rho:   math.Sqrt(f.X*f.X + f.Y*f.Y),
		Gamma: math.Atan2(-f.X, f.Y),
	}
}

// toFace converts a Polar coordinate back to a Face coordinate.
func toFace(p Polar) Face {
	return Face{
		X: -p.Rho * math.Sin(p.Gamma),
		Y: p.Rho * math.Cos(p.Gamma),
	}
}

// faceToBarycentric expresses a Face point in barycentric coordinates
// relative to t, via the standard determinant formula.
func faceToBarycentric(t FaceTriangle, p Face) Barycentric {
	x1, y1 := t.V0.X, t.V0.Y
	x2, y2 := t.V1.X, t.V1.Y
	x3, y3 := t.V2.X, t.V2.Y

	det := (y2-y3)*(x1-x3) + (x3-x2)*(y1-y3)

	a := ((y2-y3)*(p.X-x3) + (x3-x2)*(p.Y-y3)) / det
	b := ((y3-y1)*(p.X-x3) + (x1-x3)*(p.Y-y3)) / det
	c := 1.0 - a - b

	return Barycentric{A: a, B: b, C: c}
}

// barycentricToFace recovers the Face point a Barycentric coordinate
// refers to, relative to t.
func barycentricToFace(t FaceTriangle, bc Barycentric) Face {
	return Face{
		X: bc.A*t.V0.X + bc.B*t.V1.X + bc.C*t.V2.X,
		Y: bc.A*t.V0.Y + bc.B*t.V1.Y + bc.C*t.V2.Y,
	}
}

// toSpherical converts a unit Cartesian vector to a Spherical coordinate,
// phi measured from the +Z pole.
func toSpherical(v Cartesian) Spherical {
	return Spherical{
		Theta: math.Atan2(v.Y, v.X),
		Phi:   math.Acos(clamp(v.Z, -1.0, 1.0)),
	}
}

// toCartesian converts a Spherical coordinate to a unit Cartesian vector.
func toCartesian(s Spherical) Cartesian {
	sinPhi := math.Sin(s.Phi)
	return Cartesian{
		X: sinPhi * math.Cos(s.Theta),
		Y: sinPhi * math.Sin(s.Theta),
		Z: math.Cos(s.Phi),
	}
}

// faceToIJ projects a Face coordinate into the triangular (i, j) lattice
// used by the quaternary Hilbert curve, via the inverse of the pentagon's
// UVW basis (see pentagon.go). Not present in the retrieved upstream
// source; derived from core/pentagon.rs's basis/basis_inverse matrices,
// which map lattice axes into the Face plane, so the inverse recovers
// lattice coordinates from a Face point.
func faceToIJ(f Face) IJ {
	pc := pentagonConstants()
	lattice := pc.basisInverse.transform(f)
	return IJ{
		I: math.Round(lattice.X),
		J: math.Round(lattice.Y),
	}
}

// lonLatToSpherical converts a longitude/latitude pair, in decimal
// degrees, to the Spherical coordinate of the same point, composing the
// authalic latitude correction with the simplified geodetic conversion:
// the upstream from_lon_lat is retrieved without this composition, but
// spec section 4.3 specifies the authalic-corrected pipeline.
func lonLatToSpherical(ll LonLat) Spherical {
	geodeticLat := DegsToRads(ll.Latitude)
	authalicLat := authalicForward(geodeticLat)

	theta := DegsToRads(ll.Longitude - LongitudeOffset)
	phi := math.Pi/2 - authalicLat

	return Spherical{Theta: theta, Phi: phi}
}

// sphericalToLonLat inverts lonLatToSpherical.
func sphericalToLonLat(s Spherical) LonLat {
	authalicLat := math.Pi/2 - s.Phi
	geodeticLat := authalicInverse(authalicLat)

	lon := constrainLongitude(RadsToDegs(s.Theta) + LongitudeOffset)
	lat := RadsToDegs(geodeticLat)

	return LonLat{Longitude: lon, Latitude: lat}
}
