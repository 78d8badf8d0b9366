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

// Cartesian is a 3D cartesian coordinate, usually a point on the unit
// sphere or dodecahedron.
type Cartesian struct {
	X, Y, Z float64
}

func dot(a, b Cartesian) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func cross(a, b Cartesian) Cartesian {
	return Cartesian{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func length(v Cartesian) float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func normalize(v Cartesian) Cartesian {
	l := length(v)
	if l == 0.0 {
		return v
	}
	return Cartesian{v.X / l, v.Y / l, v.Z / l}
}

func add3(a, b Cartesian) Cartesian {
	return Cartesian{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func subtract(a, b Cartesian) Cartesian {
	return Cartesian{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func scale3(v Cartesian, s float64) Cartesian {
	return Cartesian{v.X * s, v.Y * s, v.Z * s}
}

func lerp3(a, b Cartesian, t float64) Cartesian {
	return Cartesian{
		a.X + t*(b.X-a.X),
		a.Y + t*(b.Y-a.Y),
		a.Z + t*(b.Z-a.Z),
	}
}

func angleBetween(a, b Cartesian) float64 {
	cosAngle := dot(a, b) / (length(a) * length(b))
	return math.Acos(clamp(cosAngle, -1.0, 1.0))
}

// slerp performs spherical linear interpolation between two unit vectors.
func slerp(a, b Cartesian, t float64) Cartesian {
	gamma := angleBetween(a, b)
	if gamma < 1e-12 {
		return lerp3(a, b, t)
	}
	weightA := math.Sin((1.0-t)*gamma) / math.Sin(gamma)
	weightB := math.Sin(t*gamma) / math.Sin(gamma)
	return add3(scale3(a, weightA), scale3(b, weightB))
}

// tripleProduct computes a . (b x c).
func tripleProduct(a, b, c Cartesian) float64 {
	return dot(a, cross(b, c))
}

// quadrupleProduct computes (a.(c x d))*b - (b.(c x d))*a, the vector in the
// plane of a & b that lies on the great circle intersection with c & d.
func quadrupleProduct(a, b, c, d Cartesian) Cartesian {
	crossCD := cross(c, d)
	tripACD := dot(a, crossCD)
	tripBCD := dot(b, crossCD)
	return subtract(scale3(b, tripACD), scale3(a, tripBCD))
}

// vectorDifference returns a stable measure of angular separation between
// two normalized vectors: sqrt(1-dot(a,b))/sqrt(2), computed via the
// half-angle identity to stay numerically stable as a and b converge.
func vectorDifference(a, b Cartesian) float64 {
	midpointAB := normalize(lerp3(a, b, 0.5))
	d := length(cross(a, midpointAB))

	if d < 1e-8 {
		return 0.5 * length(subtract(a, b))
	}
	return d
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
