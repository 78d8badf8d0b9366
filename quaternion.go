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

// Quat is a unit quaternion (x, y, z, w) used to rotate Cartesian points
// between a dodecahedron origin's local frame and the global frame.
type Quat struct {
	X, Y, Z, W float64
}

func (q Quat) conjugate() Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

func (q Quat) multiply(o Quat) Quat {
	return Quat{
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

// transformQuat rotates v by q, treating v as a pure quaternion (0, v) and
// computing q * v * conjugate(q).
func transformQuat(v Cartesian, q Quat) Cartesian {
	p := Quat{X: v.X, Y: v.Y, Z: v.Z, W: 0}
	r := q.multiply(p).multiply(q.conjugate())
	return Cartesian{X: r.X, Y: r.Y, Z: r.Z}
}
