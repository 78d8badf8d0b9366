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

// vec2 is a 2D floating-point vector, the common representation behind the
// named 2D coordinate systems (Face, IJ, KJ).
type vec2 struct {
	x float64
	y float64
}

func (v vec2) magnitude() float64 {
	return math.Sqrt(v.x*v.x + v.y*v.y)
}

func (v vec2) add(o vec2) vec2 {
	return vec2{v.x + o.x, v.y + o.y}
}

func (v vec2) sub(o vec2) vec2 {
	return vec2{v.x - o.x, v.y - o.y}
}

func (v vec2) scale(s float64) vec2 {
	return vec2{v.x * s, v.y * s}
}

func (v vec2) negate() vec2 {
	return vec2{-v.x, -v.y}
}

// Mat2 is a 2x2 matrix used for rotation and basis transforms of Face
// coordinates.
type Mat2 struct {
	M00, M01 float64
	M10, M11 float64
}

func newMat2FromCols(col0, col1 Face) Mat2 {
	return Mat2{
		M00: col0.X, M01: col1.X,
		M10: col0.Y, M11: col1.Y,
	}
}

func (m Mat2) determinant() float64 {
	return m.M00*m.M11 - m.M01*m.M10
}

// inverse returns the inverse of m, or false if m is singular.
func (m Mat2) inverse() (Mat2, bool) {
	det := m.determinant()
	if math.Abs(det) < 2.220446049250313e-16 {
		return Mat2{}, false
	}
	invDet := 1.0 / det
	return Mat2{
		M00: m.M11 * invDet, M01: -m.M01 * invDet,
		M10: -m.M10 * invDet, M11: m.M00 * invDet,
	}, true
}

func (m Mat2) transform(v Face) Face {
	return Face{
		X: m.M00*v.X + m.M01*v.Y,
		Y: m.M10*v.X + m.M11*v.Y,
	}
}

func rotationMat2(angle float64) Mat2 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat2{M00: c, M01: -s, M10: s, M11: c}
}
