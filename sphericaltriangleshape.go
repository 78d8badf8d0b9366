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

// SphericalTriangleShape is a SphericalPolygonShape specialized to
// exactly 3 vertices, the shape used when computing quintant sub-areas.
type SphericalTriangleShape struct {
	*SphericalPolygonShape
}

// NewSphericalTriangleShape wraps a SphericalTriangle as a
// SphericalTriangleShape.
func NewSphericalTriangleShape(t SphericalTriangle) SphericalTriangleShape {
	return SphericalTriangleShape{
		SphericalPolygonShape: NewSphericalPolygonShape([]Cartesian{t.V0, t.V1, t.V2}),
	}
}
