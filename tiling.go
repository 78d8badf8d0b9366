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

// getPentagonVertices returns the 5 vertices of the dodecahedron face
// pentagon in the Face plane, in order around the boundary.
func getPentagonVertices() [5]Face {
	return pentagonConstants().vertices
}

// getFaceVertices returns the face boundary (as opposed to a single
// quintant's sub-triangle) as a vertex slice, ready for PentagonShape.
func getFaceVertices() []Face {
	vertices := getPentagonVertices()
	return vertices[:]
}

// getQuintantVertices returns the FaceTriangle for the given quintant (0-4):
// the face center and its two adjacent pentagon vertices.
func getQuintantVertices(quintant int) FaceTriangle {
	vertices := getPentagonVertices()
	return FaceTriangle{
		V0: Face{X: 0, Y: 0},
		V1: vertices[quintant],
		V2: vertices[(quintant+1)%5],
	}
}

// getQuintantPolar returns the Polar direction of the boundary between
// quintant and the next one, i.e. the direction of vertices[quintant+1].
func getQuintantPolar(quintant int) Polar {
	vertices := getPentagonVertices()
	return toPolar(vertices[(quintant+1)%5])
}
