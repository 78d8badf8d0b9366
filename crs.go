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

// vertexTolerance is how close two candidate vertices must be, by
// vectorDifference's angular-separation measure, to be merged into a
// single CRS vertex (shared by the faces/edges meeting there).
const vertexTolerance = 1e-5

// CRS is the dodecahedron's fixed vertex table: the 12 face centers, 20
// polyhedron vertices, and 30 edge midpoints, all as unit Cartesian
// points. computeSphericalTriangle snaps projected triangle vertices onto
// this table so that triangles of neighboring faces share exactly the
// same vertex coordinates.
type CRS struct {
	vertices    []Cartesian
	invocations int
}

var crsInstance = newCRS()

func newCRS() *CRS {
	c := &CRS{vertices: make([]Cartesian, 0, 62)}
	c.addFaceCenters()
	c.addVertices()
	c.addMidpoints()
	if len(c.vertices) != 62 {
		panic("a5: CRS vertex table did not build exactly 62 vertices")
	}
	return c
}

func (c *CRS) addFaceCenters() {
	for _, o := range Origins() {
		c.vertices = append(c.vertices, o.Axis)
	}
}

func (c *CRS) addVertices() {
	phiVertex := math.Atan(DistanceToVertex)
	c.addRing(phiVertex, 0)
}

func (c *CRS) addMidpoints() {
	phiMidpoint := math.Atan(DistanceToEdge)
	c.addRing(phiMidpoint, PiOver5)
}

// addRing generates, for every origin, the 5 candidate points at polar
// angle phi and azimuthal offset thetaOffset, rotated by the origin's own
// angle to remove its local phase, rotates them into the global frame,
// and merges them into the shared vertex table within vertexTolerance.
func (c *CRS) addRing(phi, thetaOffset float64) {
	for _, o := range Origins() {
		for k := 0; k < 5; k++ {
			local := toCartesian(Spherical{Theta: TwoPiOver5*float64(k) + thetaOffset + o.Angle, Phi: phi})
			global := transformQuat(local, o.Quat)
			c.mergeVertex(global)
		}
	}
}

func (c *CRS) mergeVertex(v Cartesian) {
	for _, existing := range c.vertices {
		if vectorDifference(existing, v) < vertexTolerance {
			return
		}
	}
	c.vertices = append(c.vertices, v)
}

// getVertex returns the CRS table entry nearest to v, within
// vertexTolerance, or v itself (and false) if none is close enough. The
// upstream implementation also warns after 10000 invocations of this
// search degrading performance; per SPEC_FULL.md's no-logging ambient
// stance, that diagnostic is dropped rather than ported.
func (c *CRS) getVertex(v Cartesian) (Cartesian, bool) {
	c.invocations++
	for _, existing := range c.vertices {
		if vectorDifference(existing, v) < vertexTolerance {
			return existing, true
		}
	}
	return v, false
}
