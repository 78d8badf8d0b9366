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

// PentagonShape is a (not necessarily regular, not necessarily 5-sided)
// polygon in the Face plane, used for the pre-projection cell boundary
// before it's mapped onto the sphere. Construction always yields
// counterclockwise winding: if the raw vertices come in clockwise, they
// are reversed.
type PentagonShape struct {
	vertices []Face
}

// NewPentagonShape builds a PentagonShape from its vertices, correcting
// winding if necessary.
func NewPentagonShape(vertices []Face) PentagonShape {
	vs := make([]Face, len(vertices))
	copy(vs, vertices)
	p := PentagonShape{vertices: vs}
	if p.getArea() < 0 {
		p.vertices = reverseFaceRing(p.vertices)
	}
	return p
}

func reverseFaceRing(v []Face) []Face {
	out := make([]Face, len(v))
	for i, f := range v {
		out[len(v)-1-i] = f
	}
	return out
}

// getArea computes the signed area via the shoelace formula; positive
// for counterclockwise winding.
func (p PentagonShape) getArea() float64 {
	area := 0.0
	n := len(p.vertices)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += p.vertices[i].X*p.vertices[j].Y - p.vertices[j].X*p.vertices[i].Y
	}
	return area / 2
}

func (p PentagonShape) scale(s float64) PentagonShape {
	out := make([]Face, len(p.vertices))
	for i, v := range p.vertices {
		out[i] = Face{X: v.X * s, Y: v.Y * s}
	}
	return PentagonShape{vertices: out}
}

func (p PentagonShape) rotate180() PentagonShape {
	out := make([]Face, len(p.vertices))
	for i, v := range p.vertices {
		out[i] = Face{X: -v.X, Y: -v.Y}
	}
	return PentagonShape{vertices: out}
}

// reflectY mirrors the shape across the X axis. Mirroring reverses
// winding, so the vertex order is reversed to keep it counterclockwise.
func (p PentagonShape) reflectY() PentagonShape {
	out := make([]Face, len(p.vertices))
	for i, v := range p.vertices {
		out[i] = Face{X: v.X, Y: -v.Y}
	}
	return PentagonShape{vertices: reverseFaceRing(out)}
}

func (p PentagonShape) translate(offset Face) PentagonShape {
	out := make([]Face, len(p.vertices))
	for i, v := range p.vertices {
		out[i] = Face{X: v.X + offset.X, Y: v.Y + offset.Y}
	}
	return PentagonShape{vertices: out}
}

func (p PentagonShape) getCenter() Face {
	c := Face{}
	for _, v := range p.vertices {
		c.X += v.X
		c.Y += v.Y
	}
	n := float64(len(p.vertices))
	return Face{X: c.X / n, Y: c.Y / n}
}

// containsPoint reports whether point lies inside the shape, via the
// signed cross-product edge test: the minimum of the per-edge cross
// products is >= 0 iff point is on the left (interior) side of every
// edge. Assumes counterclockwise winding, which NewPentagonShape
// guarantees.
func (p PentagonShape) containsPoint(point Face) bool {
	dMin := math.Inf(1)
	n := len(p.vertices)
	for i := 0; i < n; i++ {
		a := p.vertices[i]
		b := p.vertices[(i+1)%n]
		edge := vec2{b.X - a.X, b.Y - a.Y}
		toPoint := vec2{point.X - a.X, point.Y - a.Y}
		cross := edge.x*toPoint.y - edge.y*toPoint.x
		if cross < dMin {
			dMin = cross
		}
	}
	return dMin >= 0
}

// splitEdges subdivides each edge of the shape into segments equal
// pieces, returning the resulting boundary ring (of len(vertices)*segments
// points). Used before projection to preserve the equal-area property of
// the projection across long edges.
func (p PentagonShape) splitEdges(segments int) []Face {
	if segments <= 1 {
		out := make([]Face, len(p.vertices))
		copy(out, p.vertices)
		return out
	}
	var out []Face
	n := len(p.vertices)
	for i := 0; i < n; i++ {
		a := p.vertices[i]
		b := p.vertices[(i+1)%n]
		for s := 0; s < segments; s++ {
			t := float64(s) / float64(segments)
			out = append(out, Face{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)})
		}
	}
	return out
}
