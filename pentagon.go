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

import (
	"math"
	"sync"
)

// pentagonConstantsT holds the geometry computed once from the pentagon's
// fixed vertex seeds: the five face-plane vertices, the UVW triangle
// spanning the lattice growth directions, and the 2x2 basis/inverse-basis
// matrices that convert between Face coordinates and the triangular (u, v)
// lattice basis.
type pentagonConstantsT struct {
	vertices     [5]Face
	uvw          FaceTriangle
	basis        Mat2
	basisInverse Mat2
}

var (
	pentagonConstantsOnce  sync.Once
	pentagonConstantsValue pentagonConstantsT
)

// pentagonConstants lazily computes and caches the pentagon face geometry.
// This replaces the upstream LazyLock<PentagonConstants> with the
// idiomatic Go sync.Once pattern.
func pentagonConstants() pentagonConstantsT {
	pentagonConstantsOnce.Do(func() {
		pentagonConstantsValue = computePentagonConstants()
	})
	return pentagonConstantsValue
}

// computePentagonConstants starts from five fixed vertex seeds (a, b
// obtained trivially, c and d from circle intersections, e from
// PiOver10), scales them so vertex c lies DistanceToEdge/cos(PiOver5)
// (= DistanceToVertex) from a, and rotates them so the lattice growth
// direction AC lies at PiOver5 from the x-axis, which puts the UVW
// triangle's bisector on the x-axis; it then derives the UVW triangle from
// that bisector angle. basis/basisInverse, spanned by V and
// W, are what faceToIJ and getPentagon use to move between Face
// coordinates and the triangular Hilbert-curve lattice.
func computePentagonConstants() pentagonConstantsT {
	a := Face{X: 0.0, Y: 0.0}
	b := Face{X: 0.0, Y: 1.0}
	// c & d obtained by circle intersections; not derived symbolically here.
	c := Face{X: 0.7885966681787006, Y: 1.6149108024237764}
	d := Face{X: 1.6171013659387945, Y: 1.054928690397459}
	e := Face{X: math.Cos(PiOver10), Y: math.Sin(PiOver10)}

	cLength := math.Hypot(c.X, c.Y)
	edgeMidpointD := 2.0 * cLength * math.Cos(PiOver5)

	// Lattice growth direction is AC; rotate it to PiOver5 from the x-axis.
	basisRotation := PiOver5 - math.Atan2(c.Y, c.X)

	// Scale to match the unit sphere.
	scale := 2.0 * DistanceToEdge / edgeMidpointD
	rotate := rotationMat2(basisRotation)

	scaleAndRotate := func(f Face) Face {
		return rotate.transform(Face{X: f.X * scale, Y: f.Y * scale})
	}

	a = scaleAndRotate(a)
	b = scaleAndRotate(b)
	c = scaleAndRotate(c)
	d = scaleAndRotate(d)
	e = scaleAndRotate(e)

	bisectorAngle := math.Atan2(c.Y, c.X) - PiOver5

	u := Face{X: 0.0, Y: 0.0}
	l := DistanceToEdge / math.Cos(PiOver5)

	vAngle := bisectorAngle + PiOver5
	v := Face{X: l * math.Cos(vAngle), Y: l * math.Sin(vAngle)}

	wAngle := bisectorAngle - PiOver5
	w := Face{X: l * math.Cos(wAngle), Y: l * math.Sin(wAngle)}

	// Basis vectors used to lay out the primitive lattice unit.
	basis := newMat2FromCols(v, w)
	basisInverse, ok := basis.inverse()
	if !ok {
		basisInverse = Mat2{}
	}

	return pentagonConstantsT{
		vertices:     [5]Face{a, b, c, d, e},
		uvw:          FaceTriangle{V0: u, V1: v, V2: w},
		basis:        basis,
		basisInverse: basisInverse,
	}
}
