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
//
// Forward/Inverse below restore the face-triangle reflect/squash handling
// of original_source/src/projections/dodecahedron.rs: a pentagon quintant
// is split at its bisector into 2 half-triangles (10 per face), and a
// point that falls beyond the pentagon's edge is reprojected through the
// "reflected" half-triangle of its neighbor, scaled ("squashed") by
// 1+1/cos(InterhedralAngle) so that unprojecting it lands on the correct
// adjacent face rather than folding back onto the current one. The
// face-triangle-index/reflect tests below are expressed as Face-plane dot
// and cross products against the quintant's own corner/bisector vectors
// rather than upstream's polar-gamma thresholds, since they give the same
// answer independent of a coordinate's angular reference axis and this
// codebase's toPolar/toFace already uses a different one than upstream's.
package a5

import "math"

type faceTriangleKey struct {
	index     int
	reflected bool
	squashed  bool
}

type sphericalTriangleKey struct {
	originID  int
	index     int
	reflected bool
}

// DodecahedronProjection carries the cache of face-plane and spherical
// triangles used by Forward/Inverse. The upstream Rust caches this with a
// thread_local, which has no safe analogue for goroutines; callers
// instead create one DodecahedronProjection per goroutine (or share one
// behind their own synchronization) rather than relying on a package-level
// instance.
type DodecahedronProjection struct {
	faceTriangles      map[faceTriangleKey]FaceTriangle
	sphericalTriangles map[sphericalTriangleKey]SphericalTriangle
}

// NewDodecahedronProjection returns a DodecahedronProjection with an
// empty cache.
func NewDodecahedronProjection() *DodecahedronProjection {
	return &DodecahedronProjection{
		faceTriangles:      make(map[faceTriangleKey]FaceTriangle),
		sphericalTriangles: make(map[sphericalTriangleKey]SphericalTriangle),
	}
}

// Forward projects a Face-plane point within the given origin's quintant
// onto the unit sphere, routing through the reflected/squashed
// face-triangle when p falls beyond the quintant's pentagon edge.
func (d *DodecahedronProjection) Forward(origin Origin, quintant int, p Face) Cartesian {
	index, reflect := locateFaceTriangle(quintant, p)
	ft := d.getFaceTriangle(index, reflect, false)
	st := d.getSphericalTriangle(origin, index, reflect)
	return polyhedralInverse(ft, st, p)
}

// Inverse maps a point on the unit sphere back to the origin, quintant,
// and Face-plane coordinate it came from.
func (d *DodecahedronProjection) Inverse(global Cartesian) (Origin, int, Face) {
	origin := findNearestOrigin(global)
	local := transformQuat(global, origin.Quat.conjugate())
	sph := toSpherical(local)

	// Rotate around the face axis to remove the origin's own phase,
	// mirroring upstream's forward() before the face-triangle lookup.
	guessPolar := sph.projectGnomonic()
	rotatedPolar := Polar{Rho: guessPolar.Rho, Gamma: guessPolar.Gamma - origin.Angle}
	guessFace := toFace(rotatedPolar)

	quintant := quintantForFacePoint(guessFace)
	index, reflect := locateFaceTriangle(quintant, guessFace)

	ft := d.getFaceTriangle(index, reflect, false)
	st := d.getSphericalTriangle(origin, index, reflect)
	facePoint := polyhedralForward(ft, st, global)

	return origin, quintant, facePoint
}

// locateFaceTriangle decides which of the 10 face-triangle indices (2
// halves per quintant, split at the bisector through the quintant's edge
// midpoint) a Face-plane point belongs to, and whether it falls beyond
// the pentagon's edge into reflected territory.
//
// half is chosen by the sign of the cross product between the bisector
// direction and p: the same sign as the cross product with corner1 means
// p is on corner1's side of the bisector (the "even" half-triangle,
// matching get_base_face_triangle's even/odd split). reflect is the
// projection of p onto the (unit) bisector direction exceeding
// DistanceToEdge, the pentagon's apothem — geometrically identical to
// upstream's to_face(normalized_gamma).x() > DISTANCE_TO_EDGE test.
func locateFaceTriangle(quintant int, p Face) (int, bool) {
	tri := getQuintantVertices(quintant)
	corner1, corner2 := tri.V1, tri.V2

	mid := Face{X: (corner1.X + corner2.X) / 2, Y: (corner1.Y + corner2.Y) / 2}
	midLen := math.Hypot(mid.X, mid.Y)

	crossP := mid.X*p.Y - mid.Y*p.X
	crossCorner1 := mid.X*corner1.Y - mid.Y*corner1.X

	half := 1
	if sameSign(crossP, crossCorner1) {
		half = 0
	}
	index := quintant*2 + half

	proj := (p.X*mid.X + p.Y*mid.Y) / midLen
	reflect := proj > DistanceToEdge

	return index, reflect
}

func sameSign(a, b float64) bool {
	return (a >= 0) == (b >= 0)
}

// getFaceTriangle returns (and caches) the Face-plane triangle for a
// face-triangle index, 0-9, in its base, reflected, or reflected+squashed
// form.
func (d *DodecahedronProjection) getFaceTriangle(index int, reflected, squashed bool) FaceTriangle {
	key := faceTriangleKey{index: index, reflected: reflected, squashed: squashed}
	if ft, ok := d.faceTriangles[key]; ok {
		return ft
	}

	var ft FaceTriangle
	if reflected {
		ft = getReflectedFaceTriangle(index, squashed)
	} else {
		ft = getBaseFaceTriangle(index)
	}

	d.faceTriangles[key] = ft
	return ft
}

// getBaseFaceTriangle builds the half-quintant triangle for a
// face-triangle index: the face center, the quintant's edge midpoint, and
// whichever corner lies on this index's half.
func getBaseFaceTriangle(index int) FaceTriangle {
	quintant := (index / 2) % 5
	tri := getQuintantVertices(quintant)
	center, corner1, corner2 := tri.V0, tri.V1, tri.V2

	mid := Face{X: (corner1.X + corner2.X) / 2, Y: (corner1.Y + corner2.Y) / 2}

	if index%2 == 0 {
		return FaceTriangle{V0: center, V1: mid, V2: corner1}
	}
	return FaceTriangle{V0: center, V1: corner2, V2: mid}
}

// getReflectedFaceTriangle reflects a base face-triangle's center vertex
// across its edge midpoint, producing the triangle that represents the
// same spherical region as seen from the neighboring face. squashed
// scales the reflection by 1+1/cos(InterhedralAngle) instead of 2, which
// is what makes the reflected triangle unproject to the correct adjacent
// face rather than double back onto this one.
func getReflectedFaceTriangle(index int, squashed bool) FaceTriangle {
	base := getBaseFaceTriangle(index)
	a, b, c := base.V0, base.V1, base.V2

	var mid Face
	if index%2 == 0 {
		mid = b
	} else {
		mid = c
	}

	scale := 2.0
	if squashed {
		scale = 1.0 + 1.0/math.Cos(InterhedralAngle)
	}

	reflectedA := Face{X: -a.X + mid.X*scale, Y: -a.Y + mid.Y*scale}

	// b/c swapped to keep the vertex order (and winding) correct.
	return FaceTriangle{V0: reflectedA, V1: c, V2: b}
}

// getSphericalTriangle returns (and caches) the global SphericalTriangle
// matching a face-triangle index for the given origin.
func (d *DodecahedronProjection) getSphericalTriangle(origin Origin, index int, reflected bool) SphericalTriangle {
	key := sphericalTriangleKey{originID: origin.ID, index: index, reflected: reflected}
	if st, ok := d.sphericalTriangles[key]; ok {
		return st
	}

	st := d.computeSphericalTriangle(origin, index, reflected)
	d.sphericalTriangles[key] = st
	return st
}

// computeSphericalTriangle builds a face-triangle index's spherical
// counterpart: each vertex's polar angle is rotated by the origin's own
// phase, unprojected gnomonically, rotated into the global frame by the
// origin's quaternion, and snapped onto the shared CRS vertex table. The
// squashed face-triangle variant is always used here (matching upstream),
// since unprojecting the squashed triangle is what yields the correct
// spherical positions for a reflected index.
func (d *DodecahedronProjection) computeSphericalTriangle(origin Origin, index int, reflected bool) SphericalTriangle {
	ft := d.getFaceTriangle(index, reflected, true)

	toGlobalVertex := func(f Face) Cartesian {
		polar := toPolar(f)
		rotated := Polar{Rho: polar.Rho, Gamma: polar.Gamma + origin.Angle}
		local := toCartesian(rotated.unprojectGnomonic())
		global := transformQuat(local, origin.Quat)
		snapped, _ := crsInstance.getVertex(global)
		return snapped
	}

	return SphericalTriangle{
		V0: toGlobalVertex(ft.V0),
		V1: toGlobalVertex(ft.V1),
		V2: toGlobalVertex(ft.V2),
	}
}

// normalizeGamma wraps an angle into [0, 2*pi).
func normalizeGamma(gamma float64) float64 {
	g := math.Mod(gamma, TwoPi)
	if g < 0 {
		g += TwoPi
	}
	return g
}

// quintantForFacePoint finds which of the 5 quintant sub-triangles a
// Face-plane point falls in, by its angle around the face center.
func quintantForFacePoint(p Face) int {
	if p.X == 0 && p.Y == 0 {
		return 0
	}
	vertices := getPentagonVertices()
	gamma := normalizeGamma(toPolar(p).Gamma)

	for k := 0; k < 5; k++ {
		g1 := normalizeGamma(toPolar(vertices[k]).Gamma)
		g2 := normalizeGamma(getQuintantPolar(k).Gamma)
		span := normalizeGamma(g2 - g1)
		diff := normalizeGamma(gamma - g1)
		if span == 0 {
			continue
		}
		if diff <= span {
			return k
		}
	}
	return 0
}
