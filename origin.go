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

// cosAlpha and sinAlpha are the polar angle components shared by the two
// rings of dodecahedron face-center quaternions (see dodecahedronQuats).
const (
	cosAlpha = 0.8506508083520399
	sinAlpha = 0.5257311121191336
)

// dodecahedronQuats holds the 12 unit quaternions that rotate the north
// pole [0,0,0,1] onto each of the dodecahedron's 12 face centers: index 0
// is the north pole itself, 1-5 the first ring, 6-10 the second ring, and
// 11 the south pole.
var dodecahedronQuats = buildDodecahedronQuats()

func buildDodecahedronQuats() [12]Quat {
	var qs [12]Quat
	qs[0] = Quat{0, 0, 0, 1}
	for i := 0; i < 5; i++ {
		angle := TwoPiOver5 * float64(i)
		qs[1+i] = Quat{X: sinAlpha * math.Cos(angle), Y: sinAlpha * math.Sin(angle), Z: 0, W: cosAlpha}
	}
	for i := 0; i < 5; i++ {
		angle := TwoPiOver5*float64(i) + PiOver5
		qs[6+i] = Quat{X: cosAlpha * math.Cos(angle), Y: cosAlpha * math.Sin(angle), Z: 0, W: sinAlpha}
	}
	qs[11] = Quat{0, -1, 0, 0}
	return qs
}

// quintantOrientations names the four distinct orderings in which a
// dodecahedron origin's 5 quintants lay their Hilbert sub-curves, walking
// clockwise or counterclockwise around the origin starting from different
// axis pairs.
var (
	clockwiseFan  = [5]Orientation{OrientationVU, OrientationUW, OrientationVW, OrientationVW, OrientationVW}
	clockwiseStep = [5]Orientation{OrientationWU, OrientationUW, OrientationVW, OrientationVU, OrientationUW}
	counterStep   = [5]Orientation{OrientationWU, OrientationUV, OrientationWV, OrientationWU, OrientationUW}
	counterJump   = [5]Orientation{OrientationVU, OrientationUV, OrientationWV, OrientationWU, OrientationUW}
)

// quintantOrientationsArrays maps each of the 12 origins (in construction
// order: north pole, first ring, second ring, south pole) to the layout
// array its quintants use.
var quintantOrientationsArrays = [12][5]Orientation{
	clockwiseFan,  // 0 Arctic
	counterJump,   // 1 North America
	counterStep,   // 2 South America
	clockwiseStep, // 3 North Atlantic & Western Europe & Africa
	counterStep,   // 4 South Atlantic & Africa
	counterJump,   // 5 Europe, Middle East & Central Africa
	counterStep,   // 6 Indian Ocean
	clockwiseStep, // 7 Asia
	clockwiseStep, // 8 Australia
	clockwiseStep, // 9 North Pacific
	counterJump,   // 10 South Pacific
	counterJump,   // 11 Antarctic
}

// quintantFirst names, per origin, the quintant index whose Hilbert
// sub-curve is visited first.
var quintantFirst = [12]int{4, 2, 3, 2, 0, 4, 3, 2, 2, 0, 3, 0}

// originOrder reorders the naive north-pole/middle-band/south-pole
// construction sequence into the order the global Hilbert curve actually
// visits origins.
var originOrder = [12]int{0, 1, 2, 4, 3, 5, 7, 8, 6, 11, 10, 9}

// Origin is one of the dodecahedron's 12 face centers: its orientation
// quaternion (rotating the global frame into the origin's local frame,
// north pole aligned with the face normal) and the per-quintant curve
// layout used to lay out cells within it.
type Origin struct {
	ID                int
	Quat              Quat
	Axis              Cartesian
	Angle             float64
	QuintantLayout    [5]Orientation
	FirstQuintant     int
	IsLayoutClockwise bool
}

var (
	originsOnce  sync.Once
	originsTable [12]Origin
)

// Origins lazily builds and caches the 12 dodecahedron origins, replacing
// the upstream LazyLock<Vec<Origin>> with sync.Once.
func Origins() [12]Origin {
	originsOnce.Do(func() {
		originsTable = buildOrigins()
	})
	return originsTable
}

func buildOrigins() [12]Origin {
	var naive [12]Origin
	naive[0] = makeOrigin(0, dodecahedronQuats[0], 0)
	next := 1
	for i := 0; i < 5; i++ {
		naive[next] = makeOrigin(next, dodecahedronQuats[i+1], PiOver5)
		next++
		naive[next] = makeOrigin(next, dodecahedronQuats[(i+3)%5+6], PiOver5)
		next++
	}
	naive[11] = makeOrigin(11, dodecahedronQuats[11], 0)

	var ordered [12]Origin
	for newID, oldID := range originOrder {
		o := naive[oldID]
		o.ID = newID
		o.QuintantLayout = quintantOrientationsArrays[newID]
		o.FirstQuintant = quintantFirst[newID]
		o.IsLayoutClockwise = isLayoutClockwise(o.QuintantLayout)
		ordered[newID] = o
	}
	return ordered
}

func makeOrigin(id int, q Quat, angle float64) Origin {
	axis := transformQuat(Cartesian{0, 0, 1}, q)
	return Origin{ID: id, Quat: q, Axis: axis, Angle: angle}
}

// isLayoutClockwise reports whether layout matches one of the clockwise
// orientation arrays (clockwiseFan, clockwiseStep) rather than a
// counterclockwise one.
func isLayoutClockwise(layout [5]Orientation) bool {
	return layout == clockwiseFan || layout == clockwiseStep
}

// quintantToSegment converts a quintant index (0-4, in angular order
// around the origin) to its Hilbert-curve segment index and the
// orientation that quintant's sub-curve is laid out in, stepping clockwise
// or counterclockwise from the origin's first quintant depending on its
// layout.
func quintantToSegment(o Origin, quintant int) (int, Orientation) {
	step := 1
	if o.IsLayoutClockwise {
		step = -1
	}

	delta := (quintant + 5 - o.FirstQuintant) % 5
	faceRelative := ((step*delta)%5 + 5) % 5
	orientation := o.QuintantLayout[faceRelative]
	segment := (o.FirstQuintant + faceRelative) % 5

	return segment, orientation
}

// segmentToQuintant inverts quintantToSegment.
func segmentToQuintant(o Origin, segment int) (int, Orientation) {
	step := 1
	if o.IsLayoutClockwise {
		step = -1
	}

	faceRelative := (segment + 5 - o.FirstQuintant) % 5
	orientation := o.QuintantLayout[faceRelative]

	stepOffset := (step * faceRelative) % 5
	var quintant int
	if stepOffset >= 0 {
		quintant = (o.FirstQuintant + stepOffset) % 5
	} else {
		quintant = (o.FirstQuintant + 5 - (-stepOffset)) % 5
	}

	return quintant, orientation
}

// haversine computes a monotonic proxy for the great-circle angular
// separation between two points, given in (theta, phi) form. Matches
// upstream's own "modified haversine" exactly: it stops short of the
// final asin/sqrt/multiply-by-2 steps that would turn it into a true
// central angle, since only relative ordering is needed to find the
// nearest origin, and the upstream source itself flags the formula as
// needing further derivation.
func haversine(point, axis Spherical) float64 {
	dTheta := axis.Theta - point.Theta
	dPhi := axis.Phi - point.Phi
	a1 := math.Sin(dPhi / 2)
	a2 := math.Sin(dTheta / 2)
	return a1*a1 + a2*a2*math.Sin(point.Phi)*math.Sin(axis.Phi)
}

// findNearestOrigin returns the origin whose axis is angularly closest to
// the given point.
func findNearestOrigin(point Cartesian) Origin {
	origins := Origins()
	pointSpherical := toSpherical(point)

	best := origins[0]
	bestDist := math.Inf(1)

	for _, o := range origins {
		d := haversine(pointSpherical, toSpherical(o.Axis))
		if d < bestDist {
			best, bestDist = o, d
		}
	}
	return best
}

// isNearestOrigin reports whether origin is the nearest origin to point,
// as found by findNearestOrigin.
func isNearestOrigin(point Spherical, origin Origin) bool {
	return findNearestOrigin(toCartesian(point)).ID == origin.ID
}
