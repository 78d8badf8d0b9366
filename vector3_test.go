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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCrossIsPerpendicular(t *testing.T) {
	a := Cartesian{1, 0, 0}
	b := Cartesian{0, 1, 0}
	c := cross(a, b)
	require.InDelta(t, 0.0, dot(a, c), 1e-12)
	require.InDelta(t, 0.0, dot(b, c), 1e-12)
	require.InDelta(t, 1.0, c.Z, 1e-12)
}

func TestNormalizeUnitLength(t *testing.T) {
	v := normalize(Cartesian{3, 4, 0})
	require.InDelta(t, 1.0, length(v), 1e-12)
	require.InDelta(t, 0.6, v.X, 1e-9)
	require.InDelta(t, 0.8, v.Y, 1e-9)
}

func TestSlerpEndpoints(t *testing.T) {
	a := normalize(Cartesian{1, 0, 0})
	b := normalize(Cartesian{0, 1, 0})

	start := slerp(a, b, 0)
	require.InDelta(t, a.X, start.X, 1e-9)
	require.InDelta(t, a.Y, start.Y, 1e-9)

	end := slerp(a, b, 1)
	require.InDelta(t, b.X, end.X, 1e-9)
	require.InDelta(t, b.Y, end.Y, 1e-9)

	mid := slerp(a, b, 0.5)
	require.InDelta(t, 1.0, length(mid), 1e-9)
}

func TestTripleProductAntisymmetry(t *testing.T) {
	a := Cartesian{1, 0, 0}
	b := Cartesian{0, 1, 0}
	c := Cartesian{0, 0, 1}
	require.InDelta(t, 1.0, tripleProduct(a, b, c), 1e-12)
	require.InDelta(t, -1.0, tripleProduct(b, a, c), 1e-12)
}
