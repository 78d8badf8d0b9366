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

func TestPentagonConstantsVertexCount(t *testing.T) {
	pc := pentagonConstants()
	require.Len(t, pc.vertices, 5)
}

func TestPentagonShapeIsCounterclockwise(t *testing.T) {
	shape := NewPentagonShape(getFaceVertices())
	require.GreaterOrEqual(t, shape.getArea(), 0.0)
}

func TestPentagonShapeReflectYPreservesWinding(t *testing.T) {
	shape := NewPentagonShape(getFaceVertices())
	reflected := shape.reflectY()
	require.GreaterOrEqual(t, reflected.getArea(), 0.0)
}

func TestPentagonShapeContainsCenter(t *testing.T) {
	shape := NewPentagonShape(getFaceVertices())
	require.True(t, shape.containsPoint(shape.getCenter()))
}

func TestOriginsAreTwelveAndDistinct(t *testing.T) {
	origins := Origins()
	require.Len(t, origins, 12)

	for i := 0; i < 12; i++ {
		for j := i + 1; j < 12; j++ {
			d := length(subtract(origins[i].Axis, origins[j].Axis))
			require.Greater(t, d, 0.1, "origins %d and %d are too close", i, j)
		}
	}
}
