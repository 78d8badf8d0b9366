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

func TestConstrainLongitude(t *testing.T) {
	require.InDelta(t, 180.0, constrainLongitude(180.0), 1e-9)
	require.InDelta(t, -179.0, constrainLongitude(181.0), 1e-9)
	require.InDelta(t, 0.0, constrainLongitude(360.0), 1e-9)
	require.InDelta(t, 0.0, constrainLongitude(0.0), 1e-9)
}

func TestNormalizeLongitudesAntimeridian(t *testing.T) {
	points := []LonLat{
		{Longitude: 179, Latitude: 10},
		{Longitude: -179, Latitude: 10},
		{Longitude: -178, Latitude: 5},
	}
	out := normalizeLongitudes(points)
	require.Len(t, out, 3)
	require.InDelta(t, 179.0, out[0].Longitude, 1e-9)
	require.InDelta(t, 181.0, out[1].Longitude, 1e-9)
	require.InDelta(t, 182.0, out[2].Longitude, 1e-9)
}

func TestDegRadRoundTrip(t *testing.T) {
	for _, d := range []float64{0, 45, 90, -90, 180, -179.5} {
		require.InDelta(t, d, RadsToDegs(DegsToRads(d)), 1e-9)
	}
}
