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
// The authalic/geodetic latitude conversion below is the order-6 Clenshaw
// summation used by the DGGAL project (applyCoefficients in authalic.ec,
// BSD-3-Clause, Ecere Corporation), with coefficients derived for WGS84
// (see https://arxiv.org/pdf/2212.05818).

package a5

import "math"

// geodeticToAuthalic are the Clenshaw coefficients converting geodetic
// latitude to authalic latitude.
var geodeticToAuthalic = [6]float64{
	-2.2392098386786394e-03,
	2.1308606513250217e-06,
	-2.5592576864212742e-09,
	3.3701965267802837e-12,
	-4.6675453126112487e-15,
	6.6749287038481596e-18,
}

// authalicToGeodetic is the coefficient set for the inverse series.
var authalicToGeodetic = [6]float64{
	2.2392089963541657e-03,
	2.8831978048607556e-06,
	5.0862207399726603e-09,
	1.0201812377816100e-11,
	2.1912872306767718e-14,
	4.9284235482523806e-17,
}

// applyCoefficients evaluates the order-6 Clenshaw recurrence used by
// both the forward and inverse authalic series, in the variable
// x = 2*(cos(phi)-sin(phi))*(cos(phi)+sin(phi)) = 2*cos(2*phi).
func applyCoefficients(phi float64, c [6]float64) float64 {
	sinPhi := math.Sin(phi)
	cosPhi := math.Cos(phi)
	x := 2.0 * (cosPhi - sinPhi) * (cosPhi + sinPhi)

	u0 := x*c[5] + c[4]
	u1 := x*u0 + c[3]
	u0 = x*u1 - u0 + c[2]
	u1 = x*u0 - u1 + c[1]
	u0 = x*u1 - u0 + c[0]

	return phi + 2.0*sinPhi*cosPhi*u0
}

// authalicForward converts a geodetic latitude, in radians, to the
// corresponding authalic latitude.
func authalicForward(geodeticLat float64) float64 {
	return applyCoefficients(geodeticLat, geodeticToAuthalic)
}

// authalicInverse converts an authalic latitude, in radians, back to
// geodetic latitude.
func authalicInverse(authalicLat float64) float64 {
	return applyCoefficients(authalicLat, authalicToGeodetic)
}
