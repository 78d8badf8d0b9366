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

// gnomonicForward maps a polar angle phi (radians from the face normal) to
// the gnomonic-plane radius rho = tan(phi).
func gnomonicForward(phi float64) float64 {
	return math.Tan(phi)
}

// gnomonicInverse maps a gnomonic-plane radius rho back to the polar angle
// phi = atan(rho).
func gnomonicInverse(rho float64) float64 {
	return math.Atan(rho)
}
