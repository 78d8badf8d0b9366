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

import "errors"

var (
	// ErrInvalidResolution is returned when a resolution argument falls
	// outside [0, MaxResolution], or a target resolution is on the wrong
	// side of a current resolution for a parent/child operation.
	ErrInvalidResolution = errors.New("a5: invalid resolution")

	// ErrInvalidCell is returned when a cell index cannot be deserialized,
	// e.g. its top 6 bits don't resolve to a known origin.
	ErrInvalidCell = errors.New("a5: invalid cell")

	// ErrSAtCapacity reports a Hilbert index S that does not fit in the
	// bits available at the requested resolution. serialize does not
	// check S, and no function in this package returns this error.
	ErrSAtCapacity = errors.New("a5: s value exceeds capacity for resolution")

	// ErrLookupFailure reports a geometric lookup (CRS vertex snap, face
	// triangle index, ...) that found no match. No function in this
	// package returns it: CRS.getVertex reports a failed snap through its
	// boolean result, which its caller ignores.
	ErrLookupFailure = errors.New("a5: lookup failure")

	// ErrInvalidInput is returned for malformed arguments not covered by
	// the more specific errors above, e.g. malformed hex strings passed
	// to GetCellIDFromHex.
	ErrInvalidInput = errors.New("a5: invalid input")
)
