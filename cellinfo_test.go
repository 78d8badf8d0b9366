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
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetNumCellsKnownValues(t *testing.T) {
	cases := map[int]uint64{
		0: 12,
		1: 60,
		2: 240,
		3: 960,
	}
	for res, want := range cases {
		got, err := GetNumCells(res)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestGetNumCellsRejectsOutOfRange(t *testing.T) {
	_, err := GetNumCells(-1)
	require.ErrorIs(t, err, ErrInvalidResolution)

	_, err = GetNumCells(MaxResolution + 1)
	require.ErrorIs(t, err, ErrInvalidResolution)
}

func TestGetNumCellsBigMatchesFixedPrecision(t *testing.T) {
	for res := 0; res <= 5; res++ {
		fixed, err := GetNumCells(res)
		require.NoError(t, err)

		bigCount, err := GetNumCellsBig(big.NewInt(int64(res)))
		require.NoError(t, err)
		require.Equal(t, fixed, bigCount.Uint64())
	}
}

func TestCellAreaSumsToAuthalicArea(t *testing.T) {
	area, err := CellArea(2)
	require.NoError(t, err)

	n, err := GetNumCells(2)
	require.NoError(t, err)

	require.InDelta(t, AuthalicArea, area*float64(n), 1e-3)
}

func TestCellAreaOfWorldCellIsWholeSphere(t *testing.T) {
	area, err := CellArea(-1)
	require.NoError(t, err)
	require.Equal(t, AuthalicArea, area)
}

func TestGetNumCellsHighResolutionsDontOverflow(t *testing.T) {
	cases := map[int]uint64{
		28: 1080863910568919000,
		29: 4323455642275676000,
		30: 17293822569102705000,
	}
	exact := map[int]uint64{
		28: 1080863910568919040,
		29: 4323455642275676160,
		30: 17293822569102704640,
	}
	for res, want := range cases {
		got, err := GetNumCells(res)
		require.NoError(t, err)
		require.Equal(t, want, got)

		bigCount, err := GetNumCellsBig(big.NewInt(int64(res)))
		require.NoError(t, err)
		require.Equal(t, exact[res], bigCount.Uint64())
	}
}
