// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the matrix tests.

package matrix_test

import (
	"testing"

	"github.com/0xdomyz/sklearn-collection/matrix"
	"github.com/stretchr/testify/require"
)

// epsTight bounds float comparisons of folded results.
const epsTight = 1e-12

// MustFromRows builds a *Dense from rows or fails the test.
func MustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads m(i,j) or fails the test.
func MustAt(t *testing.T, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// grid3 returns the 3×3 fixture [[1,2,3],[4,5,6],[7,8,9]].
func grid3(t *testing.T) *matrix.Dense {
	t.Helper()

	return MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
}

// seq returns an r×c matrix holding 0..r*c-1 in row-major order.
func seq(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = float64(i*c + j)
		}
	}

	return MustFromRows(t, rows)
}

// requireRows asserts m has exactly the given cells.
func requireRows(t *testing.T, want [][]float64, m *matrix.Dense) {
	t.Helper()
	require.Equal(t, want, m.ToRows())
}
