// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/0xdomyz/sklearn-collection/matrix"
	"github.com/stretchr/testify/require"
)

func TestDense_ShapeAndLen(t *testing.T) {
	m := seq(t, 2, 3)
	r, c := m.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, 2, m.Len())
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, 6, m.Size())
}

func TestDense_AtSet_OutOfRange(t *testing.T) {
	m := grid3(t)

	cases := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}}
	for _, ij := range cases {
		_, err := m.At(ij[0], ij[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
		require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
		require.ErrorIs(t, m.Set(ij[0], ij[1], 1), matrix.ErrOutOfRange)
	}
}

func TestDense_SetNormalizes(t *testing.T) {
	m := grid3(t)

	require.NoError(t, m.Set(0, 0, math.NaN()))
	require.NoError(t, m.Set(0, 1, math.Inf(1)))
	require.NoError(t, m.Set(0, 2, math.Inf(-1)))
	require.Equal(t, 0.0, MustAt(t, m, 0, 0))
	require.Equal(t, math.MaxFloat64, MustAt(t, m, 0, 1))
	require.Equal(t, -math.MaxFloat64, MustAt(t, m, 0, 2))
}

func TestNormalize_Policy(t *testing.T) {
	require.Equal(t, 0.0, matrix.ExportedNormalize(math.NaN()))
	require.Equal(t, math.MaxFloat64, matrix.ExportedNormalize(math.Inf(1)))
	require.Equal(t, -math.MaxFloat64, matrix.ExportedNormalize(math.Inf(-1)))
	require.Equal(t, 1.5, matrix.ExportedNormalize(1.5))
	// idempotent
	v := matrix.ExportedNormalize(math.Inf(1))
	require.Equal(t, v, matrix.ExportedNormalize(v))
}

func TestDense_CopyIsIndependent(t *testing.T) {
	m := grid3(t)
	cp := m.Copy()
	require.True(t, m.Equal(cp))

	require.NoError(t, cp.Set(1, 1, 100))
	require.Equal(t, 5.0, MustAt(t, m, 1, 1))
	require.False(t, m.Equal(cp))

	cl, ok := m.Clone().(*matrix.Dense)
	require.True(t, ok)
	require.True(t, m.Equal(cl))
}

func TestDense_FlattenAndRows(t *testing.T) {
	m := seq(t, 2, 2)
	flat := m.Flatten()
	require.Equal(t, []float64{0, 1, 2, 3}, flat)

	flat[0] = 42
	require.Equal(t, 0.0, MustAt(t, m, 0, 0), "Flatten must not alias")

	row, err := m.RowSlice(1)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 3}, row)
	_, err = m.RowSlice(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	requireRows(t, [][]float64{{0, 1}, {2, 3}}, m)
}

func TestDense_DoVisitsRowMajorAndStops(t *testing.T) {
	m := seq(t, 2, 3)
	var seen []float64
	m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)
		return v < 3
	})
	require.Equal(t, []float64{0, 1, 2, 3}, seen)
}

func TestDense_EqualNilAndShape(t *testing.T) {
	m := seq(t, 2, 2)
	require.False(t, m.Equal(nil))
	require.False(t, m.Equal(seq(t, 1, 4)))
}
