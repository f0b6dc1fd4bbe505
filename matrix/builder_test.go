// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/0xdomyz/sklearn-collection/matrix"
	"github.com/stretchr/testify/require"
)

func TestFromRows_Typed(t *testing.T) {
	m, err := matrix.FromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	requireRows(t, [][]float64{{1, 2}, {3, 4}}, m)

	u, err := matrix.FromRows([][]uint8{{255}})
	require.NoError(t, err)
	require.Equal(t, 255.0, MustAt(t, u, 0, 0))
}

func TestFromRows_CopiesInput(t *testing.T) {
	src := [][]float64{{1, 2}, {3, 4}}
	m := MustFromRows(t, src)
	src[0][0] = 99
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

func TestFromRows_BadShape(t *testing.T) {
	_, err := matrix.FromRows([][]float64{})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.FromRows([][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestFromRows_Normalizes(t *testing.T) {
	m := MustFromRows(t, [][]float64{{math.NaN(), math.Inf(1), math.Inf(-1)}})
	requireRows(t, [][]float64{{0, math.MaxFloat64, -math.MaxFloat64}}, m)
}

func TestFromBuffer_Kinds(t *testing.T) {
	one, two := 1.0, 2.0

	cases := []struct {
		name string
		buf  any
		want [][]float64
	}{
		{"float64", [][]float64{{1, 2}}, [][]float64{{1, 2}}},
		{"int32", [][]int32{{-1, 2}}, [][]float64{{-1, 2}}},
		{"float32", [][]float32{{0.5}}, [][]float64{{0.5}}},
		{"array", [2][2]int{{1, 2}, {3, 4}}, [][]float64{{1, 2}, {3, 4}}},
		{"slice of arrays", [][3]uint{{1, 2, 3}}, [][]float64{{1, 2, 3}}},
		{"pointers with nil", [][]*float64{{&one, nil, &two}}, [][]float64{{1, 0, 2}}},
		{"interface cells", [][]any{{1, 2.5, nil}}, [][]float64{{1, 2.5, 0}}},
		{"dense", MustFromRows(t, [][]float64{{7}}), [][]float64{{7}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.FromBuffer(tc.buf)
			require.NoError(t, err)
			requireRows(t, tc.want, m)
		})
	}
}

func TestFromBuffer_Errors(t *testing.T) {
	cases := []struct {
		name string
		buf  any
		want error
	}{
		{"nil", nil, matrix.ErrBadShape},
		{"rank1", []float64{1, 2, 3}, matrix.ErrBadShape},
		{"rank3", [][][]float64{{{1}}}, matrix.ErrBadShape},
		{"ragged", [][]int{{1, 2}, {3}}, matrix.ErrBadShape},
		{"empty", [][]float64{}, matrix.ErrBadShape},
		{"strings", [][]string{{"a"}}, matrix.ErrNotNumeric},
		{"bools", [][]bool{{true}}, matrix.ErrNotNumeric},
		{"string cell", [][]any{{1, "x"}}, matrix.ErrNotNumeric},
		{"scalar", 3.0, matrix.ErrBadShape},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.FromBuffer(tc.buf)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestFromBuffer_DenseIsCopied(t *testing.T) {
	src := grid3(t)
	m, err := matrix.FromBuffer(src)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, -1))
	require.Equal(t, 1.0, MustAt(t, src, 0, 0))
}

// fakeTable is a minimal matrix.Tabular.
type fakeTable struct {
	names   []string
	numeric []bool
	cells   [][]*float64 // [col][row]
}

func (f fakeTable) NumRows() int {
	if len(f.cells) == 0 {
		return 0
	}
	return len(f.cells[0])
}
func (f fakeTable) NumCols() int { return len(f.names) }
func (f fakeTable) ColumnName(j int) string { return f.names[j] }
func (f fakeTable) ColumnNumeric(j int) bool { return f.numeric[j] }
func (f fakeTable) Cell(i, j int) (float64, bool) {
	p := f.cells[j][i]
	if p == nil {
		return 0, false
	}
	return *p, true
}

func fp(v float64) *float64 { return &v }

func TestFromTable_ColumnOrderAndMissing(t *testing.T) {
	tbl := fakeTable{
		names:   []string{"a", "b"},
		numeric: []bool{true, true},
		cells: [][]*float64{
			{fp(1), fp(2), nil},
			{fp(math.NaN()), fp(5), fp(6)},
		},
	}
	m, err := matrix.FromTable(tbl)
	require.NoError(t, err)
	requireRows(t, [][]float64{{1, 0}, {2, 5}, {0, 6}}, m)
}

func TestFromTable_Errors(t *testing.T) {
	_, err := matrix.FromTable(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.FromTable(fakeTable{
		names:   []string{"x", "date"},
		numeric: []bool{true, false},
		cells:   [][]*float64{{fp(1)}, {nil}},
	})
	require.ErrorIs(t, err, matrix.ErrNotNumeric)
	require.Contains(t, err.Error(), `"date"`)

	_, err = matrix.FromTable(fakeTable{})
	require.ErrorIs(t, err, matrix.ErrBadShape)
}
