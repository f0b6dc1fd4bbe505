// SPDX-License-Identifier: MIT
// Package matrix - construction adapters.
//
// Purpose:
//   - Build a *Dense from a raw rank-2 buffer (FromBuffer, FromRows) or from a
//     labeled tabular source (FromTable).
//   - Always copy the input (no aliasing with caller-owned memory), then normalize.
//
// Contracts:
//   - Rank must be exactly 2, rows must be rectangular and non-empty → else ErrBadShape.
//   - Element type must be numeric (all Go int/uint/float kinds, pointers to
//     them, or interface cells holding them) → else ErrNotNumeric.
//   - nil pointers / nil interface cells are missing values and become 0.
//
// Determinism:
//   - Rows are copied in index order; columns of a Tabular in column order.

package matrix

import (
	"fmt"
	"math"
	"reflect"
)

// Operation name constants for unified error wrapping.
const (
	opFromBuffer = "FromBuffer"
	opFromRows   = "FromRows"
	opFromTable  = "FromTable"
)

// nanValue marks a missing cell until normalization replaces it with zero.
var nanValue = math.NaN()

// FromRows builds a *Dense from a statically typed rank-2 slice.
// MAIN DESCRIPTION:
//   - Typed fast path of FromBuffer for callers that already hold numbers.
//
// Implementation:
//   - Stage 1: validate non-empty, rectangular shape.
//   - Stage 2: copy row by row into a flat buffer, converting to float64.
//   - Stage 3: normalize (NaN → 0, ±Inf → ±MaxFloat64).
//
// Errors:
//   - ErrBadShape for empty or ragged input.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows[T Number](rows [][]T) (*Dense, error) {
	r := len(rows)
	if r == 0 {
		return nil, matrixErrorf(opFromRows, ErrBadShape)
	}
	c := len(rows[0])
	m, err := newDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%s: row %d has %d cells, want %d: %w", opFromRows, i, len(row), c, ErrBadShape)
		}
		base := i * c
		for j, v := range row {
			m.data[base+j] = float64(v)
		}
	}
	normalizeAll(m.data)

	return m, nil
}

// FromBuffer builds a *Dense from any rank-2 numeric buffer.
// MAIN DESCRIPTION:
//   - Dynamic construction adapter: accepts [][]float64 and friends, fixed
//     size arrays, [][]*float64 (nil = missing) and [][]any.
//
// Implementation:
//   - Stage 1: fast path for [][]float64 (delegates to FromRows).
//   - Stage 2: reflect the static type; rank must be 2 and the leaf numeric.
//   - Stage 3: copy cell by cell, mapping missing cells to NaN.
//   - Stage 4: normalize.
//
// Errors:
//   - ErrBadShape when rank != 2, rows are ragged or the buffer is empty.
//   - ErrNotNumeric when the element type (or an interface cell) is not numeric.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromBuffer(buf any) (*Dense, error) {
	switch b := buf.(type) {
	case *Dense:
		return b.Copy(), nil
	case [][]float64:
		m, err := FromRows(b)
		if err != nil {
			return nil, matrixErrorf(opFromBuffer, err)
		}
		return m, nil
	}

	m, err := fromReflect(buf)
	if err != nil {
		return nil, matrixErrorf(opFromBuffer, err)
	}

	return m, nil
}

// FromTable builds a *Dense from a labeled tabular source.
// Stage 1: reject nil and empty tables.
// Stage 2: every column must be numeric (ErrNotNumeric names the first offender).
// Stage 3: copy cells in column order; missing cells become 0.
// Complexity: O(r*c).
func FromTable(t Tabular) (*Dense, error) {
	if t == nil {
		return nil, matrixErrorf(opFromTable, ErrNilMatrix)
	}
	r, c := t.NumRows(), t.NumCols()
	for j := 0; j < c; j++ {
		if !t.ColumnNumeric(j) {
			return nil, fmt.Errorf("%s: column %q: %w", opFromTable, t.ColumnName(j), ErrNotNumeric)
		}
	}
	m, err := newDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromTable, err)
	}
	var (
		i, j int
		v    float64
		ok   bool
	)
	for j = 0; j < c; j++ {
		for i = 0; i < r; i++ {
			if v, ok = t.Cell(i, j); ok {
				m.data[i*c+j] = normalize(v)
			}
		}
	}

	return m, nil
}

// bufferLeaf strips slice/array levels from typ and returns the leaf element
// type together with the number of levels stripped (the buffer rank).
func bufferLeaf(typ reflect.Type) (reflect.Type, int) {
	rank := 0
	for typ.Kind() == reflect.Slice || typ.Kind() == reflect.Array {
		typ = typ.Elem()
		rank++
	}

	return typ, rank
}

// isNumericKind reports whether k is an integer or floating-point kind.
// Bool and complex are excluded.
func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}

	return false
}

// leafAccepted reports whether a buffer leaf type can be converted per cell.
func leafAccepted(leaf reflect.Type) bool {
	switch {
	case isNumericKind(leaf.Kind()):
		return true
	case leaf.Kind() == reflect.Pointer && isNumericKind(leaf.Elem().Kind()):
		return true
	case leaf.Kind() == reflect.Interface:
		return true // checked per cell
	}

	return false
}

// cellValue converts a single buffer cell. Missing cells yield NaN so the
// common normalization maps them to zero.
func cellValue(v reflect.Value) (float64, error) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return v.Float(), nil
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return nanValue, nil
		}
		return cellValue(v.Elem())
	}

	return 0, fmt.Errorf("cell of type %s: %w", v.Type(), ErrNotNumeric)
}

// fromReflect is the generic FromBuffer path.
func fromReflect(buf any) (*Dense, error) {
	if buf == nil {
		return nil, ErrBadShape
	}
	rv := reflect.ValueOf(buf)
	leaf, rank := bufferLeaf(rv.Type())
	if rank != 2 {
		return nil, fmt.Errorf("rank %d: %w", rank, ErrBadShape)
	}
	if !leafAccepted(leaf) {
		return nil, fmt.Errorf("element type %s: %w", leaf, ErrNotNumeric)
	}

	r := rv.Len()
	if r == 0 {
		return nil, ErrBadShape
	}
	c := rv.Index(0).Len()
	m, err := newDense(r, c)
	if err != nil {
		return nil, err
	}

	var row reflect.Value
	for i := 0; i < r; i++ {
		row = rv.Index(i)
		if row.Len() != c {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", i, row.Len(), c, ErrBadShape)
		}
		base := i * c
		for j := 0; j < c; j++ {
			v, err := cellValue(row.Index(j))
			if err != nil {
				return nil, fmt.Errorf("(%d,%d): %w", i, j, err)
			}
			m.data[base+j] = v
		}
	}
	normalizeAll(m.data)

	return m, nil
}
