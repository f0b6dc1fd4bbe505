// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep every stored cell finite: normalization runs on construction and on Set.
//   - Value semantics: derived results and Copy never alias an existing buffer.
//
// Complexity quicksheet:
//   - newDense: O(r*c) zero-init; At/Set: O(1); Copy/Clone/Flatten: O(r*c).

package matrix

import (
	"fmt"
	"math"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w"; the sentinel is preserved via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is the validated, normalized row-major matrix.
//   - r,c hold dimensions (both > 0 for every reachable instance).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - every element of data is finite (see normalize).
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ Carrier      = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// newDense allocates an r×c zero matrix.
// Stage 1: validate rows>0 && cols>0; else ErrBadShape.
// Stage 2: allocate a zero-filled flat buffer.
// Complexity: O(r*c).
func newDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// newDenseLike allocates a zero matrix with the shape of m. m is already
// validated, so the shape cannot be rejected.
func newDenseLike(m *Dense) *Dense {
	return &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
}

// normalize maps a value onto the finite range:
// NaN → 0, +Inf → +MaxFloat64, -Inf → -MaxFloat64, finite → unchanged.
// Complexity: O(1).
func normalize(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case math.IsInf(v, 1):
		return math.MaxFloat64
	case math.IsInf(v, -1):
		return -math.MaxFloat64
	}

	return v
}

// normalizeAll applies normalize to every cell in place. Re-running it on an
// already normalized buffer is a no-op.
func normalizeAll(data []float64) {
	for k, v := range data {
		data[k] = normalize(v)
	}
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Len returns the number of rows.
func (m *Dense) Len() int { return m.r }

// Size returns the total number of cells (rows*cols).
func (m *Dense) Size() int { return len(m.data) }

// Dense implements Carrier.
func (m *Dense) Dense() *Dense { return m }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// The sentinel is returned bare; At/Set wrap it with coordinates.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range indices.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Single-cell mutation, the only in-place write on the public surface.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: normalize v (NaN → 0, ±Inf → ±MaxFloat64) and write.
//
// Behavior highlights:
//   - The finite-cell invariant holds after every Set; no value is rejected.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = normalize(v)

	return nil
}

// Copy returns an independent deep copy with a new buffer.
// Complexity: O(r*c).
func (m *Dense) Copy() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Clone implements Matrix; the dynamic type of the result is *Dense.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix { return m.Copy() }

// Flatten returns all cells in row-major order as a fresh slice.
// Writes to the result never reach m.
// Complexity: O(r*c).
func (m *Dense) Flatten() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// RowSlice returns a copy of row i, or ErrOutOfRange.
func (m *Dense) RowSlice(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Dense.RowSlice(%d): %w", i, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// ToRows returns the matrix as a freshly allocated [][]float64.
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// Equal reports whether o has the same shape and identical cells.
// Use AllClose for a tolerance-based comparison.
func (m *Dense) Equal(o *Dense) bool {
	if o == nil || m.r != o.r || m.c != o.c {
		return false
	}
	for k, v := range m.data {
		if v != o.data[k] {
			return false
		}
	}

	return true
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
// Complexity: O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}
