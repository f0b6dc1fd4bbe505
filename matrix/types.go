// SPDX-License-Identifier: MIT

// Package matrix - domain types shared by the store, the operand dispatcher,
// the reductions and the ingest adapters.
// This file intentionally contains ONLY domain-facing types and interfaces.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

// Carrier is the "same-type" operand kind: anything backed by a *Dense.
// *Dense returns itself; wrappers (see package tagged) return their base.
// The returned pointer is read, never written, by the dispatcher.
type Carrier interface {
	Dense() *Dense
}

// Number is the set of element types accepted by FromRows.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Axis selects the direction of a reduction.
//   - AxisColumns (0): reduce down each column, one result per column.
//   - AxisRows    (1): reduce across each row, one result per row.
//
// Whole-matrix reductions have their own methods (Sum, Mean, ...).
type Axis int

const (
	AxisColumns Axis = 0 // per-column result, len == Cols()
	AxisRows    Axis = 1 // per-row result, len == Rows()
)

// Tabular is the ingest contract for labeled, column-typed sources.
// Columns are read in index order; a cell with ok == false is missing and
// normalizes to zero.
type Tabular interface {
	NumRows() int
	NumCols() int
	ColumnName(j int) string
	ColumnNumeric(j int) bool
	Cell(i, j int) (v float64, ok bool)
}

// operandKind is the closed enumeration of right-hand operand shapes.
type operandKind uint8

const (
	kindInvalid operandKind = iota // rejected with *OperandTypeError
	kindMatrix                     // Carrier
	kindBuffer                     // rank-2 numeric slice/array
	kindScalar                     // any Go int/uint/float value
)
