// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors and the typed
// operand error used across the matrix package. All operations MUST return
// these sentinels and tests MUST check them via errors.Is / errors.As.
// No operation panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Operations wrap with fmt.Errorf("Op: %w", ErrX)
// at the detection site; callers still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> operand kind -> shape/rank -> dimension mismatch -> index/axis.

var (
	// ErrBadShape is returned when an input is not a non-empty rectangular
	// rank-2 buffer (rank 1, rank 3+, ragged rows, zero rows or zero columns).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch indicates two rank-2 operands of different shapes
	// met in an elementwise operation. It is a shape error: errors.Is(err,
	// ErrBadShape) also holds.
	ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrBadShape)

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNotNumeric is returned at ingest when a buffer element type or a
	// tabular column is not numeric.
	ErrNotNumeric = errors.New("matrix: non-numeric data")

	// ErrOperandType is the sentinel matched by every *OperandTypeError.
	ErrOperandType = errors.New("matrix: unsupported operand type")

	// ErrBadAxis is returned by axis reductions for anything but AxisColumns
	// or AxisRows.
	ErrBadAxis = errors.New("matrix: invalid axis")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
// Keep it as an alias so errors.Is(err, ErrIndexOutOfBounds) remains true.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.

// OperandTypeError reports a right-hand operand whose kind is none of
// {Matrix, rank-2 numeric buffer, scalar}.
type OperandTypeError struct {
	Op   string // operation tag, e.g. "Add"
	Type string // Go type of the rejected operand, as printed by %T
}

// Error implements error.
func (e *OperandTypeError) Error() string {
	return fmt.Sprintf("%s: cannot operate on a Matrix and a %s value; convert it to a Matrix first", e.Op, e.Type)
}

// Unwrap lets errors.Is(err, ErrOperandType) match.
func (e *OperandTypeError) Unwrap() error { return ErrOperandType }

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// operandTypeError builds the typed error for op and the rejected value v.
func operandTypeError(op string, v any) error {
	return &OperandTypeError{Op: op, Type: fmt.Sprintf("%T", v)}
}
