// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Classify a right-hand operand into the closed set of operand kinds
//     {Matrix, rank-2 buffer, scalar} and resolve it into a value the
//     elementwise kernels can consume.
//   - Reject every other kind with a typed *OperandTypeError naming the Go type.
//
// Design:
//   - classify is the single exhaustive match; methods.go never inspects
//     operand types on its own.
//   - Buffers are materialized through FromBuffer, so they are copied and
//     normalized exactly like constructor input.

package matrix

import (
	"fmt"
	"reflect"
)

// operand is a resolved right-hand side.
//   - kind == kindScalar: s holds the value.
//   - kind == kindMatrix / kindBuffer: m holds a validated *Dense.
type operand struct {
	kind operandKind
	m    *Dense
	s    float64
}

// classify maps any Go value onto an operandKind.
// Complexity: O(depth of the static type) for buffers, O(1) otherwise.
func classify(other any) operandKind {
	switch other.(type) {
	case nil:
		return kindInvalid
	case Carrier:
		return kindMatrix
	}

	t := reflect.TypeOf(other)
	switch {
	case isNumericKind(t.Kind()):
		return kindScalar
	case t.Kind() == reflect.Slice || t.Kind() == reflect.Array:
		if leaf, _ := bufferLeaf(t); leafAccepted(leaf) {
			return kindBuffer
		}
	}

	return kindInvalid
}

// resolveOperand classifies other and turns it into an operand.
// MAIN DESCRIPTION:
//   - Exhaustive switch over operandKind; the default branch is the typed error.
//
// Errors:
//   - *OperandTypeError (errors.Is ErrOperandType) for unsupported kinds.
//   - ErrNilMatrix for a nil Carrier.
//   - ErrBadShape / ErrNotNumeric from FromBuffer for malformed buffers.
//
// Complexity:
//   - O(1) for scalars and matrices, O(r*c) for buffers (copy + normalize).
func resolveOperand(op string, other any) (operand, error) {
	switch classify(other) {
	case kindMatrix:
		c := other.(Carrier)
		if err := ValidateNotNil(c); err != nil {
			return operand{}, matrixErrorf(op, err)
		}
		return operand{kind: kindMatrix, m: c.Dense()}, nil

	case kindBuffer:
		d, err := FromBuffer(other)
		if err != nil {
			return operand{}, matrixErrorf(op, err)
		}
		return operand{kind: kindBuffer, m: d}, nil

	case kindScalar:
		s, err := cellValue(reflect.ValueOf(other))
		if err != nil {
			return operand{}, matrixErrorf(op, err)
		}
		return operand{kind: kindScalar, s: s}, nil

	case kindInvalid:
		return operand{}, operandTypeError(op, other)
	}

	// unreachable: classify only returns the kinds above
	panic(fmt.Sprintf("matrix: unhandled operand kind for %T", other))
}
