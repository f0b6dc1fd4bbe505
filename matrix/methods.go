// SPDX-License-Identifier: MIT
// Package matrix - the operator algebra.
//
// Purpose:
//   - Elementwise arithmetic (Add, Sub, RSub, Mul, Div, Neg) and comparisons
//     (Lt, Le, Gt, Ge, Eq, And, Or) dispatched over the closed operand set
//     {Matrix (Carrier), rank-2 numeric buffer, scalar}.
//
// Contracts:
//   - Results are new *Dense (or *Mask) values; the receiver and the operand
//     are never mutated.
//   - Matrix and buffer operands must have exactly the receiver's shape
//     (ErrDimensionMismatch). No broadcasting beyond scalars.
//   - Any other operand kind fails with *OperandTypeError.
//   - Arithmetic results are re-normalized: x/0 yields ±MaxFloat64 and 0/0 yields 0.
//
// Complexity:
//   - O(r*c) time and memory per call (+O(r*c) to materialize a buffer operand).

package matrix

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd   = "Add"
	opSub   = "Sub"
	opRSub  = "RSub"
	opMul   = "Mul"
	opDiv   = "Div"
	opNeg   = "Neg"
	opLt    = "Lt"
	opLe    = "Le"
	opGt    = "Gt"
	opGe    = "Ge"
	opEq    = "Eq"
	opAnd   = "And"
	opOr    = "Or"
	opSumOf = "SumOf"
	opClose = "AllClose"
)

// arith is the shared arithmetic dispatcher.
// Stage 1 (Validate): receiver non-nil; resolve operand kind.
// Stage 2 (Execute): scalar → ewScalar; matrix/buffer → shape check + ewBinary.
// Complexity: O(r*c).
func (m *Dense) arith(op string, other any, f binaryFunc) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(op, err)
	}
	o, err := resolveOperand(op, other)
	if err != nil {
		return nil, err
	}
	if o.kind == kindScalar {
		return ewScalar(m, o.s, f), nil
	}
	if err = ValidateSameShape(m, o.m); err != nil {
		return nil, matrixErrorf(op, err)
	}

	return ewBinary(m, o.m, f), nil
}

// compare is the shared comparison dispatcher; same operand rules as arith.
func (m *Dense) compare(op string, other any, p predicateFunc) (*Mask, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(op, err)
	}
	o, err := resolveOperand(op, other)
	if err != nil {
		return nil, err
	}
	if o.kind == kindScalar {
		return ewCompareScalar(m, o.s, p), nil
	}
	if err = ValidateSameShape(m, o.m); err != nil {
		return nil, matrixErrorf(op, err)
	}

	return ewCompare(m, o.m, p), nil
}

// Add returns m + other elementwise. Addition is commutative, so it also
// serves as the reflected form (other + m).
func (m *Dense) Add(other any) (*Dense, error) { return m.arith(opAdd, other, fnAdd) }

// Sub returns m - other elementwise.
func (m *Dense) Sub(other any) (*Dense, error) { return m.arith(opSub, other, fnSub) }

// RSub returns other - m, computed as Neg(m) + other.
func (m *Dense) RSub(other any) (*Dense, error) {
	neg, err := m.Neg()
	if err != nil {
		return nil, matrixErrorf(opRSub, err)
	}

	return neg.arith(opRSub, other, fnAdd)
}

// Mul returns m * other elementwise (scalar scaling or Hadamard product for
// a same-shape matrix/buffer). Commutative.
func (m *Dense) Mul(other any) (*Dense, error) { return m.arith(opMul, other, fnMul) }

// Div returns m / other elementwise.
func (m *Dense) Div(other any) (*Dense, error) { return m.arith(opDiv, other, fnDiv) }

// Neg returns -m, defined as Mul(-1).
func (m *Dense) Neg() (*Dense, error) { return m.arith(opNeg, -1.0, fnMul) }

// Lt returns the mask m < other.
func (m *Dense) Lt(other any) (*Mask, error) { return m.compare(opLt, other, fnLt) }

// Le returns the mask m <= other.
func (m *Dense) Le(other any) (*Mask, error) { return m.compare(opLe, other, fnLe) }

// Gt returns the mask m > other.
func (m *Dense) Gt(other any) (*Mask, error) { return m.compare(opGt, other, fnGt) }

// Ge returns the mask m >= other.
func (m *Dense) Ge(other any) (*Mask, error) { return m.compare(opGe, other, fnGe) }

// Eq returns the mask m == other.
func (m *Dense) Eq(other any) (*Mask, error) { return m.compare(opEq, other, fnEq) }

// And returns the mask (m != 0) && (other != 0).
func (m *Dense) And(other any) (*Mask, error) { return m.compare(opAnd, other, fnAnd) }

// Or returns the mask (m != 0) || (other != 0).
func (m *Dense) Or(other any) (*Mask, error) { return m.compare(opOr, other, fnOr) }

// SumOf adds matrices left to right, first + rest[0] + rest[1] + ...
// Each term may be any operand kind accepted by Add.
// Errors: ErrNilMatrix for a nil first term, else whatever Add reports.
// Complexity: O(len(rest) * r*c).
func SumOf(first Carrier, rest ...any) (*Dense, error) {
	if err := ValidateNotNil(first); err != nil {
		return nil, matrixErrorf(opSumOf, err)
	}
	acc := first.Dense().Copy()
	var err error
	for _, term := range rest {
		if acc, err = acc.Add(term); err != nil {
			return nil, matrixErrorf(opSumOf, err)
		}
	}

	return acc, nil
}

// AllClose reports whether a and b have the same shape and every pair of
// cells satisfies |a-b| ≤ atol + rtol*|b|.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNotNumeric (NaN tolerance).
func AllClose(a, b Carrier, rtol, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opClose, err)
	}
	ok, err := ewAllClose(a.Dense(), b.Dense(), rtol, atol)
	if err != nil {
		return false, matrixErrorf(opClose, err)
	}

	return ok, nil
}
