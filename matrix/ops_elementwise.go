// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise kernels (ew*) so the arithmetic
//     and comparison dispatchers share one tight loop per operand shape.
//   - Keep all loops deterministic and cache-friendly over the flat buffer.
//
// Design:
//   - All ew* are UNEXPORTED (internal micro-kernels); shape checks happen in
//     the caller before a kernel runs.
//   - Arithmetic kernels normalize every produced cell, so derived results
//     satisfy the finite-cell invariant exactly like constructed ones.
//
// Determinism & Performance:
//   - Flat 0..n-1 loop; no hidden allocations beyond the output.

package matrix

import "math"

// binaryFunc combines two cells into one.
type binaryFunc func(x, y float64) float64

// predicateFunc compares two cells.
type predicateFunc func(x, y float64) bool

// Arithmetic cell functions shared by the dispatcher.
var (
	fnAdd binaryFunc = func(x, y float64) float64 { return x + y }
	fnSub binaryFunc = func(x, y float64) float64 { return x - y }
	fnMul binaryFunc = func(x, y float64) float64 { return x * y }
	fnDiv binaryFunc = func(x, y float64) float64 { return x / y }
)

// Comparison and logical cell predicates. Logical ops treat nonzero as true.
var (
	fnLt  predicateFunc = func(x, y float64) bool { return x < y }
	fnLe  predicateFunc = func(x, y float64) bool { return x <= y }
	fnGt  predicateFunc = func(x, y float64) bool { return x > y }
	fnGe  predicateFunc = func(x, y float64) bool { return x >= y }
	fnEq  predicateFunc = func(x, y float64) bool { return x == y }
	fnAnd predicateFunc = func(x, y float64) bool { return x != 0 && y != 0 }
	fnOr  predicateFunc = func(x, y float64) bool { return x != 0 || y != 0 }
)

// ewBinary computes out[k] = normalize(f(a[k], b[k])) for equal shapes.
// Time: O(r*c). Space: O(r*c).
func ewBinary(a, b *Dense, f binaryFunc) *Dense {
	out := newDenseLike(a)
	for k, av := range a.data {
		out.data[k] = normalize(f(av, b.data[k]))
	}

	return out
}

// ewScalar computes out[k] = normalize(f(a[k], s)).
// Time: O(r*c). Space: O(r*c).
func ewScalar(a *Dense, s float64, f binaryFunc) *Dense {
	out := newDenseLike(a)
	for k, av := range a.data {
		out.data[k] = normalize(f(av, s))
	}

	return out
}

// ewCompare computes mask[k] = p(a[k], b[k]) for equal shapes.
// Time: O(r*c). Space: O(r*c).
func ewCompare(a, b *Dense, p predicateFunc) *Mask {
	out := newMaskLike(a)
	for k, av := range a.data {
		out.data[k] = p(av, b.data[k])
	}

	return out
}

// ewCompareScalar computes mask[k] = p(a[k], s).
// Time: O(r*c). Space: O(r*c).
func ewCompareScalar(a *Dense, s float64, p predicateFunc) *Mask {
	out := newMaskLike(a)
	for k, av := range a.data {
		out.data[k] = p(av, s)
	}

	return out
}

// ewAllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
//   - NaN tolerances are rejected with ErrNotNumeric.
func ewAllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) {
		return false, ErrNotNumeric
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateSameShape(a, b); err != nil {
		return false, err
	}

	var diff float64
	for k, av := range a.data {
		diff = math.Abs(av - b.data[k])
		if diff > atol+rtol*math.Abs(b.data[k]) {
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}
