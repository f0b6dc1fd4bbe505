// Package matrix is a value-semantics dense matrix with a closed operand algebra.
//
// The matrix package provides:
//
//   - Dense, a validated rank-2 float64 store (row-major, non-empty, every
//     cell finite). Construction normalizes input: NaN and missing cells
//     become 0, ±Inf become ±MaxFloat64.
//   - Construction adapters: FromRows (typed), FromBuffer (any rank-2 numeric
//     slice or array) and FromTable (labeled columns, all numeric).
//   - An operator algebra (Add, Sub, RSub, Mul, Div, Neg) and comparisons
//     (Lt, Le, Gt, Ge, Eq, And, Or) over three operand kinds: another matrix
//     (any Carrier), a raw rank-2 buffer of the same shape, or a scalar.
//     Anything else fails with *OperandTypeError.
//   - Reductions (Sum, Mean, Std, Min, Max, Median, CountZeros), whole-matrix
//     or along an Axis.
//   - A size-gated display (String, Format).
//
// Every operation returns a new value; only Set mutates a matrix in place.
// Nothing is locked internally: share a *Dense across goroutines only with
// external coordination.
//
// See package tagged for a wrapper that carries metadata through the algebra.
package matrix
