// SPDX-License-Identifier: MIT
// Package tagged - metadata-carrying matrices.
//
// Purpose:
//   - Wrap a *matrix.Dense with an optional, comparable Tag and carry it
//     through every arithmetic operation using a pluggable MergeFunc.
//
// Design:
//   - Composition, not inheritance: Tagged holds (base, tag, merge). The
//     numeric result always comes from the base algebra in package matrix.
//   - rebuild is the variant's own factory: it wraps a base result with a
//     tag while keeping this value's merge policy.
//   - A Tagged is a matrix.Carrier, so plain matrices accept it as operand.

package tagged

import (
	"fmt"
	"strings"

	"github.com/0xdomyz/sklearn-collection/matrix"
)

// Operation name constants for error wrapping.
const (
	opNew       = "tagged.New"
	opDoubleSub = "DoubleSub"
)

// Label is the display header word used by String.
const Label = "Tagged"

// Tag is an optional metadata value. The zero Tag is absent.
type Tag[T comparable] struct {
	Value T
	Valid bool
}

// Some returns a present Tag holding v.
func Some[T comparable](v T) Tag[T] { return Tag[T]{Value: v, Valid: true} }

// None returns the absent Tag.
func None[T comparable]() Tag[T] { return Tag[T]{} }

// String renders the value, or "<none>" when absent.
func (t Tag[T]) String() string {
	if !t.Valid {
		return "<none>"
	}

	return fmt.Sprint(t.Value)
}

// MergeFunc combines the receiver's tag with the operand's tag. An operand
// that is not a Tagged of the same T presents as an absent tag.
type MergeFunc[T comparable] func(self, other Tag[T]) Tag[T]

// MergeEqual is the default policy:
//   - both present and equal → self
//   - both present and different → absent (the tags diverged)
//   - otherwise → self (propagate left)
func MergeEqual[T comparable](self, other Tag[T]) Tag[T] {
	if self.Valid && other.Valid {
		if self.Value == other.Value {
			return self
		}
		return Tag[T]{}
	}

	return self
}

// TypeError is returned by the derived operations when the operand is not
// a matrix. errors.Is(err, matrix.ErrOperandType) holds.
type TypeError struct {
	Op   string
	Type string
}

// Error implements error.
func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: cannot calculate with a %s value; convert it to a Matrix first", e.Op, e.Type)
}

// Unwrap lets errors.Is(err, matrix.ErrOperandType) match.
func (e *TypeError) Unwrap() error { return matrix.ErrOperandType }

// tagCarrier is implemented by every Tagged instantiation, so a tag of one
// type can be seen from a Tagged of another.
type tagCarrier interface {
	tagValue() (any, bool)
}

// Option configures a Tagged at construction.
type Option[T comparable] func(*Tagged[T])

// WithMerge replaces the merge policy. A nil policy keeps MergeEqual.
func WithMerge[T comparable](f MergeFunc[T]) Option[T] {
	return func(t *Tagged[T]) {
		if f != nil {
			t.merge = f
		}
	}
}

// Tagged is a matrix plus an optional tag and its merge policy.
type Tagged[T comparable] struct {
	base  *matrix.Dense
	tag   Tag[T]
	merge MergeFunc[T]
}

var _ matrix.Carrier = (*Tagged[string])(nil)

// New wraps an independent copy of base with tag.
// Errors: matrix.ErrNilMatrix when base is nil.
func New[T comparable](base matrix.Carrier, tag Tag[T], opts ...Option[T]) (*Tagged[T], error) {
	if err := matrix.ValidateNotNil(base); err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}
	t := &Tagged[T]{base: base.Dense().Copy(), tag: tag, merge: MergeEqual[T]}
	for _, opt := range opts {
		opt(t)
	}

	return t, nil
}

// FromBuffer builds the base with matrix.FromBuffer and tags it.
func FromBuffer[T comparable](buf any, tag Tag[T], opts ...Option[T]) (*Tagged[T], error) {
	d, err := matrix.FromBuffer(buf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}

	return New(d, tag, opts...)
}

// Dense implements matrix.Carrier.
func (t *Tagged[T]) Dense() *matrix.Dense {
	if t == nil {
		return nil
	}

	return t.base
}

// Tag returns the current tag. A nil Tagged has an absent tag.
func (t *Tagged[T]) Tag() Tag[T] {
	if t == nil {
		return Tag[T]{}
	}

	return t.tag
}

// SetTag replaces the tag in place. It is a no-op on a nil Tagged.
func (t *Tagged[T]) SetTag(tag Tag[T]) {
	if t != nil {
		t.tag = tag
	}
}

// Copy returns an independent copy sharing nothing with t except the merge
// policy. Copy of a nil Tagged is nil.
func (t *Tagged[T]) Copy() *Tagged[T] {
	if t == nil {
		return nil
	}

	return t.rebuild(t.base.Copy(), t.tag)
}

// At reads a cell of the base matrix.
func (t *Tagged[T]) At(i, j int) (float64, error) {
	if t == nil {
		return 0, matrix.ErrNilMatrix
	}

	return t.base.At(i, j)
}

// Set writes a cell of the base matrix.
func (t *Tagged[T]) Set(i, j int, v float64) error {
	if t == nil {
		return matrix.ErrNilMatrix
	}

	return t.base.Set(i, j, v)
}

// Shape returns (rows, cols) of the base matrix, or (0, 0) for nil.
func (t *Tagged[T]) Shape() (rows, cols int) {
	if t == nil {
		return 0, 0
	}

	return t.base.Shape()
}

// Len returns the number of rows, or 0 for nil.
func (t *Tagged[T]) Len() int {
	if t == nil {
		return 0
	}

	return t.base.Len()
}

// tagValue implements tagCarrier.
func (t *Tagged[T]) tagValue() (any, bool) {
	if t == nil || !t.tag.Valid {
		return nil, false
	}

	return t.tag.Value, true
}

// rebuild is the variant's factory: it wraps a base result with tag and
// keeps t's merge policy. The result owns d.
func (t *Tagged[T]) rebuild(d *matrix.Dense, tag Tag[T]) *Tagged[T] {
	return &Tagged[T]{base: d, tag: tag, merge: t.merge}
}

// mergeWith computes the result tag for an operation with other.
// A present tag of another type never equals t's tag, so when both are
// present the tags have diverged and the result is absent.
func (t *Tagged[T]) mergeWith(other any) Tag[T] {
	var ot Tag[T]
	switch o := other.(type) {
	case *Tagged[T]:
		if o != nil {
			ot = o.tag
		}
	case tagCarrier:
		if _, ok := o.tagValue(); ok && t.tag.Valid {
			return Tag[T]{}
		}
	}

	return t.merge(t.tag, ot)
}

// lift runs a base operation and rebuilds the result with the merged tag.
// The tag is merged before the base call, so it depends on the operands only.
func (t *Tagged[T]) lift(other any, f func(*matrix.Dense, any) (*matrix.Dense, error)) (*Tagged[T], error) {
	if t == nil {
		return nil, matrix.ErrNilMatrix
	}
	tag := t.mergeWith(other)
	d, err := f(t.base, other)
	if err != nil {
		return nil, err
	}

	return t.rebuild(d, tag), nil
}

// Add returns t + other with the merged tag.
func (t *Tagged[T]) Add(other any) (*Tagged[T], error) { return t.lift(other, (*matrix.Dense).Add) }

// Sub returns t - other with the merged tag.
func (t *Tagged[T]) Sub(other any) (*Tagged[T], error) { return t.lift(other, (*matrix.Dense).Sub) }

// RSub returns other - t with the merged tag.
func (t *Tagged[T]) RSub(other any) (*Tagged[T], error) { return t.lift(other, (*matrix.Dense).RSub) }

// Mul returns t * other with the merged tag.
func (t *Tagged[T]) Mul(other any) (*Tagged[T], error) { return t.lift(other, (*matrix.Dense).Mul) }

// Div returns t / other with the merged tag.
func (t *Tagged[T]) Div(other any) (*Tagged[T], error) { return t.lift(other, (*matrix.Dense).Div) }

// Neg returns -t. The scalar operand never carries a tag, so the tag is
// merged against absent.
func (t *Tagged[T]) Neg() (*Tagged[T], error) { return t.Mul(-1.0) }

// Lt, Le, Gt, Ge, Eq, And, Or compare through the base algebra. Masks carry
// no tag. A nil Tagged reports matrix.ErrNilMatrix.
func (t *Tagged[T]) Lt(other any) (*matrix.Mask, error) { return t.Dense().Lt(other) }
func (t *Tagged[T]) Le(other any) (*matrix.Mask, error) { return t.Dense().Le(other) }
func (t *Tagged[T]) Gt(other any) (*matrix.Mask, error) { return t.Dense().Gt(other) }
func (t *Tagged[T]) Ge(other any) (*matrix.Mask, error) { return t.Dense().Ge(other) }
func (t *Tagged[T]) Eq(other any) (*matrix.Mask, error) { return t.Dense().Eq(other) }
func (t *Tagged[T]) And(other any) (*matrix.Mask, error) { return t.Dense().And(other) }
func (t *Tagged[T]) Or(other any) (*matrix.Mask, error) { return t.Dense().Or(other) }

// Double returns 2*t and keeps t's own tag.
func (t *Tagged[T]) Double() (*Tagged[T], error) {
	res, err := t.Mul(2.0)
	if err != nil {
		return nil, err
	}

	return t.rebuild(res.base, t.tag), nil
}

// DoubleSub returns 2*t - other and keeps t's own tag.
// other must be a matrix (any matrix.Carrier); raw buffers and scalars are
// rejected with *TypeError naming their Go type.
func (t *Tagged[T]) DoubleSub(other any) (*Tagged[T], error) {
	if _, ok := other.(matrix.Carrier); !ok {
		return nil, &TypeError{Op: opDoubleSub, Type: fmt.Sprintf("%T", other)}
	}
	twice, err := t.Double()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDoubleSub, err)
	}
	res, err := twice.Sub(other)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDoubleSub, err)
	}

	return t.rebuild(res.base, t.tag), nil
}

// String renders the base display under the "Tagged" label followed by the tag.
func (t *Tagged[T]) String() string {
	if t == nil {
		return Label + ": <nil>"
	}
	var b strings.Builder
	b.WriteString(matrix.Format(t, matrix.WithLabel(Label)))
	b.WriteByte('\n')
	b.WriteString(t.tag.String())

	return b.String()
}
