// SPDX-License-Identifier: MIT

package tagged_test

import (
	"errors"
	"testing"
	"time"

	"github.com/0xdomyz/sklearn-collection/matrix"
	"github.com/0xdomyz/sklearn-collection/tagged"
	"github.com/stretchr/testify/require"
)

func grid(t *testing.T) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	require.NoError(t, err)

	return m
}

func mustTag(t *testing.T, tag tagged.Tag[string]) *tagged.Tagged[string] {
	t.Helper()
	x, err := tagged.New(grid(t), tag)
	require.NoError(t, err)

	return x
}

func TestMergeEqual(t *testing.T) {
	x, y := tagged.Some("x"), tagged.Some("y")
	none := tagged.None[string]()

	require.Equal(t, x, tagged.MergeEqual(x, x))
	require.Equal(t, none, tagged.MergeEqual(x, y))
	require.Equal(t, x, tagged.MergeEqual(x, none))
	require.Equal(t, none, tagged.MergeEqual(none, x))
}

func TestTagPropagation(t *testing.T) {
	x := mustTag(t, tagged.Some("x"))
	x2 := mustTag(t, tagged.Some("x"))
	y := mustTag(t, tagged.Some("y"))

	sum, err := x.Add(x2)
	require.NoError(t, err)
	require.Equal(t, tagged.Some("x"), sum.Tag())

	diverged, err := x.Add(y)
	require.NoError(t, err)
	require.False(t, diverged.Tag().Valid)

	// plain matrices, buffers and scalars keep the receiver's tag
	for _, other := range []any{grid(t), [][]float64{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}, 2} {
		res, err := x.Mul(other)
		require.NoError(t, err)
		require.Equal(t, tagged.Some("x"), res.Tag())
	}

	neg, err := y.Neg()
	require.NoError(t, err)
	require.Equal(t, tagged.Some("y"), neg.Tag())
	require.Equal(t, -1.0, mustAt(t, neg, 0, 0))
}

func TestTagged_ArithMatchesBase(t *testing.T) {
	x := mustTag(t, tagged.Some("x"))

	for name, op := range map[string]func(any) (*tagged.Tagged[string], error){
		"add": x.Add, "sub": x.Sub, "rsub": x.RSub, "mul": x.Mul, "div": x.Div,
	} {
		res, err := op(2)
		require.NoError(t, err, name)
		require.Equal(t, 3, res.Len(), name)
	}

	r, err := x.RSub(10)
	require.NoError(t, err)
	require.Equal(t, 9.0, mustAt(t, r, 0, 0))

	d, err := x.Div(2)
	require.NoError(t, err)
	require.Equal(t, 0.5, mustAt(t, d, 0, 0))

	// the receiver is unchanged
	require.Equal(t, 1.0, mustAt(t, x, 0, 0))
}

func TestTagged_AsOperandOfPlainMatrix(t *testing.T) {
	x := mustTag(t, tagged.Some("x"))
	res, err := grid(t).Sub(x)
	require.NoError(t, err)
	require.Equal(t, 0.0, res.Sum())
}

func TestTagged_Compare(t *testing.T) {
	x := mustTag(t, tagged.Some("x"))

	mask, err := x.Gt(4)
	require.NoError(t, err)
	require.Equal(t, 5, mask.Count())

	eq, err := x.Eq(grid(t))
	require.NoError(t, err)
	require.True(t, eq.All())

	_, err = x.Lt("4")
	require.ErrorIs(t, err, matrix.ErrOperandType)
}

func TestDouble(t *testing.T) {
	x := mustTag(t, tagged.Some("x"))

	d, err := x.Double()
	require.NoError(t, err)
	require.Equal(t, tagged.Some("x"), d.Tag())
	require.Equal(t, 2.0, mustAt(t, d, 0, 0))
	require.Equal(t, 18.0, mustAt(t, d, 2, 2))
}

func TestDoubleSub(t *testing.T) {
	x := mustTag(t, tagged.Some("x"))
	y := mustTag(t, tagged.Some("y"))

	// tags differ, yet the receiver's tag is kept
	res, err := x.DoubleSub(y)
	require.NoError(t, err)
	require.Equal(t, tagged.Some("x"), res.Tag())
	require.Equal(t, 1.0, mustAt(t, res, 0, 0))

	plain, err := x.DoubleSub(grid(t))
	require.NoError(t, err)
	require.Equal(t, 45.0, plain.Dense().Sum())

	for _, bad := range []any{2, [][]float64{{1}}, "x"} {
		_, err = x.DoubleSub(bad)
		var te *tagged.TypeError
		require.True(t, errors.As(err, &te), "%T", bad)
		require.ErrorIs(t, err, matrix.ErrOperandType)
	}
	_, err = x.DoubleSub(3)
	require.EqualError(t, err, "DoubleSub: cannot calculate with a int value; convert it to a Matrix first")
}

func TestNew_CopiesAndRejectsNil(t *testing.T) {
	base := grid(t)
	x, err := tagged.New(base, tagged.None[string]())
	require.NoError(t, err)
	require.NoError(t, base.Set(0, 0, 100))
	require.Equal(t, 1.0, mustAt(t, x, 0, 0))

	_, err = tagged.New[string](nil, tagged.None[string]())
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var nilDense *matrix.Dense
	_, err = tagged.New(nilDense, tagged.Some("a"))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestFromBuffer(t *testing.T) {
	x, err := tagged.FromBuffer([][]int{{1, 2}}, tagged.Some(7))
	require.NoError(t, err)
	require.Equal(t, tagged.Some(7), x.Tag())

	_, err = tagged.FromBuffer([]int{1}, tagged.Some(7))
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestCopyAndSetTag(t *testing.T) {
	x := mustTag(t, tagged.Some("x"))
	cp := x.Copy()
	require.NoError(t, cp.Set(0, 0, -5))
	cp.SetTag(tagged.Some("z"))

	require.Equal(t, 1.0, mustAt(t, x, 0, 0))
	require.Equal(t, tagged.Some("x"), x.Tag())
	r, c := cp.Shape()
	require.Equal(t, [2]int{3, 3}, [2]int{r, c})
}

func TestWithMerge_CustomPolicy(t *testing.T) {
	latest := func(self, other tagged.Tag[time.Time]) tagged.Tag[time.Time] {
		if other.Valid && (!self.Valid || other.Value.After(self.Value)) {
			return other
		}
		return self
	}
	d1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	a, err := tagged.New(grid(t), tagged.Some(d1), tagged.WithMerge(latest))
	require.NoError(t, err)
	b, err := tagged.New(grid(t), tagged.Some(d2))
	require.NoError(t, err)

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, tagged.Some(d2), sum.Tag())

	// the policy travels with derived values
	again, err := sum.Add(a)
	require.NoError(t, err)
	require.Equal(t, tagged.Some(d2), again.Tag())
}

func TestString(t *testing.T) {
	x := mustTag(t, tagged.Some("x"))
	require.Equal(t, "Tagged: 3×3\n[1, 2, 3]\n[4, 5, 6]\n[7, 8, 9]\nx", x.String())

	n := mustTag(t, tagged.None[string]())
	require.Contains(t, n.String(), "\n<none>")
}

func mustAt(t *testing.T, x *tagged.Tagged[string], i, j int) float64 {
	t.Helper()
	v, err := x.At(i, j)
	require.NoError(t, err)

	return v
}

func TestTagPropagation_ForeignTagType(t *testing.T) {
	x, err := tagged.FromBuffer([][]int{{1}}, tagged.Some("x"))
	require.NoError(t, err)
	seven, err := tagged.FromBuffer([][]int{{1}}, tagged.Some(7))
	require.NoError(t, err)
	untaggedInt, err := tagged.FromBuffer([][]int{{1}}, tagged.None[int]())
	require.NoError(t, err)
	none, err := tagged.FromBuffer([][]int{{1}}, tagged.None[string]())
	require.NoError(t, err)

	cases := []struct {
		name string
		recv *tagged.Tagged[string]
		arg  any
		want tagged.Tag[string]
	}{
		{"both present, other type", x, seven, tagged.None[string]()},
		{"other type absent", x, untaggedInt, tagged.Some("x")},
		{"receiver absent", none, seven, tagged.None[string]()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sum, err := tc.recv.Add(tc.arg)
			require.NoError(t, err)
			require.Equal(t, tc.want, sum.Tag())
			require.Equal(t, 2.0, mustAt(t, sum, 0, 0))
		})
	}

	// the int-tagged side sees the string tag the same way
	back, err := seven.Sub(x)
	require.NoError(t, err)
	require.Equal(t, tagged.None[int](), back.Tag())
}

func TestNilTagged(t *testing.T) {
	var x *tagged.Tagged[string]

	compares := map[string]func(any) (*matrix.Mask, error){
		"Lt": x.Lt, "Le": x.Le, "Gt": x.Gt, "Ge": x.Ge,
		"Eq": x.Eq, "And": x.And, "Or": x.Or,
	}
	for name, f := range compares {
		_, err := f(1)
		require.ErrorIs(t, err, matrix.ErrNilMatrix, name)
	}

	_, err := x.Add(1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = x.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.ErrorIs(t, x.Set(0, 0, 1), matrix.ErrNilMatrix)

	r, c := x.Shape()
	require.Equal(t, [2]int{0, 0}, [2]int{r, c})
	require.Equal(t, 0, x.Len())
	require.Nil(t, x.Copy())
	require.Equal(t, tagged.None[string](), x.Tag())
	x.SetTag(tagged.Some("ignored"))
	require.Equal(t, "Tagged: <nil>", x.String())
}
