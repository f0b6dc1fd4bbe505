// Package tagged attaches an optional metadata tag to a matrix and carries
// it through the matrix algebra.
//
// Every arithmetic call on a *Tagged computes its numeric result with
// package matrix and its tag with a MergeFunc. The default, MergeEqual,
// keeps the left tag unless both operands are tagged with different
// values, in which case the result is untagged:
//
//	a, _ := tagged.FromBuffer([][]float64{{1, 2}}, tagged.Some("2021-01-01"))
//	b, _ := tagged.FromBuffer([][]float64{{3, 4}}, tagged.Some("2021-01-02"))
//	c, _ := a.Add(b) // c.Tag().Valid == false
//
// A plain *matrix.Dense operand, a raw buffer or a scalar never changes the
// tag. Comparisons return untagged masks.
package tagged
