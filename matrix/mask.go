// SPDX-License-Identifier: MIT
// Package matrix - Mask, the boolean buffer produced by comparisons.
//
// A Mask is deliberately not a Matrix: it never enters the arithmetic algebra
// and carries no normalization policy. It has the shape of the comparison's
// left operand and the same row-major layout as Dense.

package matrix

import (
	"fmt"
	"strings"
)

// Mask is an r×c row-major buffer of booleans.
type Mask struct {
	r, c int
	data []bool
}

// newMaskLike allocates an all-false mask with the shape of m.
func newMaskLike(m *Dense) *Mask {
	return &Mask{r: m.r, c: m.c, data: make([]bool, len(m.data))}
}

// Shape returns (rows, cols).
func (k *Mask) Shape() (rows, cols int) { return k.r, k.c }

// At returns the flag at (row, col) or ErrOutOfRange.
func (k *Mask) At(row, col int) (bool, error) {
	if row < 0 || row >= k.r || col < 0 || col >= k.c {
		return false, fmt.Errorf("Mask.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return k.data[row*k.c+col], nil
}

// All reports whether every flag is set.
func (k *Mask) All() bool {
	for _, b := range k.data {
		if !b {
			return false
		}
	}

	return true
}

// Any reports whether at least one flag is set.
func (k *Mask) Any() bool {
	for _, b := range k.data {
		if b {
			return true
		}
	}

	return false
}

// Count returns the number of set flags.
func (k *Mask) Count() int {
	n := 0
	for _, b := range k.data {
		if b {
			n++
		}
	}

	return n
}

// ToRows returns the mask as a freshly allocated [][]bool.
func (k *Mask) ToRows() [][]bool {
	out := make([][]bool, k.r)
	for i := 0; i < k.r; i++ {
		row := make([]bool, k.c)
		copy(row, k.data[i*k.c:(i+1)*k.c])
		out[i] = row
	}

	return out
}

// String renders rows as "[true, false]" lines.
func (k *Mask) String() string {
	var b strings.Builder
	for i := 0; i < k.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < k.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			fmt.Fprintf(&b, "%t", k.data[i*k.c+j])
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
