// SPDX-License-Identifier: MIT
// Package matrix - display formatter.
//
// Policy:
//   - Header "<label>: <rows>×<cols>".
//   - rows*cols > truncateAbove: append ", top N rows and columns:" and render
//     only the leading N×N block (N = corner, clipped to the shape).
//   - Otherwise render the full buffer.
//   - Rows render as "[a, b, c]" with %g, one per line.

package matrix

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Format renders the bounded, human-readable summary of m.
// Complexity: O(min(r,N)*min(c,N)) when truncated, O(r*c) otherwise.
func Format(m Carrier, opts ...Option) string {
	o := gatherOptions(opts...)
	if ValidateNotNil(m) != nil {
		return o.label + ": <nil>"
	}
	d := m.Dense()

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d×%d", o.label, d.r, d.c)

	rows, cols := d.r, d.c
	if d.r*d.c > o.truncateAbove {
		rows, cols = min(rows, o.corner), min(cols, o.corner)
		fmt.Fprintf(&b, ", top %d rows and columns:", o.corner)
	}
	b.WriteByte('\n')
	d.writeBlock(&b, rows, cols)

	return strings.TrimSuffix(b.String(), "\n")
}

// String implements fmt.Stringer with the default display policy.
func (m *Dense) String() string { return Format(m) }

// writeBlock renders the leading rows×cols block of m.
func (m *Dense) writeBlock(b *strings.Builder, rows, cols int) {
	var i, j, base int
	for i = 0; i < rows; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < cols; j++ {
			fmt.Fprintf(b, "%g", m.data[base+j])
			if j+1 < cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}
}
