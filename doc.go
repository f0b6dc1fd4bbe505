// Package sklearncollection is a small numeric toolkit built around a
// validated dense matrix.
//
// What is inside?
//
//	matrix/       - Dense: non-empty, finite, row-major float64 matrix with a
//	                closed operand algebra (matrix, rank-2 buffer, scalar),
//	                comparison masks, reductions and a truncating display.
//	tagged/       - Tagged[T]: a matrix plus an optional tag merged through
//	                every arithmetic operation.
//	table/        - labeled, typed columns with a YAML document form; the
//	                ingest source for matrix.FromTable.
//	cmd/gridstat  - CLI that loads a YAML table and prints summaries,
//	                reductions, masks and scaled copies.
//	examples/     - a runnable scenario combining all of the above.
//
// Quick start:
//
//	m, _ := matrix.FromBuffer([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
//	fmt.Println(m)           // Matrix: 3×3 ...
//	twice, _ := m.Mul(2)     // scalar
//	sum, _ := m.Add(twice)   // matrix
//	mask, _ := sum.Lt(10)    // comparison mask
//	fmt.Println(m.Sum(), m.Median(), mask.Count())
//
// The library packages never log and never panic on user input; every
// failure is a sentinel error matched with errors.Is.
package sklearncollection
