// SPDX-License-Identifier: MIT

// Command gridstat loads a YAML table, builds a matrix from its numeric
// columns and prints summaries, reductions, comparisons and scaled copies.
package main

func main() {
	Execute()
}
