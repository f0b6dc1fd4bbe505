// SPDX-License-Identifier: MIT

package tagged_test

import (
	"fmt"

	"github.com/0xdomyz/sklearn-collection/matrix"
	"github.com/0xdomyz/sklearn-collection/tagged"
)

// ExampleTagged_Add shows how tags meet: equal tags survive, different tags
// are dropped, and untagged operands leave the receiver's tag alone.
func ExampleTagged_Add() {
	base, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	x, _ := tagged.New(base, tagged.Some("2024-01-01"))
	y, _ := tagged.New(base, tagged.Some("2024-01-02"))

	same, _ := x.Add(x)
	mixed, _ := x.Add(y)
	plain, _ := x.Add(base)
	fmt.Println(same.Tag(), mixed.Tag(), plain.Tag())

	// Output:
	// 2024-01-01 <none> 2024-01-01
}

// ExampleTagged_DoubleSub computes 2*x - y and keeps x's tag.
func ExampleTagged_DoubleSub() {
	base, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	x, _ := tagged.New(base, tagged.Some("x"))
	y, _ := tagged.New(base, tagged.Some("y"))

	res, _ := x.DoubleSub(y)
	fmt.Println(res)

	_, err := x.DoubleSub(1.5)
	fmt.Println(err)

	// Output:
	// Tagged: 2×2
	// [1, 2]
	// [3, 4]
	// x
	// DoubleSub: cannot calculate with a float64 value; convert it to a Matrix first
}
