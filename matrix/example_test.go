// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/sparsead/matrix"
)

// ExampleLUSolver solves a 2×2 coordinate system with a repeated entry.
func ExampleLUSolver() {
	t, err := matrix.NewTriplets(2, 2,
		[]float64{1, 1, 1, 2},
		[]int{0, 0, 1, 1},
		[]int{0, 0, 1, 1})
	if err != nil {
		panic(err)
	}
	x, err := matrix.NewLUSolver().Solve(t, []float64{4, 6})
	if err != nil {
		panic(err)
	}
	fmt.Println(x)
	// Output: [2 2]
}
