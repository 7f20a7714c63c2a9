// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/linreg/matrix"
)

// ExampleInverse inverts the cross-product matrix of a design with an
// intercept column and x = 1..4.
func ExampleInverse() {
	a, _ := matrix.NewDenseFrom([][]float64{{4, 10}, {10, 30}})
	inv, err := matrix.Inverse(a)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i := 0; i < 2; i++ {
		v0, _ := inv.At(i, 0)
		v1, _ := inv.At(i, 1)
		fmt.Printf("%.2f %.2f\n", v0, v1)
	}
	// Output:
	// 1.50 -0.50
	// -0.50 0.20
}

// ExampleMulTA forms DᵀD directly from the design matrix.
func ExampleMulTA() {
	d, _ := matrix.NewDenseFrom([][]float64{{1, 1}, {1, 2}, {1, 3}, {1, 4}})
	xtx, _ := matrix.MulTA(d, d)
	fmt.Print(xtx)
	// Output:
	// [4, 10]
	// [10, 30]
}

// ExampleMul shows the mismatch error for incompatible shapes.
func ExampleMul() {
	a, _ := matrix.NewDense(2, 3)
	b, _ := matrix.NewDense(2, 2)
	_, err := matrix.Mul(a, b)
	fmt.Println(err)
	// Output:
	// Mul: ValidateMulCompatible: matrix: dimension mismatch
}
