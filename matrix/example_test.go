// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvsample/matrix"
)

// ExampleFromRows builds a Dense from a point set and reads its centroid.
func ExampleFromRows() {
	m, err := matrix.FromRows([][]float64{{0, 0}, {2, 0}, {1, 3}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	means, _ := matrix.ColumnMeans(m)
	fmt.Println(m.Rows(), m.Cols())
	fmt.Println(means)

	// Output:
	// 3 2
	// [1 1]
}
