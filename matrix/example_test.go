package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/rematch/matrix"
)

// ExampleRescaleForMinimization converts a cost grid into a score grid.
func ExampleRescaleForMinimization() {
	m, _ := matrix.NewDenseFrom([][]float64{
		{1, 9},
		{9, 1},
	})
	_ = matrix.RescaleForMinimization(m)
	fmt.Print(m)

	// Output:
	// [8, 0]
	// [0, 8]
}

// ExampleCol extracts an owned column copy.
func ExampleCol() {
	m, _ := matrix.NewDenseFrom([][]float64{
		{1, 2},
		{3, 4},
		{5, 6},
	})
	c, _ := matrix.Col(m, 1)
	lo, _ := matrix.Min(m)
	hi, _ := matrix.Max(m)
	fmt.Println(c, lo, hi)

	// Output:
	// [2 4 6] 1 6
}
