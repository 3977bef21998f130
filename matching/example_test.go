package matching_test

import (
	"fmt"

	"github.com/katalvlaran/rematch/matching"
	"github.com/katalvlaran/rematch/matrix"
)

// ExampleMatcher_Run matches detections (rows) to tracks (columns) by overlap.
func ExampleMatcher_Run() {
	m, _ := matrix.NewDenseFrom([][]float64{
		{0, 0, 0, 0, 0},
		{0.21, 0.07, 0.05, 0, 0.23},
		{0, 0, 0.38, 0, 0},
		{0, 0, 0.04, 0.5, 0},
		{0.5, 0, 0, 0, 1.0},
	})

	mt, _ := matching.NewMatcher(m, matching.Rows, true)
	res, _ := mt.Run()
	fmt.Println(res)
	for _, p := range res.Pairs() {
		fmt.Printf("row %d -> col %d\n", p.Subject, p.Counterpart)
	}

	// Output:
	// [- 0 2 3 4]
	// row 1 -> col 0
	// row 2 -> col 2
	// row 3 -> col 3
	// row 4 -> col 4
}

// ExampleRecursiveMatch matches on smallest cost instead of largest score.
func ExampleRecursiveMatch() {
	costs, _ := matrix.NewDenseFrom([][]float64{
		{1, 9},
		{9, 1},
	})

	res, _ := matching.RecursiveMatch(costs, matching.Rows, false, true)
	fmt.Println(res.Ints(-1))

	// Output:
	// [0 1]
}
