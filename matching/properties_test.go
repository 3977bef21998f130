package matching_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/rematch/matching"
	"github.com/katalvlaran/rematch/matrix"
	"github.com/stretchr/testify/require"
)

// randomGrid draws from a small value set so ties and repeated maxima are common.
func randomGrid(rng *rand.Rand, rows, cols int) [][]float64 {
	vals := []float64{0, 0.5, 1, 2, 3, -1}
	g := make([][]float64, rows)
	for i := range g {
		g[i] = make([]float64, cols)
		for j := range g[i] {
			g[i][j] = vals[rng.Intn(len(vals))]
		}
	}
	return g
}

// TestRunInvariants checks table length, index range, uniqueness and the
// floor guarantee over many random shapes.
func TestRunInvariants(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	for iter := 0; iter < 500; iter++ {
		rows, cols := 1+rng.Intn(7), 1+rng.Intn(7)
		grid := randomGrid(rng, rows, cols)
		m := mustDense(t, grid)
		floor, err := matrix.Min(m)
		require.NoError(t, err)

		for _, axis := range []matching.Axis{matching.Rows, matching.Columns} {
			for _, limited := range []bool{false, true} {
				mt, err := matching.NewMatcher(m, axis, limited)
				require.NoError(t, err)
				res, err := mt.Run()
				require.NoError(t, err)

				size, width := rows, cols
				if axis == matching.Columns {
					size, width = cols, rows
				}
				require.Len(t, res, size)

				seen := make(map[int]int, len(res))
				for i, r := range res {
					k, ok := r.Index()
					if !ok {
						continue
					}
					require.GreaterOrEqual(t, k, 0)
					require.Less(t, k, width)
					prev, dup := seen[k]
					require.Falsef(t, dup, "grid %v axis %s: subjects %d and %d share %d", grid, axis, prev, i, k)
					seen[k] = i

					if limited {
						var s float64
						if axis == matching.Columns {
							s = grid[k][i]
						} else {
							s = grid[i][k]
						}
						require.Greater(t, s, floor)
					}
				}

				// Without the floor, every counterpart is used when subjects
				// are at least as many, and every subject when counterparts are.
				if !limited {
					want := size
					if width < size {
						want = width
					}
					require.Equal(t, want, res.Count(), "grid %v axis %s", grid, axis)
				}
			}
		}
	}
}

// TestLimitedColumnsWideGrid has more columns than rows, so the column
// subjects index into rows when their scores are checked against the floor.
func TestLimitedColumnsWideGrid(t *testing.T) {
	grid := [][]float64{
		{0, 5, 1, 3},
		{2, 0, 4, 0},
	}
	res := mustRun(t, grid, matching.Columns, true)
	require.Equal(t, []int{-1, 0, 1, -1}, ints(res))

	for j, r := range res {
		if k, ok := r.Index(); ok {
			require.Greater(t, grid[k][j], 0.0, "column %d", j)
		}
	}
}
