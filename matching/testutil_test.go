package matching_test

import (
	"testing"

	"github.com/katalvlaran/rematch/matching"
	"github.com/katalvlaran/rematch/matrix"
	"github.com/stretchr/testify/require"
)

// scenario5 is the detection/track overlap grid used across tests.
var scenario5 = [][]float64{
	{0, 0, 0, 0, 0},
	{0.20689655, 0.07407407, 0.04761905, 0, 0.23076923},
	{0, 0, 0.38461538, 0, 0},
	{0, 0, 0.04347826, 0.5, 0},
	{0.5, 0, 0, 0, 1.0},
}

func mustDense(t testing.TB, grid [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(grid)
	require.NoError(t, err)
	return m
}

// ints flattens a result with -1 for unmatched to keep expectations compact.
func ints(ms matching.Matches) []int { return ms.Ints(-1) }

func mustRun(t testing.TB, grid [][]float64, axis matching.Axis, limited bool, opts ...matching.Option) matching.Matches {
	t.Helper()
	mt, err := matching.NewMatcher(mustDense(t, grid), axis, limited, opts...)
	require.NoError(t, err)
	res, err := mt.Run()
	require.NoError(t, err)
	return res
}
