package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/rematch/matrix"
)

// gridMatrix is a minimal non-Dense Matrix used to drive the At/Set
// fallback paths of the package functions.
type gridMatrix struct {
	cells [][]float64
}

func newGridMatrix(cells [][]float64) *gridMatrix {
	cp := make([][]float64, len(cells))
	for i := range cells {
		cp[i] = append([]float64(nil), cells[i]...)
	}
	return &gridMatrix{cells: cp}
}

func (g *gridMatrix) Rows() int { return len(g.cells) }
func (g *gridMatrix) Cols() int { return len(g.cells[0]) }

func (g *gridMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= g.Rows() || j < 0 || j >= g.Cols() {
		return 0, fmt.Errorf("gridMatrix.At(%d,%d): %w", i, j, matrix.ErrOutOfRange)
	}
	return g.cells[i][j], nil
}

func (g *gridMatrix) Set(i, j int, v float64) error {
	if i < 0 || i >= g.Rows() || j < 0 || j >= g.Cols() {
		return fmt.Errorf("gridMatrix.Set(%d,%d): %w", i, j, matrix.ErrOutOfRange)
	}
	g.cells[i][j] = v
	return nil
}

func (g *gridMatrix) Clone() matrix.Matrix { return newGridMatrix(g.cells) }

var _ matrix.Matrix = (*gridMatrix)(nil)
