// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Materialize one row or one column as an owned []float64.
//   - The returned slice never aliases matrix storage: callers (the matching
//     engine in particular) are free to overwrite entries while scanning.
//
// Determinism & Performance:
//   - Dense fast-path copies straight from the flat buffer; other Matrix
//     implementations fall back to At with full error propagation.

package matrix

const (
	opRow = "Row"
	opCol = "Col"
)

// row copies row i of m.
// Implementation:
//   - Stage 1: validate m and i.
//   - Stage 2: Dense fast-path (contiguous copy) or At fallback.
//
// Complexity:
//   - Time O(c), Space O(c).
func row(m Matrix, i int) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRow, err)
	}
	if err := ValidateRowIndex(m, i); err != nil {
		return nil, matrixErrorf(opRow, err)
	}
	if d, ok := m.(*Dense); ok {
		return d.rowCopy(i), nil
	}

	c := m.Cols()
	out := make([]float64, c)
	var err error
	for j := 0; j < c; j++ {
		if out[j], err = m.At(i, j); err != nil {
			return nil, matrixErrorf(opRow, err)
		}
	}

	return out, nil
}

// col copies column j of m.
// Complexity: Time O(r), Space O(r).
func col(m Matrix, j int) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opCol, err)
	}
	if err := ValidateColIndex(m, j); err != nil {
		return nil, matrixErrorf(opCol, err)
	}
	if d, ok := m.(*Dense); ok {
		return d.colCopy(j), nil
	}

	r := m.Rows()
	out := make([]float64, r)
	var err error
	for i := 0; i < r; i++ {
		if out[i], err = m.At(i, j); err != nil {
			return nil, matrixErrorf(opCol, err)
		}
	}

	return out, nil
}
