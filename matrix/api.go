// SPDX-License-Identifier: MIT

// Package matrix: public facade over the impl_* kernels.
// Each exported function validates its inputs and delegates; tags in error
// messages name the public operation.
package matrix

import "fmt"

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Row returns an owned copy of row i (length Cols()).
// Errors: ErrNilMatrix, ErrOutOfRange.
func Row(m Matrix, i int) ([]float64, error) { return row(m, i) }

// Col returns an owned copy of column j (length Rows()).
// Errors: ErrNilMatrix, ErrOutOfRange.
func Col(m Matrix, j int) ([]float64, error) { return col(m, j) }

// Min returns the global minimum over all cells.
func Min(m Matrix) (float64, error) { return globalMin(m) }

// Max returns the global maximum over all cells.
func Max(m Matrix) (float64, error) { return globalMax(m) }

// RescaleForMinimization rewrites m in place as cell ← Max(m) − cell, turning
// a cost matrix into a score matrix whose argmax is the original argmin.
// Callers that need the original values must Clone first.
func RescaleForMinimization(m Matrix) error { return rescaleForMinimization(m) }

// CloneMatrix returns a deep copy of m, or nil if m is nil.
func CloneMatrix(m Matrix) Matrix {
	if ValidateNotNil(m) != nil {
		return nil
	}

	return m.Clone()
}
