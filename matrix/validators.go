// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Return tagged sentinel errors so call sites can match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil, including a typed nil *Dense.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateGrid ensures a [][]float64 is non-empty and rectangular.
//
// Errors: ErrInvalidDimensions for no rows or an empty first row,
// ErrDimensionMismatch naming the first row whose length differs.
// Complexity: O(r).
func ValidateGrid(grid [][]float64) error {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return validatorErrorf("ValidateGrid", ErrInvalidDimensions)
	}
	cols := len(grid[0])
	for i := 1; i < len(grid); i++ {
		if len(grid[i]) != cols {
			return validatorErrorf(fmt.Sprintf("ValidateGrid: row %d has %d cols, want %d", i, len(grid[i]), cols), ErrDimensionMismatch)
		}
	}

	return nil
}

// ValidateRowIndex checks 0 ≤ i < m.Rows(). Assumes m is non-nil.
func ValidateRowIndex(m Matrix, i int) error {
	if i < 0 || i >= m.Rows() {
		return validatorErrorf(fmt.Sprintf("ValidateRowIndex(%d)", i), ErrOutOfRange)
	}

	return nil
}

// ValidateColIndex checks 0 ≤ j < m.Cols(). Assumes m is non-nil.
func ValidateColIndex(m Matrix, j int) error {
	if j < 0 || j >= m.Cols() {
		return validatorErrorf(fmt.Sprintf("ValidateColIndex(%d)", j), ErrOutOfRange)
	}

	return nil
}
