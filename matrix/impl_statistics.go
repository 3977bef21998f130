// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Whole-matrix reductions (global min, global max) as pure scans.
//   - The minimize→maximize rescale (cell ← max − cell) applied in place.
//
// Exposed API (see api.go):
//   - Min(X)                    -> smallest cell
//   - Max(X)                    -> largest cell
//   - RescaleForMinimization(X) -> in-place transform, X mutated
//
// Determinism & Performance:
//   - Fixed i→j traversal for all loops; no caching between calls, so a
//     result always reflects the matrix at the moment of the call.
//   - Dense fast-paths operate on the row-major flat buffer.

package matrix

const (
	opMin     = "Min"
	opMax     = "Max"
	opRescale = "RescaleForMinimization"
)

// extremum scans every cell and keeps the value for which better(v, cur)
// holds. The first cell seeds the scan, so the result is always a real cell.
// Complexity: Time O(r*c), Space O(1).
func extremum(X Matrix, tag string, better func(v, cur float64) bool) (float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return 0, matrixErrorf(tag, err)
	}

	if d, ok := X.(*Dense); ok {
		if len(d.data) == 0 {
			return 0, matrixErrorf(tag, ErrInvalidDimensions)
		}
		cur := d.data[0]
		d.Do(func(_, _ int, v float64) bool {
			if better(v, cur) {
				cur = v
			}

			return true
		})

		return cur, nil
	}

	r, c := X.Rows(), X.Cols()
	cur, err := X.At(0, 0)
	if err != nil {
		return 0, matrixErrorf(tag, err)
	}
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return 0, matrixErrorf(tag, err)
			}
			if better(v, cur) {
				cur = v
			}
		}
	}

	return cur, nil
}

// globalMin returns the smallest cell of X.
// Errors: ErrNilMatrix; wrapped At errors from non-Dense implementations.
func globalMin(X Matrix) (float64, error) {
	return extremum(X, opMin, func(v, cur float64) bool { return v < cur })
}

// globalMax returns the largest cell of X.
// Errors: ErrNilMatrix; wrapped At errors from non-Dense implementations.
func globalMax(X Matrix) (float64, error) {
	return extremum(X, opMax, func(v, cur float64) bool { return v > cur })
}

// rescaleForMinimization replaces every cell v with max − v, in place.
// Implementation:
//   - Stage 1: capture max once (before any write).
//   - Stage 2: Dense → Apply; otherwise At/Set per cell.
//
// Behavior highlights:
//   - The smallest original cost becomes the largest score; the original
//     maximum maps to 0, so the transformed minimum is always 0.
//   - Not idempotent: applying twice restores v − min(v) shifted values.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func rescaleForMinimization(X Matrix) error {
	hi, err := globalMax(X)
	if err != nil {
		return matrixErrorf(opRescale, err)
	}

	if d, ok := X.(*Dense); ok {
		if err = d.Apply(func(_, _ int, v float64) float64 { return hi - v }); err != nil {
			return matrixErrorf(opRescale, err)
		}

		return nil
	}

	r, c := X.Rows(), X.Cols()
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return matrixErrorf(opRescale, err)
			}
			if err = X.Set(i, j, hi-v); err != nil {
				return matrixErrorf(opRescale, err)
			}
		}
	}

	return nil
}
