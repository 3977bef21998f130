// SPDX-License-Identifier: MIT

package matching

import "github.com/katalvlaran/rematch/matrix"

// RecursiveMatch is the one-call entry point: optional minimize rescale,
// NewMatcher, Run.
//
// With minimize=true the matching runs on a rescaled clone (cell ← max −
// cell) so that the smallest cost wins; m itself is left untouched and the
// floor is taken from the rescaled clone.
//
// Errors: everything NewMatcher and Run return, plus rescale errors.
func RecursiveMatch(m matrix.Matrix, axis Axis, limited, minimize bool, opts ...Option) (Matches, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, matchErrorf(opRecursiveMatch, err)
	}

	src := m
	if minimize {
		src = matrix.CloneMatrix(m)
		if err := matrix.RescaleForMinimization(src); err != nil {
			return nil, matchErrorf(opRecursiveMatch, err)
		}
	}

	mt, err := NewMatcher(src, axis, limited, opts...)
	if err != nil {
		return nil, matchErrorf(opRecursiveMatch, err)
	}

	return mt.Run()
}
