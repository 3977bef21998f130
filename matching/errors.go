// SPDX-License-Identifier: MIT

package matching

import (
	"errors"
	"fmt"
)

// Sentinel errors. Match with errors.Is; messages are prefixed with
// "matching: " for grep-ability.
var (
	// ErrInvalidAxis is returned by NewMatcher/ParseAxis for an axis other than Rows or Columns.
	ErrInvalidAxis = errors.New("matching: invalid axis")

	// ErrInvalidOrder indicates that WithOrder was given something other than
	// a permutation of [0, size).
	ErrInvalidOrder = errors.New("matching: order is not a permutation of subjects")

	// ErrAlreadyRun is returned when Run is called twice on one Matcher.
	ErrAlreadyRun = errors.New("matching: matcher already run")

	// ErrNoProgress signals that a displacement chain exceeded its step bound.
	ErrNoProgress = errors.New("matching: displacement chain exceeded step bound")
)

// Operation name constants for unified error wrapping.
const (
	opNewMatcher     = "NewMatcher"
	opRun            = "Run"
	opRematch        = "rematch"
	opRecursiveMatch = "RecursiveMatch"
	opParseAxis      = "ParseAxis"
)

// matchErrorf wraps an underlying error with the given operation tag.
func matchErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
