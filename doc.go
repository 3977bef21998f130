// Package rematch turns a dense score matrix into a one-sided greedy
// assignment: every row (or column) claims its best counterpart, a stronger
// claim displaces a weaker one, and the displaced index is re-matched.
//
// Under the hood, everything is organized under three subpackages:
//
//	matrix/   — Dense score grid, row/column copies, Min/Max, minimize rescale
//	matching/ — the Matcher engine (displacement chains) and RecursiveMatch
//	iou/      — bounding-box overlap matrices for detection/track matching
//
// The rematch command (cmd/rematch) wraps them for YAML/JSON input.
package rematch
