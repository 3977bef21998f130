// Package matching turns a dense score matrix into a one-sided greedy
// assignment using argmax-with-displacement.
//
// For every subject index along the chosen Axis (rows or columns) the
// engine claims the subject's best-scoring counterpart on the other axis.
// When that counterpart is already claimed, the claim with the strictly
// higher score wins; the loser is displaced and re-matched against its
// remaining candidates. Exact ties keep the incumbent.
//
// Typical use: match detections to tracks by an overlap score.
//
//	m, _ := matrix.NewDenseFrom(scores)
//	mt, err := matching.NewMatcher(m, matching.Rows, true)
//	if err != nil { ... }
//	res, err := mt.Run()
//	for _, p := range res.Pairs() { ... }
//
// Limited mode: with limited=true a subject is left unmatched when its best
// remaining candidate does not exceed the matrix minimum captured at
// construction (the floor).
//
// Cost matrices: call matrix.RescaleForMinimization first, or use
// RecursiveMatch with minimize=true, to match on smallest cost.
//
// This is NOT a globally optimal assignment solver. Results depend on the
// iteration order (ascending by default, see WithOrder).
//
// Complexity: one Run performs O(size²·width) score comparisons in the
// worst case; memory is O(size + width) beyond the matrix itself.
package matching
