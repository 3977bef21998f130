// Package matrix provides the dense score grid used by the matching engine.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and an
//     optional finite-only numeric policy.
//   - Row/Col extraction as owned copies, safe to mutate by the caller.
//   - Whole-matrix reductions (Min, Max) as pure scans with no caching.
//   - RescaleForMinimization, the in-place cell ← max − cell transform that
//     turns a cost matrix into a score matrix.
//
// All operations are deterministic (fixed i→j traversal order) and return
// sentinel errors instead of panicking on user input.
package matrix
