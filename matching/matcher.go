// SPDX-License-Identifier: MIT

package matching

import (
	"fmt"

	"github.com/katalvlaran/rematch/matrix"
	"go.uber.org/zap"
)

// Matcher is the engine state for one matching run.
//
// It holds a reference to the score matrix (not owned; the caller must not
// mutate it until Run returns), the axis, the floor captured at
// construction, the limited flag and the match table. A Matcher serves
// exactly one Run.
type Matcher struct {
	m       matrix.Matrix
	axis    Axis
	limited bool
	floor   float64 // global minimum at construction time

	size  int // number of subjects (len of table)
	width int // number of counterparts (len of a working buffer)

	table []Match
	order []int
	bound int // per-chain step bound, see stepBound
	log   *zap.Logger
	ran   bool
}

// NewMatcher builds engine state over m.
// Implementation:
//   - Stage 1: validate m (non-nil) and axis.
//   - Stage 2: derive size/width from the axis; validate WithOrder if given.
//   - Stage 3: capture floor = matrix.Min(m) once; allocate the unmatched table.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrInvalidAxis, ErrInvalidOrder (wrapped).
//
// Complexity:
//   - Time O(r*c) for the floor scan, Space O(size).
func NewMatcher(m matrix.Matrix, axis Axis, limited bool, opts ...Option) (*Matcher, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, matchErrorf(opNewMatcher, err)
	}
	if !axis.Valid() {
		return nil, matchErrorf(opNewMatcher, fmt.Errorf("%s: %w", axis, ErrInvalidAxis))
	}

	o := gatherOptions(opts...)
	size, width := m.Rows(), m.Cols()
	if axis == Columns {
		size, width = width, size
	}
	if o.order != nil {
		if err := validateOrder(o.order, size); err != nil {
			return nil, matchErrorf(opNewMatcher, err)
		}
	}

	floor, err := matrix.Min(m)
	if err != nil {
		return nil, matchErrorf(opNewMatcher, err)
	}

	mt := &Matcher{
		m:       m,
		axis:    axis,
		limited: limited,
		floor:   floor,
		size:    size,
		width:   width,
		table:   make([]Match, size), // zero Match is unmatched
		order:   o.order,
		log:     o.logger,
	}
	mt.bound = mt.stepBound()

	return mt, nil
}

// Axis returns the matched axis.
func (mt *Matcher) Axis() Axis { return mt.axis }

// Limited reports whether the floor check is active.
func (mt *Matcher) Limited() bool { return mt.limited }

// Floor returns the matrix minimum captured at construction.
func (mt *Matcher) Floor() float64 { return mt.floor }

// Size returns the number of subjects.
func (mt *Matcher) Size() int { return mt.size }

// Width returns the number of counterparts.
func (mt *Matcher) Width() int { return mt.width }

// Matches returns a copy of the current match table.
func (mt *Matcher) Matches() Matches {
	return append(Matches(nil), mt.table...)
}

// Run matches every subject in iteration order and returns the table.
//
// For each subject a fresh copy of its row (Rows) or column (Columns) is
// taken and handed to the displacement procedure, which owns it until the
// chain resolves. Later subjects may displace earlier ones, so the result
// depends on the order.
//
// Errors: ErrAlreadyRun on a second call; matrix access errors (wrapped).
func (mt *Matcher) Run() (Matches, error) {
	if mt.ran {
		return nil, matchErrorf(opRun, ErrAlreadyRun)
	}
	mt.ran = true

	for n := 0; n < mt.size; n++ {
		idx := n
		if mt.order != nil {
			idx = mt.order[n]
		}
		items, err := mt.vector(idx)
		if err != nil {
			return nil, matchErrorf(opRun, err)
		}
		if err = mt.rematch(idx, items); err != nil {
			return nil, matchErrorf(opRun, err)
		}
	}

	mt.log.Debug("run complete",
		zap.Stringer("axis", mt.axis),
		zap.Int("subjects", mt.size),
		zap.Int("matched", Matches(mt.table).Count()))

	return mt.Matches(), nil
}

// vector copies subject k's scores: row k for Rows, column k for Columns.
func (mt *Matcher) vector(k int) ([]float64, error) {
	if mt.axis == Rows {
		return matrix.Row(mt.m, k)
	}
	return matrix.Col(mt.m, k)
}

// score reads the original score of subject j for counterpart k.
func (mt *Matcher) score(j, k int) (float64, error) {
	if mt.axis == Rows {
		return mt.m.At(j, k)
	}
	return mt.m.At(k, j)
}

// holder returns the subject currently claiming counterpart k, if any.
// The table is scanned in subject order; at most one subject can hold k.
func (mt *Matcher) holder(k int) (int, bool) {
	for j, m := range mt.table {
		if m.ok && m.index == k {
			return j, true
		}
	}
	return 0, false
}
