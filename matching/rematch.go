// SPDX-License-Identifier: MIT

package matching

import "go.uber.org/zap"

// candidates is the working buffer of one displacement chain: the scores of
// the current subject plus a live mask. It is owned by exactly one chain and
// never aliases matrix storage or the match table.
type candidates struct {
	score []float64
	live  []bool
	n     int // live count
}

func newCandidates(score []float64) *candidates {
	live := make([]bool, len(score))
	for k := range live {
		live[k] = true
	}
	return &candidates{score: score, live: live, n: len(score)}
}

// best returns the earliest live index holding the maximum score. Later equal
// values never replace the running maximum. Returns -1 when nothing is live.
func (c *candidates) best() int {
	bi := -1
	for k, v := range c.score {
		if !c.live[k] {
			continue
		}
		if bi < 0 || v > c.score[bi] {
			bi = k
		}
	}
	return bi
}

// suppress removes k from consideration: its score is overwritten with
// (earliest minimum of the buffer) − 1 and it is marked dead.
func (c *candidates) suppress(k int) {
	lo := c.score[0]
	for _, v := range c.score[1:] {
		if v < lo {
			lo = v
		}
	}
	c.score[k] = lo - 1
	c.live[k] = false
	c.n--
}

// stepBound caps the iterations of one chain. Every eviction strictly raises
// the score held on one counterpart, so a counterpart changes hands at most
// size times; between two evictions at most width candidates are suppressed.
// The bound is therefore never reached on finite input: the ErrNoProgress
// branch in rematch is a guard only.
func (mt *Matcher) stepBound() int {
	return (mt.size*mt.width + 1) * (mt.width + 1)
}

// rematch resolves subject i against its scores in items.
//
// Loop body (one displacement step):
//  1. best = earliest argmax over live candidates.
//  2. limited && score ≤ floor → i stays unmatched.
//  3. best unclaimed → claim it, done.
//  4. best held by j: if the new score strictly beats j's original score on
//     best, j is displaced, i claims best and the chain continues with j and
//     a fresh copy of j's scores. Otherwise the chain stays on i.
//  5. suppress best in the current buffer and repeat.
//
// A chain whose buffer runs out of live candidates leaves its subject
// unmatched; this happens when every counterpart is held by a stronger
// claim (more subjects than counterparts).
func (mt *Matcher) rematch(i int, items []float64) error {
	buf := newCandidates(items)

	for step := 0; ; step++ {
		if step > mt.bound {
			return matchErrorf(opRematch, ErrNoProgress)
		}

		best := buf.best()
		if best < 0 {
			mt.log.Debug("candidates exhausted", zap.Int("subject", i))
			return nil
		}
		s := buf.score[best]

		if mt.limited && s <= mt.floor {
			mt.log.Debug("below floor",
				zap.Int("subject", i),
				zap.Float64("score", s),
				zap.Float64("floor", mt.floor))
			return nil
		}

		j, claimed := mt.holder(best)
		if !claimed {
			mt.table[i] = MatchedTo(best)
			return nil
		}

		held, err := mt.score(j, best)
		if err != nil {
			return matchErrorf(opRematch, err)
		}
		if s > held {
			mt.table[j] = Unmatched()
			mt.table[i] = MatchedTo(best)
			mt.log.Debug("displaced",
				zap.Int("subject", i),
				zap.Int("counterpart", best),
				zap.Int("evicted", j),
				zap.Float64("score", s),
				zap.Float64("held", held))

			var fresh []float64
			if fresh, err = mt.vector(j); err != nil {
				return matchErrorf(opRematch, err)
			}
			i, buf = j, newCandidates(fresh)
		}

		buf.suppress(best)
	}
}
