// SPDX-License-Identifier: MIT

package matching

import (
	"fmt"
	"strconv"
	"strings"
)

// Axis selects which dimension is matched against the other.
//
//   - Rows    — each row is a subject; counterparts are columns.
//   - Columns — each column is a subject; counterparts are rows.
type Axis int

const (
	// Rows matches every row to a column.
	Rows Axis = iota

	// Columns matches every column to a row.
	Columns
)

// Valid reports whether a is Rows or Columns.
func (a Axis) Valid() bool { return a == Rows || a == Columns }

// String returns "rows", "columns", or "Axis(n)" for invalid values.
func (a Axis) String() string {
	switch a {
	case Rows:
		return "rows"
	case Columns:
		return "columns"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// ParseAxis accepts "rows"/"row"/"0" and "columns"/"cols"/"col"/"1",
// case-insensitively.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rows", "row", "0":
		return Rows, nil
	case "columns", "column", "cols", "col", "1":
		return Columns, nil
	default:
		return 0, matchErrorf(opParseAxis, fmt.Errorf("%q: %w", s, ErrInvalidAxis))
	}
}

// Match is the outcome for one subject: either a counterpart index or
// unmatched. The zero value is unmatched.
type Match struct {
	index int
	ok    bool
}

// Unmatched returns the empty Match.
func Unmatched() Match { return Match{} }

// MatchedTo returns a Match holding counterpart k.
func MatchedTo(k int) Match { return Match{index: k, ok: true} }

// Index returns the counterpart and true, or (0, false) when unmatched.
func (m Match) Index() (int, bool) { return m.index, m.ok }

// IsMatched reports whether the subject holds a counterpart.
func (m Match) IsMatched() bool { return m.ok }

// String renders the counterpart index, or "-" when unmatched.
func (m Match) String() string {
	if !m.ok {
		return "-"
	}
	return strconv.Itoa(m.index)
}

// Pair is a matched (subject, counterpart) couple. For Rows, Subject is the
// row and Counterpart the column; for Columns it is the other way around.
type Pair struct {
	Subject     int
	Counterpart int
}

// Matches is the match table: entry i is the outcome for subject i.
type Matches []Match

// Count returns the number of matched subjects.
func (ms Matches) Count() int {
	n := 0
	for _, m := range ms {
		if m.ok {
			n++
		}
	}
	return n
}

// Pairs lists matched subjects in ascending subject order.
func (ms Matches) Pairs() []Pair {
	out := make([]Pair, 0, len(ms))
	for i, m := range ms {
		if m.ok {
			out = append(out, Pair{Subject: i, Counterpart: m.index})
		}
	}
	return out
}

// Ints flattens the table into plain indices, writing unmatched as the
// caller-chosen sentinel. Useful for interop with code that expects -1.
func (ms Matches) Ints(unmatched int) []int {
	out := make([]int, len(ms))
	for i, m := range ms {
		if m.ok {
			out[i] = m.index
		} else {
			out[i] = unmatched
		}
	}
	return out
}

// String renders the table as "[1 - 2 3 4]".
func (ms Matches) String() string {
	parts := make([]string, len(ms))
	for i, m := range ms {
		parts[i] = m.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
