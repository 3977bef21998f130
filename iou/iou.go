// SPDX-License-Identifier: MIT

package iou

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/rematch/matrix"
)

var (
	// ErrNoBoxes is returned when either box set is empty.
	ErrNoBoxes = errors.New("iou: empty box set")

	// ErrInvalidBox is returned for non-finite coordinates or inverted corners.
	ErrInvalidBox = errors.New("iou: invalid box")
)

// DefaultEpsilon is added to the union to keep the ratio finite for
// zero-area boxes.
const DefaultEpsilon = 1e-7

const panicEpsilonInvalid = "iou: WithEpsilon: eps must be finite, non-negative"

// Box is an axis-aligned rectangle given by its top-left (X1, Y1) and
// bottom-right (X2, Y2) corners.
type Box struct {
	X1 float64 `yaml:"x1" json:"x1"`
	Y1 float64 `yaml:"y1" json:"y1"`
	X2 float64 `yaml:"x2" json:"x2"`
	Y2 float64 `yaml:"y2" json:"y2"`
}

// Area returns (X2−X1)·(Y2−Y1).
func (b Box) Area() float64 { return (b.X2 - b.X1) * (b.Y2 - b.Y1) }

// Validate checks corners are finite and ordered.
func (b Box) Validate() error {
	for _, v := range [...]float64{b.X1, b.Y1, b.X2, b.Y2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrInvalidBox
		}
	}
	if b.X2 < b.X1 || b.Y2 < b.Y1 {
		return ErrInvalidBox
	}
	return nil
}

// Option configures Matrix.
type Option func(*options)

type options struct {
	eps float64
}

// WithEpsilon overrides DefaultEpsilon. Panics on negative or non-finite eps.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}
	return func(o *options) { o.eps = eps }
}

// Overlap returns intersection / (area(a) + area(b) − intersection + eps).
// Disjoint boxes score 0; a zero union scores 0.
func Overlap(a, b Box, eps float64) float64 {
	w := math.Min(a.X2, b.X2) - math.Max(a.X1, b.X1)
	h := math.Min(a.Y2, b.Y2) - math.Max(a.Y1, b.Y1)
	if w <= 0 || h <= 0 {
		return 0
	}
	inter := w * h
	union := a.Area() + b.Area() - inter + eps
	if union <= 0 {
		return 0
	}
	return inter / union
}

// Matrix returns the len(rows)×len(cols) IoU grid: cell (i, j) is
// Overlap(rows[i], cols[j]).
//
// Errors: ErrNoBoxes; ErrInvalidBox wrapped with the set and index.
// Complexity: O(len(rows)·len(cols)).
func Matrix(rows, cols []Box, opts ...Option) (*matrix.Dense, error) {
	if len(rows) == 0 || len(cols) == 0 {
		return nil, ErrNoBoxes
	}
	if err := validateAll("rows", rows); err != nil {
		return nil, err
	}
	if err := validateAll("cols", cols); err != nil {
		return nil, err
	}

	o := options{eps: DefaultEpsilon}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	m, err := matrix.NewDense(len(rows), len(cols))
	if err != nil {
		return nil, fmt.Errorf("iou: %w", err)
	}
	err = m.Apply(func(i, j int, _ float64) float64 {
		return Overlap(rows[i], cols[j], o.eps)
	})
	if err != nil {
		return nil, fmt.Errorf("iou: %w", err)
	}

	return m, nil
}

func validateAll(set string, boxes []Box) error {
	for i, b := range boxes {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("iou: %s[%d] %+v: %w", set, i, b, err)
		}
	}
	return nil
}
