// SPDX-License-Identifier: MIT

package matching

import "go.uber.org/zap"

// Option configures a Matcher. Options are applied in order; the last
// writer wins.
type Option func(*Options)

// Options holds the resolved Matcher configuration.
type Options struct {
	logger *zap.Logger // never nil after gatherOptions
	order  []int       // nil means ascending
}

// WithLogger routes Debug-level chain events (evictions, floor rejections,
// exhausted candidates) to l. A nil logger restores the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithOrder drives Run over subjects in the given order instead of
// ascending. A nil or empty order keeps the default. Otherwise order must be
// a permutation of [0, size); NewMatcher returns ErrInvalidOrder if it is
// not. The slice is copied.
func WithOrder(order []int) Option {
	cp := append([]int(nil), order...)
	return func(o *Options) { o.order = cp }
}

func gatherOptions(user ...Option) Options {
	var o Options
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	return o
}

// validateOrder checks that order is a permutation of [0, size).
func validateOrder(order []int, size int) error {
	if len(order) != size {
		return ErrInvalidOrder
	}
	seen := make([]bool, size)
	for _, k := range order {
		if k < 0 || k >= size || seen[k] {
			return ErrInvalidOrder
		}
		seen[k] = true
	}
	return nil
}
