// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the display formatter.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies defaults first.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultLabel is the header word of the display summary.
	DefaultLabel = "Matrix"

	// DefaultTruncateAbove is the cell count above which display is truncated.
	// The policy depends on rows*cols only, never on one dimension alone.
	DefaultTruncateAbove = 25

	// DefaultCorner is the size of the leading block shown when truncated.
	DefaultCorner = 5
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicLabelEmpty      = "matrix: WithLabel: label must be non-empty"
	panicTruncateInvalid = "matrix: WithTruncateAbove: limit must be >= 0"
	panicCornerInvalid   = "matrix: WithCorner: corner must be > 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective display configuration after applying Option setters.
type Options struct {
	label         string // DefaultLabel
	truncateAbove int    // DefaultTruncateAbove
	corner        int    // DefaultCorner
}

// WithLabel replaces the header word ("Matrix") of the summary.
// Panics on an empty label.
func WithLabel(label string) Option {
	if label == "" {
		panic(panicLabelEmpty)
	}

	return func(o *Options) { o.label = label }
}

// WithTruncateAbove sets the cell count above which only the leading block
// is rendered. Panics on a negative limit.
func WithTruncateAbove(limit int) Option {
	if limit < 0 {
		panic(panicTruncateInvalid)
	}

	return func(o *Options) { o.truncateAbove = limit }
}

// WithCorner sets the size of the leading corner×corner block rendered
// when truncated. Panics when corner <= 0.
func WithCorner(corner int) Option {
	if corner <= 0 {
		panic(panicCornerInvalid)
	}

	return func(o *Options) { o.corner = corner }
}

// defaultOptions returns the zero-config display policy.
func defaultOptions() Options {
	return Options{
		label:         DefaultLabel,
		truncateAbove: DefaultTruncateAbove,
		corner:        DefaultCorner,
	}
}

// gatherOptions applies opts over the defaults, in order (last write wins).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
