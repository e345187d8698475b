// SPDX-License-Identifier: MIT
// Package: roadwidth/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Defaults:
//   • rng     = nil       (Generate fails with ErrNeedRandSource)
//   • widths  = U[1,100]  (DefaultMinWidth..DefaultMaxWidth)

package builder

import "math/rand"

// Default inclusive width range.
const (
	DefaultMinWidth int64 = 1
	DefaultMaxWidth int64 = 100
)

// config aggregates the knobs used by Generate. Passed by value.
type config struct {
	rng     *rand.Rand
	widthFn WidthFn
}

// newConfig applies opts in order over the defaults; last one wins.
func newConfig(opts ...Option) config {
	cfg := config{
		widthFn: UniformWidthFn(DefaultMinWidth, DefaultMaxWidth),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
