// SPDX-License-Identifier: MIT
// Package: roadwidth/builder
//
// options.go: functional options for Generate.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// Option customizes Generate by mutating a config before construction.
type Option func(*config)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWidthRange draws road widths uniformly from [min, max] inclusive.
// Panics unless 1 <= min <= max.
func WithWidthRange(min, max int64) Option {
	fn := UniformWidthFn(min, max)
	return func(c *config) {
		c.widthFn = fn
	}
}

// WithWidthFn overrides the width generator entirely. The function must only
// return positive widths. Panics on nil.
func WithWidthFn(fn WidthFn) Option {
	if fn == nil {
		panic("builder: WithWidthFn(nil)")
	}
	return func(c *config) {
		c.widthFn = fn
	}
}
