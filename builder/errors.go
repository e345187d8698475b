// SPDX-License-Identifier: MIT
// Package: roadwidth/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w, prefixed by the method name.
//   • Generate never panics; validation panics are confined to option
//     constructors (WithX...).

package builder

import "errors"

// ErrInvalidArgument indicates a node or edge count that cannot form a
// connected simple graph (n < 1, m < n-1, or m > n(n-1)/2).
var ErrInvalidArgument = errors.New("builder: invalid argument")

// ErrNeedRandSource indicates that Generate was called without a *rand.Rand
// (supply WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")
