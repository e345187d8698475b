// Package builder provides width generators for Generate.
package builder

import (
	"fmt"
	"math/rand"
)

// WidthFn produces a road width from the supplied RNG. It must be
// deterministic for a given RNG state and return values >= 1.
type WidthFn func(rng *rand.Rand) int64

// UniformWidthFn returns a WidthFn sampling uniformly in [min, max] inclusive.
// Panics unless 1 <= min <= max.
// Complexity: O(1).
func UniformWidthFn(min, max int64) WidthFn {
	if min < 1 || max < min {
		panic(fmt.Sprintf("UniformWidthFn: require 1 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}
	span := max - min + 1

	return func(rng *rand.Rand) int64 {
		if span == 1 {
			return min
		}
		return min + rng.Int63n(span)
	}
}

// ConstantWidthFn returns a WidthFn that always yields w. Panics if w < 1.
func ConstantWidthFn(w int64) WidthFn {
	if w < 1 {
		panic(fmt.Sprintf("ConstantWidthFn: width must be ≥ 1, got %d", w))
	}

	return func(*rand.Rand) int64 { return w }
}
