// Package builder generates random connected road graphs.
//
// Generate(n, m) produces exactly m roads over n nodes such that every node is
// reachable from every other one:
//
//  1. perm := rng.Perm(n)                           // uniform node order
//  2. perm[i] - perm[i+1]      for i in [0, n-1)    // spanning chain
//  3. perm[i%n] - perm[(i+1)%n] for i in [0, m-n+1) // extra roads
//
// Step 3 may repeat a pair already produced by the chain; duplicates are kept
// verbatim. Every width is drawn independently and uniformly from the
// configured inclusive range.
//
// Randomness is never global: a *rand.Rand must be supplied through WithSeed
// or WithRand, and the same seed always yields the same graph.
//
// Errors:
//
//	ErrInvalidArgument - n < 1, or m outside [n-1, n(n-1)/2].
//	ErrNeedRandSource  - no RNG was configured.
package builder
