// SPDX-License-Identifier: MIT
// Package: spanforest/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Option constructors validate and panic on meaningless inputs.
//   - Seeding is explicit via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes BuildGraph by mutating the builderConfig.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. The function receives
// the possibly nil RNG. Panics on nil.
func WithWeightFn(fn func(*rand.Rand) int64) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithUniformWeights draws integer weights uniformly from [lo, hi]. Without an
// RNG every edge gets lo. Panics if lo > hi.
func WithUniformWeights(lo, hi int64) BuilderOption {
	if lo > hi {
		panic("builder: WithUniformWeights(lo>hi)")
	}
	return func(c *builderConfig) {
		c.weightFn = func(r *rand.Rand) int64 {
			if r == nil || lo == hi {
				return lo
			}
			return lo + r.Int63n(hi-lo+1)
		}
	}
}

// WithDistinctWeights rewrites all weights after construction so they form a
// permutation of 1..E, shuffled by the RNG when one is configured. Graphs
// with distinct weights have a unique minimum spanning tree.
func WithDistinctWeights() BuilderOption {
	return func(c *builderConfig) {
		c.distinct = true
	}
}
