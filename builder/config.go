// SPDX-License-Identifier: MIT
// Package: spanforest/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - rng      = nil (pure/deterministic unless seeded)
//   - weightFn = constant defaultConstWeight
//   - distinct = false

package builder

import "math/rand"

// defaultConstWeight is the edge weight used when no weight option is set.
const defaultConstWeight = int64(1)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator; receives the (possibly nil) rng.
	weightFn func(*rand.Rand) int64
	// Rewrite weights to a permutation of 1..E after construction.
	distinct bool
}

// newBuilderConfig applies opts in order over the defaults; later options win.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: func(*rand.Rand) int64 { return defaultConstWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() int64 {
	return c.weightFn(c.rng)
}
