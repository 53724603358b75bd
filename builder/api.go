// SPDX-License-Identifier: MIT
// Package: spanforest/builder
//
// api.go - the BuildGraph orchestrator and the edge sink constructors write to.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons in order,
//     then hands the collected edges to core.NewGraph.
//   - Each constructor owns a fresh, contiguous block of vertex indices.
//   - Determinism: same options, seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spanforest/core"
)

// Constructor appends one deterministic piece of topology to the sink.
// Constructors validate parameters first and return sentinel errors; they
// never panic.
type Constructor func(s *sink, cfg builderConfig) error

// sink collects vertices and edges before the immutable Graph is created.
type sink struct {
	vertices int
	edges    []core.Edge
}

// addVertices reserves n new vertex indices and returns the first one.
func (s *sink) addVertices(n int) int {
	base := s.vertices
	s.vertices += n

	return base
}

// addEdge appends u-v with the next configured weight.
func (s *sink) addEdge(u, v int, cfg builderConfig) {
	s.edges = append(s.edges, core.Edge{From: u, To: v, Weight: cfg.weight()})
}

// BuildGraph resolves bopts, applies every constructor in order and returns
// the resulting graph. Constructor and core.NewGraph errors are wrapped with
// "BuildGraph: %w".
//
// Complexity: Σ cost of the constructors plus O(E) for validation.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	if len(cons) == 0 {
		return nil, fmt.Errorf("BuildGraph: no constructors: %w", ErrConstructFailed)
	}

	cfg := newBuilderConfig(bopts...)
	s := &sink{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	if cfg.distinct {
		assignDistinctWeights(s.edges, cfg)
	}

	g, err := core.NewGraph(s.vertices, s.edges)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// assignDistinctWeights sets edge weights to a permutation of 1..len(edges).
func assignDistinctWeights(edges []core.Edge, cfg builderConfig) {
	weights := make([]int64, len(edges))
	for i := range weights {
		weights[i] = int64(i + 1)
	}
	if cfg.rng != nil {
		cfg.rng.Shuffle(len(weights), func(i, j int) {
			weights[i], weights[j] = weights[j], weights[i]
		})
	}
	for i := range edges {
		edges[i].Weight = weights[i]
	}
}
