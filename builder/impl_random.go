// SPDX-License-Identifier: MIT
// Package: spanforest/builder
//
// impl_random.go - RandomSparse(n, p) and RandomConnected(n, extra) constructors.
//
// RandomSparse (Erdős–Rényi-like):
//   - n ≥ 1, 0 ≤ p ≤ 1.
//   - Pairs (i,j), i<j, are tried in lexicographic order; each is kept iff rng.Float64() < p.
//   - p ∈ {0,1} is deterministic and needs no RNG; 0 < p < 1 requires one.
//   - The sample may be disconnected or even empty (BuildGraph then fails in core).
//
// RandomConnected:
//   - n ≥ 2, extra ≥ 0, RNG required.
//   - A spanning path over rng.Perm(n) guarantees connectivity, followed by
//     extra chords between distinct random endpoints. Parallel edges may occur.
//
// Complexity: RandomSparse O(n²); RandomConnected O(n + extra).

package builder

import "fmt"

const (
	methodRandomSparse         = "RandomSparse"
	methodRandomConnected      = "RandomConnected"
	minRandomSparseVertices    = 1
	minRandomConnectedVertices = 2
	probMin                    = 0.0
	probMax                    = 1.0
)

// RandomSparse returns a Constructor that samples each of the n(n-1)/2 pairs
// independently with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(s *sink, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		base := s.addVertices(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var keep bool
				switch {
				case p == probMin:
					keep = false
				case p == probMax:
					keep = true
				default:
					keep = cfg.rng.Float64() < p
				}
				if keep {
					s.addEdge(base+i, base+j, cfg)
				}
			}
		}

		return nil
	}
}

// RandomConnected returns a Constructor that builds a connected graph on n
// vertices with n-1+extra edges.
func RandomConnected(n, extra int) Constructor {
	return func(s *sink, cfg builderConfig) error {
		if n < minRandomConnectedVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomConnected, n, minRandomConnectedVertices, ErrTooFewVertices)
		}
		if extra < 0 {
			return fmt.Errorf("%s: extra=%d < 0: %w", methodRandomConnected, extra, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomConnected, ErrNeedRandSource)
		}

		base := s.addVertices(n)
		order := cfg.rng.Perm(n)
		for i := 1; i < n; i++ {
			s.addEdge(base+order[i-1], base+order[i], cfg)
		}
		for added := 0; added < extra; {
			u := cfg.rng.Intn(n)
			v := cfg.rng.Intn(n)
			if u == v {
				continue
			}
			s.addEdge(base+u, base+v, cfg)
			added++
		}

		return nil
	}
}
