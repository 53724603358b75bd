// SPDX-License-Identifier: MIT
// Package: spanforest/builder
//
// impl_path.go - Path(n) and Cycle(n) constructors.
//
// Contract:
//   - Path: n ≥ 2, edges (i, i+1) for i = 0..n-2.
//   - Cycle: n ≥ 3, the path edges followed by the closing edge (n-1, 0).
//   - Indices are relative to the block reserved for this constructor.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(s *sink, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		base := s.addVertices(n)
		for i := 1; i < n; i++ {
			s.addEdge(base+i-1, base+i, cfg)
		}

		return nil
	}
}

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(s *sink, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		base := s.addVertices(n)
		for i := 1; i < n; i++ {
			s.addEdge(base+i-1, base+i, cfg)
		}
		// closing edge
		s.addEdge(base+n-1, base, cfg)

		return nil
	}
}
