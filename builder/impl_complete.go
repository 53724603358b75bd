// SPDX-License-Identifier: MIT
// Package: spanforest/builder
//
// impl_complete.go - Complete(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits each unordered pair {i,j} with i<j exactly once, in lexicographic order.
//
// Complexity: O(n²) time, O(1) extra space.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 2
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(s *sink, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		base := s.addVertices(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				s.addEdge(base+i, base+j, cfg)
			}
		}

		return nil
	}
}
