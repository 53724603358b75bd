// SPDX-License-Identifier: MIT
// Package: spanforest/builder
//
// impl_star.go - Star(n) constructor: center 0 joined to leaves 1..n-1.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with n-1 leaves.
func Star(n int) Constructor {
	return func(s *sink, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		center := s.addVertices(n)
		for i := 1; i < n; i++ {
			s.addEdge(center, center+i, cfg)
		}

		return nil
	}
}
