// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Read-only accessors on Graph plus small edge-slice helpers.
// Determinism:
//   - Edges() preserves insertion order; algorithms rely on it for tie-breaks.

package core

// VertexCount returns the number of vertices V; valid indices are 0..V-1.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	return g.vertexCount
}

// EdgeCount returns the number of edges, counting parallel edges and loops.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Edge returns the i-th edge in insertion order.
// It panics if i is out of range, like a slice index.
// Complexity: O(1).
func (g *Graph) Edge(i int) Edge {
	return g.edges[i]
}

// Edges returns a copy of the edge sequence in insertion order.
// Complexity: O(E) time and space.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// TotalWeight returns the sum of all edge weights in the graph.
// Complexity: O(E).
func (g *Graph) TotalWeight() int64 {
	return TotalWeight(g.edges)
}

// TotalWeight sums the weights of edges.
// Overflow wraps according to int64 arithmetic.
// Complexity: O(len(edges)).
func TotalWeight(edges []Edge) int64 {
	var total int64
	for _, e := range edges {
		total += e.Weight
	}

	return total
}
