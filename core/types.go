// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Edge and Graph value types, sentinel errors, and the validating
//       NewGraph constructor.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and for the algorithm packages.
var (
	// ErrInvalidArgument indicates that NewGraph rejected its input: a negative
	// vertex count, an empty edge list, or an edge endpoint out of range.
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrNilGraph indicates that an algorithm received a nil *Graph.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrDisconnected indicates that the graph has more than one connected
	// component, so no spanning tree covering all vertices exists.
	ErrDisconnected = errors.New("core: graph is disconnected")
)

// Edge represents an undirected, weighted connection between two vertices.
//
// Edges have no identity beyond their field values: two edges with equal
// From, To and Weight are interchangeable, and a Graph may hold both.
type Edge struct {
	// From is the source vertex index.
	From int

	// To is the destination vertex index.
	To int

	// Weight is the cost of the edge. Negative weights are allowed.
	Weight int64
}

// String renders the edge as "From-To(Weight)".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d(%d)", e.From, e.To, e.Weight)
}

// Graph is an immutable aggregate of a vertex count and an ordered edge
// sequence. Every edge endpoint lies in [0, vertexCount) and the edge
// sequence is never empty.
type Graph struct {
	vertexCount int
	edges       []Edge
}

// NewGraph validates its arguments and returns an immutable Graph.
//
// Steps:
//  1. vertexCount must be ≥ 0.
//  2. edges must be non-empty.
//  3. Every edge's From and To must lie in [0, vertexCount).
//  4. Copy edges so later caller mutation cannot leak into the Graph.
//
// Every failure wraps ErrInvalidArgument; branch with errors.Is.
// Complexity: O(E) time, O(E) space.
func NewGraph(vertexCount int, edges []Edge) (*Graph, error) {
	if vertexCount < 0 {
		return nil, fmt.Errorf("%w: vertex count must be non-negative, got %d", ErrInvalidArgument, vertexCount)
	}
	if len(edges) == 0 {
		return nil, fmt.Errorf("%w: edge list must not be empty", ErrInvalidArgument)
	}
	for i, e := range edges {
		if !inRange(e.From, vertexCount) || !inRange(e.To, vertexCount) {
			return nil, fmt.Errorf("%w: edge vertex out of range: edge %d (%d-%d), vertex count %d",
				ErrInvalidArgument, i, e.From, e.To, vertexCount)
		}
	}

	owned := make([]Edge, len(edges))
	copy(owned, edges)

	return &Graph{vertexCount: vertexCount, edges: owned}, nil
}

// inRange reports whether v is a valid vertex index for a graph of n vertices.
func inRange(v, n int) bool {
	return v >= 0 && v < n
}
