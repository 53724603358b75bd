// Package core defines the immutable, index-addressed Graph and Edge types
// shared by every spanning-tree algorithm in spanforest.
//
// A Graph G = (V, E) is described by a vertex count V and an ordered edge
// sequence E. Vertices are the integers 0..V-1; there are no vertex objects,
// names or metadata. Edges are plain values:
//
//	Edge{From: 0, To: 3, Weight: 5}
//
// Properties of the model:
//
//   - Immutable - NewGraph validates once and copies the input slice; no
//     method mutates a Graph afterwards, so one Graph may be shared by any
//     number of concurrent readers without locking.
//   - Undirected - From/To record the order the caller supplied, but every
//     algorithm treats an edge as connecting both endpoints symmetrically.
//   - Multigraph-friendly - parallel edges and self-loops pass validation;
//     spanning-tree algorithms simply never select a self-loop.
//   - Deterministic - Edges() returns edges in insertion order, which is
//     also the tie-break order used by the algorithms.
//
// Validation (NewGraph):
//
//	vertexCount < 0                 → ErrInvalidArgument
//	len(edges) == 0                 → ErrInvalidArgument
//	endpoint ∉ [0, vertexCount)     → ErrInvalidArgument ("edge vertex out of range")
//
// Shared sentinels used by the algorithm packages:
//
//	ErrNilGraph      - a nil *Graph was passed to an algorithm.
//	ErrDisconnected  - no spanning tree exists (V > 1, more than one component).
//
// Complexity: NewGraph is O(E); every accessor is O(1) except Edges() and
// TotalWeight(), which are O(E).
package core
