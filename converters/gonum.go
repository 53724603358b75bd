// SPDX-License-Identifier: MIT
//
// File: gonum.go
// Role: Two-way conversion between core.Graph and gonum's weighted undirected graphs.
// Determinism:
//   - ToGonum adds nodes 0..V-1 in order, then edges in core order.
//   - FromGonum sorts node IDs and edges, so map iteration order never leaks.

package converters

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/spanforest/core"
)

// ErrNonIntegralWeight indicates a gonum edge weight that is not an integer
// representable as int64 (fractional, NaN, ±Inf or out of range).
var ErrNonIntegralWeight = errors.New("converters: edge weight is not an int64 integer")

// WeightedEdgeLister is the subset of gonum graph behavior FromGonum needs.
// *simple.WeightedUndirectedGraph satisfies it.
type WeightedEdgeLister interface {
	graph.Graph
	WeightedEdges() graph.WeightedEdges
}

// ToGonum converts g into a gonum weighted undirected graph with node IDs
// 0..V-1. gonum graphs are simple, so self-loops are dropped and parallel
// edges collapse to the lightest one. Neither changes the MST weight.
//
// A nil g yields an empty graph.
// Complexity: O(V + E).
func ToGonum(g *core.Graph) *simple.WeightedUndirectedGraph {
	dst := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	if g == nil {
		return dst
	}

	for v := 0; v < g.VertexCount(); v++ {
		dst.AddNode(simple.Node(v))
	}
	for i := 0; i < g.EdgeCount(); i++ {
		e := g.Edge(i)
		if e.From == e.To {
			continue
		}
		w := float64(e.Weight)
		if cur := dst.WeightedEdge(int64(e.From), int64(e.To)); cur != nil && cur.Weight() <= w {
			continue
		}
		dst.SetWeightedEdge(dst.NewWeightedEdge(simple.Node(e.From), simple.Node(e.To), w))
	}

	return dst
}

// FromGonum converts src into a core.Graph. Node IDs are sorted ascending and
// renumbered densely; ids[i] is the gonum ID of core vertex i. Each edge is
// normalized to From < To and the edge list is sorted by (From, To, Weight).
//
// Errors:
//   - ErrNonIntegralWeight for any weight that is not an int64 integer.
//   - core.ErrInvalidArgument (wrapped) when src has no edges.
//
// Complexity: O(V log V + E log E).
func FromGonum(src WeightedEdgeLister) (*core.Graph, []int64, error) {
	nodes := graph.NodesOf(src.Nodes())
	ids := make([]int64, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	index := make(map[int64]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	var edges []core.Edge
	it := src.WeightedEdges()
	for it.Next() {
		we := it.WeightedEdge()
		w, err := toInt64(we.Weight())
		if err != nil {
			return nil, nil, fmt.Errorf("converters: FromGonum: edge %d-%d: %w", we.From().ID(), we.To().ID(), err)
		}
		u, v := index[we.From().ID()], index[we.To().ID()]
		if u > v {
			u, v = v, u
		}
		edges = append(edges, core.Edge{From: u, To: v, Weight: w})
	}
	sort.Slice(edges, func(i, j int) bool {
		a, b := edges[i], edges[j]
		if a.From != b.From {
			return a.From < b.From
		}
		if a.To != b.To {
			return a.To < b.To
		}
		return a.Weight < b.Weight
	})

	g, err := core.NewGraph(len(ids), edges)
	if err != nil {
		return nil, nil, fmt.Errorf("converters: FromGonum: %w", err)
	}

	return g, ids, nil
}

// toInt64 converts an integral float64 weight to int64.
func toInt64(w float64) (int64, error) {
	if math.IsNaN(w) || math.IsInf(w, 0) || w != math.Trunc(w) {
		return 0, fmt.Errorf("%w: %v", ErrNonIntegralWeight, w)
	}
	// float64(math.MaxInt64) rounds up to 2^63, which does not fit.
	if w < math.MinInt64 || w >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: %v", ErrNonIntegralWeight, w)
	}

	return int64(w), nil
}
