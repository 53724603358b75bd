package mst

import (
	"sort"

	"github.com/katalvlaran/spanforest/core"
	"github.com/katalvlaran/spanforest/disjointset"
)

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected, weighted graph.
// It uses a disjointset.Forest with path compression and union by rank.
//
// Error Conditions:
//   - core.ErrNilGraph     : if graph is nil.
//   - core.ErrDisconnected : if |V| > 1 but graph is not fully connected.
//
// Steps:
//  1. Validate graph != nil; |V| ≤ 1 → empty MST.
//  2. Collect edges, skipping self-loops.
//  3. Stable-sort by ascending weight so equal weights keep insertion order.
//  4. Sweep: keep every edge that unites two components; stop at |V|-1 edges.
//  5. Fewer than |V|-1 edges → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(graph *core.Graph) ([]core.Edge, int64, error) {
	if graph == nil {
		return nil, 0, core.ErrNilGraph
	}
	numVerts := graph.VertexCount()
	if numVerts <= 1 {
		return []core.Edge{}, 0, nil
	}

	all := graph.Edges()
	edges := all[:0]
	for _, e := range all {
		if e.From == e.To {
			continue
		}
		edges = append(edges, e)
	}

	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	var (
		forest      = disjointset.New(numVerts)
		mst         = make([]core.Edge, 0, numVerts-1)
		totalWeight int64
	)
	for _, e := range edges {
		if !forest.Union(e.From, e.To) {
			continue
		}
		mst = append(mst, e)
		totalWeight += e.Weight
		if len(mst) == numVerts-1 {
			break
		}
	}

	if len(mst) < numVerts-1 {
		return nil, 0, core.ErrDisconnected
	}

	return mst, totalWeight, nil
}
