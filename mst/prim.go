package mst

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/spanforest/core"
)

// Prim computes the Minimum Spanning Tree (MST) of an undirected, weighted graph
// by growing outwards from root using a min-heap.
//
// Error Conditions:
//   - core.ErrNilGraph        : if graph is nil.
//   - core.ErrInvalidArgument : if root is outside [0, |V|) (wrapped).
//   - core.ErrDisconnected    : if |V| > 1 but the graph is not fully connected.
//
// Steps:
//  1. Validate graph and root; |V| ≤ 1 → empty MST.
//  2. Build adjacency lists of edge indices (self-loops skipped).
//  3. Mark root visited and push its incident edges.
//  4. Pop the lightest edge; if its far end is unvisited, take it and push
//     that vertex's edges. Repeat until |V|-1 edges or the heap is empty.
//  5. Fewer than |V|-1 edges → ErrDisconnected.
//
// Edges are returned as stored in the graph, in the order Prim accepted them.
// Equal weights are popped in ascending edge-index order.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph, root int) ([]core.Edge, int64, error) {
	if graph == nil {
		return nil, 0, core.ErrNilGraph
	}
	n := graph.VertexCount()
	if root < 0 || root >= n {
		return nil, 0, fmt.Errorf("%w: prim root %d out of range [0,%d)", core.ErrInvalidArgument, root, n)
	}
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	adj := make([][]int, n)
	for i := 0; i < graph.EdgeCount(); i++ {
		e := graph.Edge(i)
		if e.From == e.To {
			continue
		}
		adj[e.From] = append(adj[e.From], i)
		adj[e.To] = append(adj[e.To], i)
	}

	var (
		visited     = make([]bool, n)
		mst         = make([]core.Edge, 0, n-1)
		totalWeight int64
		pq          = &edgePQ{}
	)
	push := func(v int) {
		visited[v] = true
		for _, idx := range adj[v] {
			e := graph.Edge(idx)
			to := e.To
			if to == v {
				to = e.From
			}
			if !visited[to] {
				heap.Push(pq, pqItem{edge: idx, weight: e.Weight, to: to})
			}
		}
	}

	push(root)
	for pq.Len() > 0 && len(mst) < n-1 {
		item := heap.Pop(pq).(pqItem)
		if visited[item.to] {
			continue
		}
		e := graph.Edge(item.edge)
		mst = append(mst, e)
		totalWeight += e.Weight
		push(item.to)
	}

	if len(mst) < n-1 {
		return nil, 0, core.ErrDisconnected
	}

	return mst, totalWeight, nil
}

// pqItem is a frontier edge: the edge index, its weight and the endpoint
// outside the tree at push time.
type pqItem struct {
	edge   int
	weight int64
	to     int
}

// edgePQ implements heap.Interface for a min-heap of frontier edges,
// ordered by weight and then by edge index.
type edgePQ []pqItem

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].weight != pq[j].weight {
		return pq[i].weight < pq[j].weight
	}
	return pq[i].edge < pq[j].edge
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new item; called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }

// Pop removes the last item; called by heap.Pop after it swaps the minimum there.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
