package boruvka

import (
	"fmt"

	"github.com/katalvlaran/spanforest/core"
	"github.com/katalvlaran/spanforest/disjointset"
)

// noEdge marks an empty slot in the per-component cheapest-edge array.
const noEdge = -1

// ComputeMST returns the edges of a minimum spanning tree of g together with
// their total weight.
//
// Error Conditions:
//   - core.ErrNilGraph     : g is nil.
//   - core.ErrDisconnected : g has more than one component and
//     WithSpanningForest() was not given.
//   - ErrOptionViolation   : an Option was invalid.
//   - ctx.Err() or the OnRound error, wrapped, when a round is aborted.
//
// Steps:
//  1. Resolve options; V ≤ 1 returns an empty tree immediately.
//  2. Allocate one disjoint-set node per vertex.
//  3. While fewer than V-1 edges are committed:
//     a. Phase A: record the cheapest outgoing edge per component.
//     b. Phase B: commit recorded edges whose endpoints are still apart.
//     c. A round with zero commits means the graph is disconnected.
//
// The returned slice holds copies of edges from g in commit order.
// Complexity: O(E log V) time, O(V) extra space.
func ComputeMST(g *core.Graph, opts ...Option) ([]core.Edge, int64, error) {
	if g == nil {
		return nil, 0, core.ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, 0, o.err
	}

	if g.VertexCount() <= 1 {
		return []core.Edge{}, 0, nil
	}

	s := newState(g)
	for round := 1; s.hasMoreEdgesToAdd(); round++ {
		if err := o.Ctx.Err(); err != nil {
			return nil, 0, fmt.Errorf("boruvka: round %d: %w", round, err)
		}

		s.computeCheapestEdges()
		committed := s.merge()

		stats := RoundStats{
			Round:      round,
			Committed:  committed,
			Components: s.forest.Sets(),
			Weight:     s.total,
		}
		if err := o.OnRound(stats); err != nil {
			return nil, 0, fmt.Errorf("boruvka: OnRound error at round %d: %w", round, err)
		}

		if committed == 0 {
			if o.SpanningForest {
				return s.mst, s.total, nil
			}
			return nil, 0, core.ErrDisconnected
		}
	}

	return s.mst, s.total, nil
}

// state is the working set of one ComputeMST call. It borrows the graph and
// owns everything else.
type state struct {
	graph  *core.Graph
	forest *disjointset.Forest

	// cheapest[r] is the index into graph edges of the cheapest edge leaving
	// the component whose representative is r, or noEdge.
	cheapest []int

	mst   []core.Edge
	total int64
}

func newState(g *core.Graph) *state {
	n := g.VertexCount()

	return &state{
		graph:    g,
		forest:   disjointset.New(n),
		cheapest: make([]int, n),
		mst:      make([]core.Edge, 0, n-1),
	}
}

// hasMoreEdgesToAdd reports whether the tree still needs edges.
func (s *state) hasMoreEdgesToAdd() bool {
	return len(s.mst) < s.graph.VertexCount()-1
}

// computeCheapestEdges is Phase A. Edges inside a component are ignored;
// a crossing edge replaces the recorded one only when strictly lighter.
func (s *state) computeCheapestEdges() {
	for i := range s.cheapest {
		s.cheapest[i] = noEdge
	}

	for i := 0; i < s.graph.EdgeCount(); i++ {
		e := s.graph.Edge(i)
		rootFrom := s.forest.Find(e.From)
		rootTo := s.forest.Find(e.To)
		if rootFrom == rootTo {
			continue
		}
		s.offer(rootFrom, i, e.Weight)
		s.offer(rootTo, i, e.Weight)
	}
}

func (s *state) offer(root, edge int, weight int64) {
	cur := s.cheapest[root]
	if cur == noEdge || weight < s.graph.Edge(cur).Weight {
		s.cheapest[root] = edge
	}
}

// merge is Phase B. It returns the number of edges committed this round.
//
// The same edge may be recorded for both of its components, and earlier
// commits in this loop may already have joined its endpoints; Union reports
// false in both cases and the edge is skipped.
func (s *state) merge() int {
	committed := 0
	for _, idx := range s.cheapest {
		if idx == noEdge {
			continue
		}
		e := s.graph.Edge(idx)
		if !s.forest.Union(e.From, e.To) {
			continue
		}
		s.mst = append(s.mst, e)
		s.total += e.Weight
		committed++
	}

	return committed
}
