// Package boruvka computes minimum spanning trees of an undirected,
// weighted *core.Graph with Borůvka's algorithm.
//
// What & Why
//
// Borůvka's algorithm grows every component of the forest at the same time.
// Each round does two things:
//
//	Phase A - scan every edge once; for each component, remember the cheapest
//	          edge that leaves it.
//	Phase B - walk the components in vertex order and commit each remembered
//	          edge whose endpoints are still in different components, merging
//	          them in a disjointset.Forest.
//
// Every round on a connected graph at least halves the number of components,
// so at most ⌈log₂ V⌉ rounds run and the total cost is O(E log V).
//
// Determinism
//
//   - Phase A keeps an edge only if it is strictly cheaper than the recorded
//     one, so on equal weights the earlier edge in g.Edges() order wins.
//   - Phase B visits component representatives in ascending vertex order.
//   - The result therefore depends only on the graph's edge order; permuting
//     edges with tied weights may select a different (equally light) tree.
//
// Phase B re-checks the endpoints' components before committing, because the
// same physical edge is often the cheapest for both of its components and an
// earlier commit in the same round may already have joined them.
//
// Disconnected graphs
//
// A round that commits no edge proves that no component has an outgoing
// edge left. ComputeMST then stops and returns core.ErrDisconnected, or the
// minimum spanning forest when WithSpanningForest() is set.
//
// Options
//
//   - WithSpanningForest()  return the forest instead of ErrDisconnected.
//   - WithOnRound(fn)       observe RoundStats after every round; an error aborts.
//   - WithContext(ctx)      checked once per round for cancellation.
//
// Example
//
//	g, _ := core.NewGraph(4, []core.Edge{{0, 1, 10}, {0, 2, 6}, {0, 3, 5}, {1, 3, 15}, {2, 3, 4}})
//	edges, total, err := boruvka.ComputeMST(g)
//	// edges = [0-3(5) 0-1(10) 2-3(4)], total = 19
package boruvka
