// Package mst provides three interchangeable algorithms for the Minimum
// Spanning Tree (MST) of an undirected, weighted *core.Graph, and a small
// dispatcher that selects one of them.
//
// What & Why
//
//   - What is an MST?
//     Given a connected, weighted graph G = (V, E), an MST is a subset T ⊆ E of
//     |V|-1 edges that connects every vertex and minimizes the total weight.
//
//   - Why three algorithms?
//     Borůvka (package boruvka) is the default. Kruskal and Prim are kept as
//     independent implementations; on graphs with distinct weights all three
//     return the same tree, which makes them useful cross-checks.
//
// Algorithms Provided
//
//   - Kruskal(g *core.Graph) ([]core.Edge, int64, error)
//     Stable-sort edges by weight, then sweep them with a disjointset.Forest,
//     keeping each edge that joins two components.
//     Time O(E log E), space O(V + E). Ties break by original edge order.
//
//   - Prim(g *core.Graph, root int) ([]core.Edge, int64, error)
//     Grow one tree from root using a min-heap of frontier edges.
//     Time O(E log E), space O(V + E).
//
//   - Compute(g *core.Graph, opts MSTOptions) ([]core.Edge, int64, error)
//     Dispatch on opts.Method: MethodBoruvka (default), MethodKruskal, MethodPrim.
//
// Error Conditions
//
//   - core.ErrNilGraph       g is nil.
//   - core.ErrDisconnected   |V| > 1 and the graph has more than one component.
//   - core.ErrInvalidArgument (wrapped) Prim root out of range.
//   - ErrUnknownMethod       Compute got an unrecognised method name.
//
// A graph with |V| ≤ 1 has an empty MST with weight 0. Self-loops never
// appear in a result; parallel edges compete like any other edge.
package mst
