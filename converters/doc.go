// Package converters provides adapters between core.Graph and external
// representations:
//   - gonum/graph: ToGonum / FromGonum over simple.WeightedUndirectedGraph.
//   - plain text edge lists: ParseEdgeList / WriteEdgeList.
//
// Use converters to feed graphs from other tooling into the spanning-tree
// algorithms, or to hand results to gonum's wider algorithm catalogue.
package converters
