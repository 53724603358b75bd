// Package spanforest computes minimum spanning trees and forests of
// undirected, integer-weighted graphs.
//
// 🚀 What is spanforest?
//
//	A small, dependency-light library built around Borůvka's algorithm:
//		• Core primitives: an immutable Graph of dense vertex indices and weighted edges
//		• Disjoint sets: union by rank with path compression
//		• Borůvka: parallel-friendly component growth in O(log V) rounds
//		• Reference MSTs: Kruskal and Prim behind one Compute entry point
//		• Builders: paths, cycles, stars, grids, complete and random graphs
//		• Converters: gonum/graph adapters and a plain-text edge list format
//
// Under the hood, everything is organized under these subpackages:
//
//	core/        - Graph, Edge and the shared sentinel errors
//	disjointset/ - the union-find Forest
//	boruvka/     - ComputeMST with round hooks, cancellation and spanning forests
//	mst/         - Kruskal, Prim and the method dispatcher
//	builder/     - deterministic graph constructors for tests and benchmarks
//	converters/  - gonum and edge-list adapters
//
// Quick ASCII example:
//
//	    0──10──1
//	    │╲     │
//	    6  5   15
//	    │    ╲ │
//	    2──4───3
//
//	has a minimum spanning tree {2–3, 0–3, 0–1} of weight 19.
//
//	go get github.com/katalvlaran/spanforest
package spanforest
