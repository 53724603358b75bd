// Package builder produces deterministic *core.Graph fixtures for tests,
// benchmarks and examples.
//
// A graph is assembled by BuildGraph from one or more Constructors. Each
// Constructor allocates a fresh block of vertex indices and emits edges
// between them, so composing constructors yields a graph whose components
// are exactly the constructed pieces:
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeights(1, 100)},
//		builder.RandomConnected(50, 120),
//		builder.Cycle(5), // second, disconnected component (vertices 50..54)
//	)
//
// Constructors:
//
//   - Path(n)             P_n, n ≥ 2, edges i-(i+1).
//   - Cycle(n)            C_n, n ≥ 3, path plus (n-1)-0.
//   - Star(n)             center 0 joined to 1..n-1, n ≥ 2.
//   - Complete(n)         K_n, n ≥ 2, pairs (i,j) with i<j in lexicographic order.
//   - Grid(rows, cols)    4-neighborhood grid, row-major indices, rows·cols ≥ 2.
//   - RandomSparse(n, p)  each pair (i,j), i<j, kept with probability p.
//   - RandomConnected(n, extra)
//     a random spanning path plus extra random chords (parallel edges allowed).
//
// Options:
//
//   - WithSeed(seed) / WithRand(r)  RNG for stochastic constructors and weights.
//   - WithWeightFn(fn)              custom weight generator (default: constant 1).
//   - WithUniformWeights(lo, hi)    uniform integer weights in [lo, hi].
//   - WithDistinctWeights()         rewrite weights to a permutation of 1..E.
//
// Determinism: the same options, seed and constructor order always produce
// the same graph, including edge order.
//
// Errors: constructors return ErrTooFewVertices, ErrInvalidProbability or
// ErrNeedRandSource wrapped with the constructor name; BuildGraph wraps them
// once more with "BuildGraph: %w". Option constructors panic on meaningless
// arguments (nil functions, lo > hi).
package builder
