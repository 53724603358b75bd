// Package builder_test verifies topology, counts, determinism and error
// sentinels of every Constructor.
package builder_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spanforest/builder"
	"github.com/katalvlaran/spanforest/core"
	"github.com/katalvlaran/spanforest/disjointset"
)

// components counts connected components of g.
func components(g *core.Graph) int {
	f := disjointset.New(g.VertexCount())
	for _, e := range g.Edges() {
		f.Union(e.From, e.To)
	}

	return f.Sets()
}

func TestBuilders_Functional(t *testing.T) {
	tests := []struct {
		name  string
		ctor  builder.Constructor
		wantV int
		wantE int
		first core.Edge
	}{
		{"Path(4)", builder.Path(4), 4, 3, core.Edge{From: 0, To: 1, Weight: 1}},
		{"Cycle(5)", builder.Cycle(5), 5, 5, core.Edge{From: 0, To: 1, Weight: 1}},
		{"Star(6)", builder.Star(6), 6, 5, core.Edge{From: 0, To: 1, Weight: 1}},
		{"Complete(5)", builder.Complete(5), 5, 10, core.Edge{From: 0, To: 1, Weight: 1}},
		{"Grid(3,4)", builder.Grid(3, 4), 12, 17, core.Edge{From: 0, To: 1, Weight: 1}},
		{"Grid(1,2)", builder.Grid(1, 2), 2, 1, core.Edge{From: 0, To: 1, Weight: 1}},
		{"RandomSparse(4,1)", builder.RandomSparse(4, 1), 4, 6, core.Edge{From: 0, To: 1, Weight: 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			assert.Equal(t, tc.first, g.Edge(0))
			assert.Equal(t, 1, components(g), "fixture must be connected")
		})
	}
}

func TestCycle_ClosingEdge(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(4))
	require.NoError(t, err)
	assert.Equal(t, core.Edge{From: 3, To: 0, Weight: 1}, g.Edge(3))
}

func TestGrid_RowMajorOrder(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Grid(2, 2))
	require.NoError(t, err)
	// (0,0)->right, (0,0)->bottom, (0,1)->bottom, (1,0)->right
	want := []core.Edge{{From: 0, To: 1, Weight: 1}, {From: 0, To: 2, Weight: 1}, {From: 1, To: 3, Weight: 1}, {From: 2, To: 3, Weight: 1}}
	assert.Equal(t, want, g.Edges())
}

// TestBuildGraph_Composition checks that constructors get disjoint vertex blocks.
func TestBuildGraph_Composition(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(3), builder.Cycle(3))
	require.NoError(t, err)

	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, 5, g.EdgeCount())
	assert.Equal(t, core.Edge{From: 3, To: 4, Weight: 1}, g.Edge(2))
	assert.Equal(t, 2, components(g))
}

func TestBuilders_Errors(t *testing.T) {
	seeded := []builder.BuilderOption{builder.WithSeed(1)}
	cases := []struct {
		name  string
		opts  []builder.BuilderOption
		ctors []builder.Constructor
		want  error
	}{
		{"no constructors", nil, nil, builder.ErrConstructFailed},
		{"nil constructor", nil, []builder.Constructor{nil}, builder.ErrConstructFailed},
		{"Path(1)", nil, []builder.Constructor{builder.Path(1)}, builder.ErrTooFewVertices},
		{"Cycle(2)", nil, []builder.Constructor{builder.Cycle(2)}, builder.ErrTooFewVertices},
		{"Star(1)", nil, []builder.Constructor{builder.Star(1)}, builder.ErrTooFewVertices},
		{"Complete(1)", nil, []builder.Constructor{builder.Complete(1)}, builder.ErrTooFewVertices},
		{"Grid(1,1)", nil, []builder.Constructor{builder.Grid(1, 1)}, builder.ErrTooFewVertices},
		{"Grid(0,3)", nil, []builder.Constructor{builder.Grid(0, 3)}, builder.ErrTooFewVertices},
		{"RandomSparse p>1", seeded, []builder.Constructor{builder.RandomSparse(4, 1.5)}, builder.ErrInvalidProbability},
		{"RandomSparse no rng", nil, []builder.Constructor{builder.RandomSparse(4, 0.5)}, builder.ErrNeedRandSource},
		{"RandomSparse p=0 is empty", nil, []builder.Constructor{builder.RandomSparse(4, 0)}, core.ErrInvalidArgument},
		{"RandomConnected no rng", nil, []builder.Constructor{builder.RandomConnected(4, 2)}, builder.ErrNeedRandSource},
		{"RandomConnected extra<0", seeded, []builder.Constructor{builder.RandomConnected(4, -1)}, builder.ErrTooFewVertices},
		{"RandomConnected n<2", seeded, []builder.Constructor{builder.RandomConnected(1, 0)}, builder.ErrTooFewVertices},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(tc.opts, tc.ctors...)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRandomConnected_IsConnectedAndDeterministic(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeights(1, 50)}

	g1, err := builder.BuildGraph(opts, builder.RandomConnected(100, 250))
	require.NoError(t, err)
	assert.Equal(t, 100, g1.VertexCount())
	assert.Equal(t, 99+250, g1.EdgeCount())
	assert.Equal(t, 1, components(g1))

	// Rebuild with fresh options (new RNG, same seed): identical graph.
	opts = []builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeights(1, 50)}
	g2, err := builder.BuildGraph(opts, builder.RandomConnected(100, 250))
	require.NoError(t, err)
	assert.Equal(t, g1.Edges(), g2.Edges())

	for _, e := range g1.Edges() {
		assert.NotEqual(t, e.From, e.To, "chords must not be loops")
		assert.GreaterOrEqual(t, e.Weight, int64(1))
		assert.LessOrEqual(t, e.Weight, int64(50))
	}
}

func TestWithDistinctWeights(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithDistinctWeights()},
		builder.Complete(6),
	)
	require.NoError(t, err)

	weights := make([]int, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		weights = append(weights, int(e.Weight))
	}
	sort.Ints(weights)
	for i, w := range weights {
		assert.Equal(t, i+1, w)
	}
}

func TestWithDistinctWeights_NoRNGIsSequential(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithDistinctWeights()}, builder.Path(4))
	require.NoError(t, err)
	for i, e := range g.Edges() {
		assert.Equal(t, int64(i+1), e.Weight)
	}
}

func TestWithWeightFn(t *testing.T) {
	next := int64(0)
	fn := func(*rand.Rand) int64 { next += 10; return next }

	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithWeightFn(fn)}, builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, int64(10), g.Edge(0).Weight)
	assert.Equal(t, int64(20), g.Edge(1).Weight)
}

func TestWithUniformWeights_NoRNGUsesLow(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithUniformWeights(7, 9)}, builder.Path(3))
	require.NoError(t, err)
	for _, e := range g.Edges() {
		assert.Equal(t, int64(7), e.Weight)
	}
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithUniformWeights(5, 4) })
}
