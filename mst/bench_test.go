package mst_test

import (
	"testing"

	"github.com/katalvlaran/spanforest/mst"
)

// BenchmarkBoruvka measures a random graph with 500 vertices and ~2000 edges.
func BenchmarkBoruvka(b *testing.B) {
	g := buildMediumGraph(b, 500, 1501) // pre-build graph once
	b.ResetTimer()                      // exclude graph construction
	for i := 0; i < b.N; i++ {
		_, _, _ = mst.Compute(g, mst.DefaultOptions())
	}
}

// BenchmarkKruskal measures the same graph shape with Kruskal.
func BenchmarkKruskal(b *testing.B) {
	g := buildMediumGraph(b, 500, 1501)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = mst.Kruskal(g)
	}
}

// BenchmarkPrim measures the same graph shape with Prim, always starting from vertex 0.
func BenchmarkPrim(b *testing.B) {
	g := buildMediumGraph(b, 500, 1501)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = mst.Prim(g, 0)
	}
}
