// Package mst defines configuration options and sentinel errors for MST computation.
// It supports selecting between Borůvka, Kruskal and Prim via MSTOptions.
package mst

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spanforest/boruvka"
	"github.com/katalvlaran/spanforest/core"
)

// ErrUnknownMethod indicates that MSTOptions.Method names no known algorithm.
var ErrUnknownMethod = errors.New("mst: unknown method")

// MethodBoruvka selects Borůvka's algorithm (parallel component growth).
const MethodBoruvka = "boruvka"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Borůvka).
type MSTOptions struct {
	// Method to use: MethodBoruvka, MethodKruskal or MethodPrim.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by the others.
	Root int
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions with Method = MethodBoruvka and Root = 0,
// with any opts applied on top.
func DefaultOptions(opts ...Option) MSTOptions {
	o := MSTOptions{
		Method: MethodBoruvka,
		Root:   0,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
// Returns the MST edges, their total weight, and an error if the computation
// cannot proceed. See the package documentation for error conditions.
func Compute(graph *core.Graph, opts MSTOptions) ([]core.Edge, int64, error) {
	switch opts.Method {
	case MethodBoruvka:
		return boruvka.ComputeMST(graph)
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		return Prim(graph, opts.Root)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
}
