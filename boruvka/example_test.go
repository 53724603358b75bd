package boruvka_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spanforest/boruvka"
	"github.com/katalvlaran/spanforest/core"
)

// ExampleComputeMST demonstrates a single Borůvka round on a 4-vertex graph.
func ExampleComputeMST() {
	g, err := core.NewGraph(4, []core.Edge{
		{From: 0, To: 1, Weight: 10},
		{From: 0, To: 2, Weight: 6},
		{From: 0, To: 3, Weight: 5},
		{From: 1, To: 3, Weight: 15},
		{From: 2, To: 3, Weight: 4},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	edges, total, err := boruvka.ComputeMST(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("Total:", total)
	fmt.Println("Edges:", edges)
	// Output:
	// Total: 19
	// Edges: [0-3(5) 0-1(10) 2-3(4)]
}

// ExampleWithSpanningForest shows the disconnected case with and without the option.
func ExampleWithSpanningForest() {
	g, _ := core.NewGraph(4, []core.Edge{
		{From: 0, To: 1, Weight: 3},
		{From: 2, To: 3, Weight: 7},
	})

	_, _, err := boruvka.ComputeMST(g)
	fmt.Println(errors.Is(err, core.ErrDisconnected))

	forest, total, _ := boruvka.ComputeMST(g, boruvka.WithSpanningForest())
	fmt.Println(forest, total)
	// Output:
	// true
	// [0-1(3) 2-3(7)] 10
}

// ExampleWithOnRound traces component counts round by round.
func ExampleWithOnRound() {
	g, _ := core.NewGraph(6, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 5},
		{From: 2, To: 3, Weight: 2},
		{From: 3, To: 4, Weight: 6},
		{From: 4, To: 5, Weight: 3},
	})

	_, _, _ = boruvka.ComputeMST(g, boruvka.WithOnRound(func(s boruvka.RoundStats) error {
		fmt.Printf("round %d: +%d edges, %d components, weight %d\n",
			s.Round, s.Committed, s.Components, s.Weight)
		return nil
	}))
	// Output:
	// round 1: +3 edges, 3 components, weight 6
	// round 2: +2 edges, 1 components, weight 17
}
