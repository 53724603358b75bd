// SPDX-License-Identifier: MIT

// Package disjointset implements a union-find forest over the vertex indices
// 0..n-1 with path compression and union by rank.
//
// The forest is stored as two flat arrays (parent and rank) indexed by
// vertex, so there are no node objects and no pointer cycles to manage.
// Every vertex starts as the representative of its own singleton set with
// rank 0.
//
// Complexity: Find and Union run in O(α(n)) amortized time, where α is the
// inverse Ackermann function. Memory is O(n).
//
// A Forest is not safe for concurrent use: Find mutates parent pointers.
package disjointset

// Forest is a disjoint-set forest over n vertices.
//
// Invariants:
//   - Following parent links from any vertex reaches a root r with parent[r] == r.
//   - rank[r] is an upper bound on the height of the tree rooted at r and is
//     consulted only to choose the direction of a union.
type Forest struct {
	parent []int
	rank   []int
	sets   int // number of disjoint sets currently in the forest
}

// New returns a Forest of n singleton sets. It panics if n is negative.
// Complexity: O(n).
func New(n int) *Forest {
	if n < 0 {
		panic("disjointset: New(n<0)")
	}
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}

	return &Forest{
		parent: parent,
		rank:   make([]int, n),
		sets:   n,
	}
}

// Len returns the number of vertices tracked by the forest.
func (f *Forest) Len() int { return len(f.parent) }

// Sets returns the current number of disjoint sets.
func (f *Forest) Sets() int { return f.sets }

// Rank returns the rank of v. The value is only meaningful for roots.
func (f *Forest) Rank(v int) int { return f.rank[v] }

// Find returns the representative of the set containing v and compresses
// the path from v so that every node on it points directly at the root.
//
// Two vertices yield the same representative iff they are in the same set.
// Indices outside [0, Len()) panic.
func (f *Forest) Find(v int) int {
	// Walk to the root.
	root := v
	for f.parent[root] != root {
		root = f.parent[root]
	}
	// Repoint every node on the path at the root.
	for f.parent[v] != root {
		v, f.parent[v] = f.parent[v], root
	}

	return root
}

// Union merges the sets containing a and b and reports whether a merge
// happened. When both are already in the same set it returns false and
// leaves the forest untouched.
//
// The root with strictly smaller rank is attached under the other. On a
// tie, b's root is attached under a's root, whose rank grows by one.
func (f *Forest) Union(a, b int) bool {
	rootA := f.Find(a)
	rootB := f.Find(b)
	if rootA == rootB {
		return false
	}

	switch {
	case f.rank[rootA] < f.rank[rootB]:
		f.parent[rootA] = rootB
	case f.rank[rootA] > f.rank[rootB]:
		f.parent[rootB] = rootA
	default:
		f.parent[rootB] = rootA
		f.rank[rootA]++
	}
	f.sets--

	return true
}

// Connected reports whether a and b are currently in the same set.
func (f *Forest) Connected(a, b int) bool {
	return f.Find(a) == f.Find(b)
}
