package store

import "github.com/katalvlaran/qgraphstate/lco"

// Graph is the mutable (adjacency, LCO-vector) pair the engine operates
// on. The zero value is not usable; construct one with New.
type Graph struct {
	codes     []lco.Code
	neighbors []map[int]struct{}
}

// New builds a Graph of n vertices (0..n-1), each isolated and dressed
// with the given initial code. The graph-state convention used here
// dresses every fresh vertex with lco.H, representing |+⟩ = H|0⟩ (spec
// §4.3.5's initial-state clause), so callers pass lco.H for a standard
// simulation; the parameter exists so tests can start from other
// dressings directly.
func New(n int, initial lco.Code) *Graph {
	g := &Graph{
		codes:     make([]lco.Code, n),
		neighbors: make([]map[int]struct{}, n),
	}
	for i := 0; i < n; i++ {
		g.codes[i] = initial
		g.neighbors[i] = make(map[int]struct{})
	}
	return g
}

// NQubits returns the number of vertices the graph was constructed with.
func (g *Graph) NQubits() int { return len(g.codes) }
