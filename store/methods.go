package store

import "github.com/katalvlaran/qgraphstate/lco"

// Code returns vertex v's current LCO dressing.
func (g *Graph) Code(v int) lco.Code { return g.codes[v] }

// SetCode overwrites vertex v's current LCO dressing.
func (g *Graph) SetCode(v int, c lco.Code) { g.codes[v] = c }

// HasEdge reports whether u and v are currently connected. u == v always
// reports false (no self-loops, spec §4.2).
func (g *Graph) HasEdge(u, v int) bool {
	if u == v {
		return false
	}
	_, ok := g.neighbors[u][v]
	return ok
}

// AddEdge connects u and v. A no-op if the edge already exists or u == v.
func (g *Graph) AddEdge(u, v int) {
	if u == v {
		return
	}
	g.neighbors[u][v] = struct{}{}
	g.neighbors[v][u] = struct{}{}
}

// RemoveEdge disconnects u and v. A no-op if no such edge exists.
func (g *Graph) RemoveEdge(u, v int) {
	delete(g.neighbors[u], v)
	delete(g.neighbors[v], u)
}

// ToggleEdge adds the edge if absent, removes it if present, and reports
// the new presence state. local_complement (spec §4.3.4 step 2) toggles
// edges between neighbor pairs this way.
func (g *Graph) ToggleEdge(u, v int) (present bool) {
	if g.HasEdge(u, v) {
		g.RemoveEdge(u, v)
		return false
	}
	g.AddEdge(u, v)
	return true
}

// Neighbors returns the live neighbor set of v. Callers that need a
// snapshot independent of subsequent mutation (e.g. local_complement
// iterating pairs while toggling edges) must copy it first; Graph never
// mutates a returned map itself, but inserts/deletes into g.neighbors[v]
// are visible through it since it is the same underlying map.
func (g *Graph) Neighbors(v int) map[int]struct{} { return g.neighbors[v] }

// Degree returns the number of vertices currently adjacent to v.
func (g *Graph) Degree(v int) int { return len(g.neighbors[v]) }

// AlmostIsolated reports whether v has at most one neighbor and, if it
// has exactly one, that neighbor is other. cz's reduction guard (spec
// §4.3.1) and neighbor's fallback (spec §4.3.3) both use this to decide
// whether reducing v's LCO is worth the cost of local complementation.
func (g *Graph) AlmostIsolated(v, other int) bool {
	switch g.Degree(v) {
	case 0:
		return true
	case 1:
		_, ok := g.neighbors[v][other]
		return ok
	default:
		return false
	}
}

// Clone deep-copies the graph so callers can inspect a snapshot (e.g. for
// a Result returned from the facade) without aliasing the engine's live
// state.
func (g *Graph) Clone() *Graph {
	out := New(len(g.codes), lco.Pauli)
	copy(out.codes, g.codes)
	for v, nbrs := range g.neighbors {
		for u := range nbrs {
			out.neighbors[v][u] = struct{}{}
		}
	}
	return out
}

// EdgeCount returns the number of distinct edges in the graph.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, nbrs := range g.neighbors {
		n += len(nbrs)
	}
	return n / 2
}
