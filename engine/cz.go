package engine

import (
	"github.com/katalvlaran/qgraphstate/lco"
	"github.com/katalvlaran/qgraphstate/store"
)

// CZ commits a controlled-Z between u and v onto g: it first reduces
// each endpoint's dressing (skipping the reduction when the endpoint is
// already almost isolated w.r.t. the other, per spec §4.3.1's
// performance guard), then looks up the appropriate transition table and
// applies it.
//
// u is reduced first, then v, then u is rechecked: reducing v calls
// localComplement, which applies MultiplyByS to every one of v's
// current neighbors — and u can be among them, or be the auxiliary
// vertex removeLCO(v, ...) picks. That can push u's code back outside
// {Pauli, S} even though u was already reduced. Skipping the recheck
// would let an unreduced code reach the table lookup below.
func CZ(g *store.Graph, u, v int) {
	if !g.AlmostIsolated(u, v) {
		removeLCO(g, u, v)
	}
	if !g.AlmostIsolated(v, u) {
		removeLCO(g, v, u)
	}
	if !g.AlmostIsolated(u, v) {
		removeLCO(g, u, v)
	}

	if g.HasEdge(u, v) {
		newU, newV, edgeAfter := lco.CZConnected(g.Code(u), g.Code(v))
		g.SetCode(u, newU)
		g.SetCode(v, newV)
		if !edgeAfter {
			g.RemoveEdge(u, v)
		}
		return
	}

	newU, newV, addEdge := lco.CZIsolated(g.Code(u), g.Code(v))
	g.SetCode(u, newU)
	g.SetCode(v, newV)
	if addEdge {
		g.AddEdge(u, v)
	}
}
