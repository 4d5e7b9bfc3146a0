package engine

import (
	"github.com/katalvlaran/qgraphstate/lco"
	"github.com/katalvlaran/qgraphstate/store"
)

// localComplement applies a local complementation pivoted at v: every
// pair of v's current neighbors has its edge toggled, v's own dressing
// picks up a sqrt(X), and each of v's neighbors picks up an S (spec
// §4.3.4). This is the single state-preserving graph rewrite the whole
// engine is built from; removeLCO composes one or two calls of it to
// drive a vertex's dressing down to {Pauli, S}.
func localComplement(g *store.Graph, v int) {
	// Snapshot first: toggling edges among the neighbors mutates the very
	// map Neighbors(v) backs, and v's own neighbor set does not change
	// during this call (only edges *between* neighbors do).
	nbrs := make([]int, 0, g.Degree(v))
	for u := range g.Neighbors(v) {
		nbrs = append(nbrs, u)
	}

	for i := 0; i < len(nbrs); i++ {
		for j := i + 1; j < len(nbrs); j++ {
			g.ToggleEdge(nbrs[i], nbrs[j])
		}
	}

	g.SetCode(v, lco.MultiplyBySqrtX(g.Code(v)))
	for _, u := range nbrs {
		g.SetCode(u, lco.MultiplyByS(g.Code(u)))
	}
}
