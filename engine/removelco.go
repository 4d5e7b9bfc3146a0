package engine

import (
	"github.com/katalvlaran/qgraphstate/lco"
	"github.com/katalvlaran/qgraphstate/store"
)

// removeLCO reduces vertex v's dressing to {Pauli, S} by composing one or
// two local complementations, selecting the auxiliary vertex via
// neighbor(v, avoid) when a second complement is needed (spec §4.3.2).
//
// Derivation: writing sqrt(X) and S's action on the six cosets (see
// lco.MultiplyBySqrtX / lco.MultiplyByS), each starting code reduces in
// at most two steps, but the order of the two local complements differs
// per code — SH and H/HS land on {Pauli, S} only when applied in the
// right order:
//
//	Pauli, S -> already reduced, no-op
//	SqrtX    -> one sqrt(X) (local_complement(v) alone) lands on Pauli
//	SH       -> local_complement(v) first, then local_complement(b)
//	H, HS    -> local_complement(b) first, then local_complement(v)
func removeLCO(g *store.Graph, v, avoid int) {
	switch g.Code(v) {
	case lco.Pauli, lco.S:
		return
	case lco.SqrtX:
		localComplement(g, v)
	case lco.SH:
		localComplement(g, v)
		b := neighbor(g, v, avoid)
		localComplement(g, b)
	default: // lco.H, lco.HS
		b := neighbor(g, v, avoid)
		localComplement(g, b)
		localComplement(g, v)
	}
}
