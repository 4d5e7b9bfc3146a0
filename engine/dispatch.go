package engine

import (
	"fmt"

	"github.com/katalvlaran/qgraphstate/lco"
	"github.com/katalvlaran/qgraphstate/store"
)

// Dispatch drives a full stream of already-ICM-decomposed ops through g,
// one at a time, in order (spec §4.3.5). CNOT is realized as the
// standard H-CZ-H target wrap; every other non-CZ op is a single-qubit
// table update.
func Dispatch(g *store.Graph, ops []Op) error {
	for i, op := range ops {
		if err := dispatchOne(g, op); err != nil {
			return fmt.Errorf("engine: op %d: %w", i, err)
		}
	}
	return nil
}

func dispatchOne(g *store.Graph, op Op) error {
	switch op.Code &^ MeasureOffset {
	case OpPauli:
		// Ignored: Pauli operators never change the graph/LCO
		// representation under this formalism.
	case OpH:
		if err := checkQubit(g, op.Q1); err != nil {
			return err
		}
		g.SetCode(op.Q1, lco.MultiplyH(g.Code(op.Q1)))
	case OpS, OpSDagger:
		if err := checkQubit(g, op.Q1); err != nil {
			return err
		}
		g.SetCode(op.Q1, lco.MultiplyS(g.Code(op.Q1)))
	case OpCZ:
		if err := checkQubits(g, op.Q1, op.Q2); err != nil {
			return err
		}
		CZ(g, op.Q1, op.Q2)
	case OpCNOT:
		if err := checkQubits(g, op.Q1, op.Q2); err != nil {
			return err
		}
		// CNOT(control=Q1, target=Q2) = H(Q2); CZ(Q1,Q2); H(Q2).
		g.SetCode(op.Q2, lco.MultiplyH(g.Code(op.Q2)))
		CZ(g, op.Q1, op.Q2)
		g.SetCode(op.Q2, lco.MultiplyH(g.Code(op.Q2)))
	default:
		return ErrUnknownOpCode
	}
	return nil
}

func checkQubit(g *store.Graph, q int) error {
	if q < 0 || q >= g.NQubits() {
		return ErrQubitOutOfRange
	}
	return nil
}

func checkQubits(g *store.Graph, q1, q2 int) error {
	if err := checkQubit(g, q1); err != nil {
		return err
	}
	return checkQubit(g, q2)
}
