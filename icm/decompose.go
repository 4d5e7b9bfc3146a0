package icm

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/qgraphstate/engine"
	"github.com/katalvlaran/qgraphstate/gate"
)

// Decompose rewrites c into Clifford-only normal form (spec §4.4):
//
//   - Pauli gates (I, X, Y, Z) are dropped; they never touch the graph.
//   - Single- and two-qubit Clifford gates are emitted directly, with
//     qubit operands translated through the live logical-to-physical map.
//   - Every other vocabulary entry is treated as non-Clifford and
//     realized via ancilla teleportation injection: a fresh ancilla is
//     allocated, a CNOT from the logical qubit's current physical qubit
//     onto the ancilla is emitted, the old physical qubit is recorded as
//     a Measurement, and the logical qubit's map entry moves to the
//     ancilla.
//   - RESET (detected via gate.Resetter when the Gate implements it,
//     otherwise via a "ResetOperation" substring in the Gate's %v form;
//     a Name() of gate.ResetName is a reset in both cases) allocates a fresh ancilla for its qubit with no CNOT: the
//     old physical qubit is simply abandoned, not measured.
//
// opts currently recognizes WithMeasurementMarkers, which additionally
// flags the teleportation CNOT for each measurement with
// engine.MeasureOffset in the returned Ops stream.
func Decompose(c gate.Circuit, opts ...Option) (*Result, error) {
	if c == nil {
		return nil, ErrNilCircuit
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	n := c.NQubits()
	qubitMap := make([]int, n)
	for i := range qubitMap {
		qubitMap[i] = i
	}
	nextAncilla := n

	res := &Result{QubitMap: qubitMap}

	for _, g := range c.Operations() {
		class, ok := gate.Classify(g.Name())
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownGateName, g.Name())
		}
		// A Gate implementing Resetter is a reset when IsReset reports
		// true; any other Gate is a reset when its %v form contains
		// "ResetOperation". A gate named gate.ResetName is classified as a
		// reset by the vocabulary table either way.
		if r, implementsResetter := g.(gate.Resetter); implementsResetter {
			if r.IsReset() {
				class = gate.ClassReset
			}
		} else if strings.Contains(fmt.Sprintf("%v", g), "ResetOperation") {
			class = gate.ClassReset
		}

		qubits := g.Qubits()
		if err := validateQubits(class, qubits, n); err != nil {
			return nil, err
		}

		switch class {
		case gate.ClassPauli:
			// Dropped: no graph effect under this formalism.

		case gate.ClassSingleClifford:
			logical := qubits[0]
			op := engine.Op{Q1: qubitMap[logical]}
			if g.Name() == gate.H {
				op.Code = engine.OpH
			} else if g.Name() == gate.SDagger {
				op.Code = engine.OpSDagger
			} else {
				op.Code = engine.OpS
			}
			res.Ops = append(res.Ops, op)

		case gate.ClassTwoQubitClifford:
			q1, q2 := qubitMap[qubits[0]], qubitMap[qubits[1]]
			code := engine.OpCZ
			if g.Name() == gate.CNOT {
				code = engine.OpCNOT
			}
			res.Ops = append(res.Ops, engine.Op{Code: code, Q1: q1, Q2: q2})

		case gate.ClassReset:
			logical := qubits[0]
			qubitMap[logical] = nextAncilla
			nextAncilla++

		case gate.ClassTeleported:
			logical := qubits[0]
			old := qubitMap[logical]
			ancilla := nextAncilla
			nextAncilla++

			code := engine.OpCNOT
			if cfg.measurementMarkers {
				code |= engine.MeasureOffset
			}
			res.Ops = append(res.Ops, engine.Op{Code: code, Q1: old, Q2: ancilla})
			res.Measurements = append(res.Measurements, Measurement{Qubit: old, Gate: g.Name()})
			qubitMap[logical] = ancilla
		}
	}

	res.PhysicalQubits = nextAncilla
	return res, nil
}

func validateQubits(class gate.Class, qubits []int, n int) error {
	want := 1
	if class == gate.ClassTwoQubitClifford {
		want = 2
	}
	if len(qubits) != want {
		return fmt.Errorf("%w: want %d, got %d", ErrBadQubitCount, want, len(qubits))
	}
	for _, q := range qubits {
		if q < 0 || q >= n {
			return fmt.Errorf("%w: %d", ErrQubitOutOfRange, q)
		}
	}
	return nil
}
