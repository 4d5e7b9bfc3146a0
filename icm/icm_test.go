package icm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qgraphstate/engine"
	"github.com/katalvlaran/qgraphstate/gate"
	"github.com/katalvlaran/qgraphstate/icm"
)

// simpleGate is the minimal gate.Gate implementation icm_test needs; it
// optionally implements gate.Resetter when isReset is true.
type simpleGate struct {
	name    gate.Name
	qubits  []int
	isReset bool
}

func (g simpleGate) Name() gate.Name  { return g.name }
func (g simpleGate) Qubits() []int    { return g.qubits }
func (g simpleGate) IsReset() bool    { return g.isReset }

type simpleCircuit struct {
	n  int
	ops []gate.Gate
}

func (c simpleCircuit) NQubits() int        { return c.n }
func (c simpleCircuit) Operations() []gate.Gate { return c.ops }

func g1(name gate.Name, q int) gate.Gate {
	return simpleGate{name: name, qubits: []int{q}}
}

func g2(name gate.Name, q1, q2 int) gate.Gate {
	return simpleGate{name: name, qubits: []int{q1, q2}}
}

func TestDecomposeNilCircuit(t *testing.T) {
	_, err := icm.Decompose(nil)
	require.ErrorIs(t, err, icm.ErrNilCircuit)
}

func TestDecomposeUnknownGateName(t *testing.T) {
	c := simpleCircuit{n: 1, ops: []gate.Gate{g1(gate.Name("BOGUS"), 0)}}
	_, err := icm.Decompose(c)
	require.ErrorIs(t, err, icm.ErrUnknownGateName)
}

func TestDecomposeDropsPaulis(t *testing.T) {
	req := require.New(t)
	c := simpleCircuit{n: 2, ops: []gate.Gate{g1(gate.X, 0), g1(gate.Z, 1), g1(gate.I, 0)}}

	res, err := icm.Decompose(c)
	req.NoError(err)
	req.Empty(res.Ops)
	req.Empty(res.Measurements)
	req.Equal(2, res.PhysicalQubits)
}

func TestDecomposeBellPair(t *testing.T) {
	req := require.New(t)
	c := simpleCircuit{n: 2, ops: []gate.Gate{g1(gate.H, 0), g2(gate.CNOT, 0, 1)}}

	res, err := icm.Decompose(c)
	req.NoError(err)
	req.Equal([]engine.Op{
		{Code: engine.OpH, Q1: 0},
		{Code: engine.OpCNOT, Q1: 0, Q2: 1},
	}, res.Ops)
	req.Empty(res.Measurements)
	req.Equal(2, res.PhysicalQubits)
}

func TestDecomposeTeleportsNonCliffordGate(t *testing.T) {
	req := require.New(t)
	c := simpleCircuit{n: 1, ops: []gate.Gate{g1(gate.T, 0)}}

	res, err := icm.Decompose(c)
	req.NoError(err)
	req.Equal([]engine.Op{{Code: engine.OpCNOT, Q1: 0, Q2: 1}}, res.Ops)
	req.Equal([]icm.Measurement{{Qubit: 0, Gate: gate.T}}, res.Measurements)
	req.Equal(1, res.QubitMap[0])
	req.Equal(2, res.PhysicalQubits)
}

func TestDecomposeResetThenH(t *testing.T) {
	req := require.New(t)
	resetGate := simpleGate{name: gate.ResetName, qubits: []int{0}, isReset: true}
	c := simpleCircuit{n: 1, ops: []gate.Gate{resetGate, g1(gate.H, 0)}}

	res, err := icm.Decompose(c)
	req.NoError(err)
	req.Equal([]engine.Op{{Code: engine.OpH, Q1: 1}}, res.Ops)
	req.Equal(1, res.QubitMap[0])
	req.Equal(2, res.PhysicalQubits)
}

func TestDecomposeMeasurementMarkersOffByDefault(t *testing.T) {
	req := require.New(t)
	c := simpleCircuit{n: 1, ops: []gate.Gate{g1(gate.T, 0)}}

	res, err := icm.Decompose(c)
	req.NoError(err)
	req.Equal(engine.OpCNOT, res.Ops[0].Code)
}

func TestDecomposeMeasurementMarkersFlagsTeleportCNOT(t *testing.T) {
	req := require.New(t)
	c := simpleCircuit{n: 1, ops: []gate.Gate{g1(gate.T, 0)}}

	res, err := icm.Decompose(c, icm.WithMeasurementMarkers())
	req.NoError(err)
	req.Equal(engine.OpCNOT|engine.MeasureOffset, res.Ops[0].Code)
	req.Equal(engine.OpCNOT, res.Ops[0].Code&^engine.MeasureOffset, "masking the flag recovers the plain op code")
}

func TestDecomposeBadQubitCount(t *testing.T) {
	c := simpleCircuit{n: 2, ops: []gate.Gate{g1(gate.CZ, 0)}}
	_, err := icm.Decompose(c)
	require.ErrorIs(t, err, icm.ErrBadQubitCount)
}

func TestDecomposeQubitOutOfRange(t *testing.T) {
	c := simpleCircuit{n: 1, ops: []gate.Gate{g1(gate.H, 5)}}
	_, err := icm.Decompose(c)
	require.ErrorIs(t, err, icm.ErrQubitOutOfRange)
}
