package icm

import "errors"

var (
	// ErrNilCircuit is returned when Decompose is given a nil gate.Circuit.
	ErrNilCircuit = errors.New("icm: circuit is nil")

	// ErrUnknownGateName is returned when a gate's Name() is not one of
	// the 17 entries the gate package's vocabulary recognizes.
	ErrUnknownGateName = errors.New("icm: unknown gate name")

	// ErrBadQubitCount is returned when a gate's Qubits() length does not
	// match what its Class requires (1 for single-qubit classes, 2 for
	// two-qubit Clifford gates).
	ErrBadQubitCount = errors.New("icm: wrong qubit count for gate")

	// ErrQubitOutOfRange is returned when a gate names a logical qubit
	// index outside [0, circuit.NQubits()).
	ErrQubitOutOfRange = errors.New("icm: qubit index out of range")
)
