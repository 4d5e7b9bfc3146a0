package gate

// Gate is the opaque gate object this module consumes from the enclosing
// circuit representation. It exposes exactly the two observables the ICM
// decomposer needs: a name drawn from the Name vocabulary, and the 0-based
// qubit indices it acts on (one for single-qubit gates, two for CZ/CNOT).
//
// Implementations are supplied by the caller (the resource-estimation
// pipeline); this module never constructs a Gate itself.
type Gate interface {
	// Name reports the gate's entry in the fixed vocabulary (see Name
	// constants below). Decompose returns ErrUnknownGateName if it does
	// not match any of the 17 recognized names.
	Name() Name

	// Qubits returns the 0-based qubit indices the gate acts on: a
	// 1-element slice for single-qubit gates, 2 for CZ/CNOT. Any other
	// length is a caller bug and Decompose returns ErrBadQubitCount.
	Qubits() []int
}

// Resetter is an optional capability a Gate may implement to identify
// itself as a qubit reset directly, bypassing the fragile string-match
// fallback described in spec §9. Decompose checks for this interface
// first and only falls back to substring matching on fmt.Sprintf("%v", g)
// when a Gate does not implement it.
type Resetter interface {
	// IsReset reports whether this gate resets its qubit to |0>.
	IsReset() bool
}

// Circuit is the opaque circuit object this module consumes: an initial
// qubit count and an ordered stream of Gate operations.
type Circuit interface {
	// NQubits returns the number of qubits the circuit was written
	// against, before any ICM ancilla allocation.
	NQubits() int

	// Operations returns the circuit's gate stream in program order.
	Operations() []Gate
}
