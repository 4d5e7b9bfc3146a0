package gate

// Name is a gate identifier drawn from the fixed 17-entry vocabulary
// (spec §6). It is a defined string type so callers' Gate.Name()
// implementations read naturally, while Decompose still validates against
// the closed vocabulary table below.
type Name string

// The 17-entry gate-name vocabulary, indexed 1-17 as spec §6 lists them.
// Order matters only for readability here; classification is by name, not
// by position, via the vocabulary table below.
const (
	I         Name = "I"
	X         Name = "X"
	Y         Name = "Y"
	Z         Name = "Z"
	H         Name = "H"
	S         Name = "S"
	SDagger   Name = "S_Dagger"
	CZ        Name = "CZ"
	CNOT      Name = "CNOT"
	T         Name = "T"
	TDagger   Name = "T_Dagger"
	RX        Name = "RX"
	RY        Name = "RY"
	RZ        Name = "RZ"
	SX        Name = "SX"
	SXDagger  Name = "SX_Dagger"
	ResetName Name = "RESET"
)

// Class classifies a vocabulary entry for ICM decomposition (spec §4.4).
type Class uint8

const (
	// ClassPauli gates (I, X, Y, Z) are dropped: no-ops on the graph.
	ClassPauli Class = iota
	// ClassSingleClifford gates (H, S, S_Dagger) are emitted directly,
	// one qubit operand.
	ClassSingleClifford
	// ClassTwoQubitClifford gates (CZ, CNOT) are emitted directly, two
	// qubit operands.
	ClassTwoQubitClifford
	// ClassTeleported gates (T, T_Dagger, RX, RY, RZ, SX, SX_Dagger) are
	// non-Clifford (or, for SX/SX_Dagger, treated uniformly as such per
	// spec §4.4) and realized via ancilla teleportation injection.
	ClassTeleported
	// ClassReset is the RESET pseudo-gate: no ICMOp is emitted, only a
	// fresh ancilla allocation and a qubit_map remap.
	ClassReset
)

// vocabulary maps each of the 17 names to its Class. Decompose looks up
// a Gate's Name here; a miss is ErrUnknownGateName.
var vocabulary = map[Name]Class{
	I: ClassPauli, X: ClassPauli, Y: ClassPauli, Z: ClassPauli,

	H: ClassSingleClifford, S: ClassSingleClifford, SDagger: ClassSingleClifford,

	CZ: ClassTwoQubitClifford, CNOT: ClassTwoQubitClifford,

	T: ClassTeleported, TDagger: ClassTeleported,
	RX: ClassTeleported, RY: ClassTeleported, RZ: ClassTeleported,
	SX: ClassTeleported, SXDagger: ClassTeleported,

	ResetName: ClassReset,
}

// Classify looks up n's Class. ok is false if n is not one of the 17
// recognized vocabulary entries.
func Classify(n Name) (Class, bool) {
	c, ok := vocabulary[n]
	return c, ok
}
