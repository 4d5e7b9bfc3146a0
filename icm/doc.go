// Package icm implements ICM decomposition (spec §4.4): rewriting a
// circuit built from the gate package's 17-entry vocabulary into a
// Clifford-only, ancilla-teleportation normal form the engine package can
// execute. "ICM" names the resulting op classes: Initialization (fresh
// ancillas), Clifford-only two-qubit interaction (CZ/CNOT), and
// Measurement (teleportation helpers consumed out of the live register).
//
// Decompose never touches a store.Graph itself; it produces an
// engine.Op stream plus a side channel of Measurements and the final
// qubit_map, leaving execution to engine.Dispatch. This separation
// mirrors spec §9's observation that measurement markers must not be
// interleaved into the op stream the engine consumes.
package icm
