// Package graphstate simulates stabilizer quantum circuits by tracking a
// graph state: an adjacency list plus one Local Clifford Operation code
// per vertex, updated in place as ICM-decomposed gates stream through.
//
// What is qgraphstate?
//
//	A small, dependency-light library built around two phases:
//
//	  • ICM decomposition (icm): rewrite a circuit's gate stream into
//	    Clifford-only operations plus ancilla-teleportation injections for
//	    every non-Clifford gate.
//	  • Graph-state evolution (engine, lco, store): replay that stream
//	    against a live graph, using local complementation to keep each
//	    vertex's dressing reconciled with the current edges.
//
// The representation tracks the circuit's state up to a global phase and
// Pauli equivalence (no amplitudes, no measurement-outcome sampling).
//
// Everything is organized under five subpackages plus this root façade:
//
//	gate/   — the 17-entry gate vocabulary a Circuit is built from
//	lco/    — the Local Clifford Operation algebra and CZ transition tables
//	store/  — the mutable (adjacency, LCO-vector) pair
//	engine/ — cz/removeLCO/localComplement and the op-stream dispatcher
//	icm/    — decomposing a gate.Circuit into the engine's op stream
//
//	go get github.com/katalvlaran/qgraphstate
package graphstate
