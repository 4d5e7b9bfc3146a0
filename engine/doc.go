// Package engine implements the graph-state update rules: cz (committing
// a controlled-Z onto the live adjacency), removeLCO and localComplement
// (the Anders-Briegel reduction machinery that keeps vertex dressings
// reconciled with the graph's edges), and Dispatch, the driver that
// consumes a stream of already-ICM-decomposed ops and threads them
// through a store.Graph (spec §4.3).
//
// Key features:
//   - CZ(g, u, v): commit a controlled-Z, adding or removing the u-v edge
//   - Dispatch(g, ops): drive a full op stream through the engine
//   - local complementation is internal: callers never see it directly
//
// Complexity:
//
//   - Time: O(deg(v)^2) worst case per removeLCO call (local
//     complementation toggles all pairs among a vertex's neighbors);
//     O(1) amortized for H/S single-qubit updates.
//   - Memory: O(V) for the underlying store.Graph; no extra allocation
//     per dispatched op beyond a neighbor-set snapshot during
//     localComplement.
//
// Errors:
//
//   - ErrUnknownOpCode if Dispatch encounters a code Dispatch's switch
//     does not recognize (spec §4.3.5's "fatal error" clause).
package engine
