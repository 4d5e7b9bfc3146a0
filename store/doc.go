// Package store holds the graph-state engine's mutable state: one LCO
// code and one neighbor set per vertex. It provides the thin, O(1)
// adjacency primitives the engine composes into cz, removeLCO and
// localComplement (spec §4.2); it has no knowledge of Cliffords, CZ, or
// gate dispatch.
//
// Vertices are addressed 0-based throughout (spec §9's recommended
// cleaner alternative to the original's 1-based-with-0-sentinel scheme).
// Graph is not safe for concurrent use; the simulation is strictly
// single-threaded (spec §5), so no locking is needed here, unlike
// lvlath/core's RWMutex-guarded Graph.
package store
