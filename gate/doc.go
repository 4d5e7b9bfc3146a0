// Package gate defines the external contract this module consumes: an
// opaque gate object (name + qubit indices) and an opaque circuit (qubit
// count + operations), plus the fixed 17-entry gate-name vocabulary that
// the ICM decomposer classifies against.
//
// Nothing in this package performs graph or Clifford algebra; it is a
// thin, dependency-free boundary layer, the same role core/api.go plays
// for lvlath/core: constructors and lookups, no hidden state.
package gate
