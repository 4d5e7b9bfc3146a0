// Package lco implements the Local Clifford Operation algebra: the
// 6-element quotient of the single-qubit Clifford group modulo the Pauli
// group (24/4, isomorphic to S3), packed into an 8-slot byte domain, plus
// the two CZ transition tables the graph-state engine consults on every
// commit.
//
// All four multiply operations (MultiplyH, MultiplyS, MultiplyBySqrtX,
// MultiplyByS) and both transition tables (CZIsolated,
// CZConnected) are total, pure, constant-time, and branch-free:
// plain lookups into pre-tabulated arrays, committed here as data, never
// re-derived at runtime (spec §9).
//
// See DESIGN.md for the group-theoretic derivation of the tables and the
// Open Question resolution on the code domain's width (6 real codes in
// an 8-slot packed field).
package lco
