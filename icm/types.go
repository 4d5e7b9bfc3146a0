package icm

import (
	"github.com/katalvlaran/qgraphstate/engine"
	"github.com/katalvlaran/qgraphstate/gate"
)

// Measurement records one teleportation injection: Qubit is the physical index that was "live" for a logical
// qubit immediately before a non-Clifford gate was teleported in, and
// Gate names the originating vocabulary entry (for resource accounting;
// spec §4.4 does not require sampling a measurement outcome, only
// tracking that the teleportation happened).
type Measurement struct {
	Qubit int
	Gate  gate.Name
}

// Result is everything Decompose produces: a Clifford-only op stream
// ready for engine.Dispatch, the measurement side channel, the final
// logical-to-physical qubit map, and the total physical register size
// (the circuit's original qubit count plus every ancilla allocated along
// the way).
type Result struct {
	Ops            []engine.Op
	Measurements   []Measurement
	QubitMap       []int
	PhysicalQubits int
}

// config holds Decompose's optional behavior, set up via Option.
type config struct {
	measurementMarkers bool
}

// Option configures Decompose. The zero value of config is the default:
// no options change Decompose's existing, already-specified behavior.
type Option func(*config)

// WithMeasurementMarkers makes Decompose additionally flag, on the op
// stream itself, which op is the teleportation CNOT immediately
// preceding a measurement (engine.MeasureOffset, spec §4.4). Off by
// default: Result.Measurements already records the same information as
// a side channel, and most callers only need that.
func WithMeasurementMarkers() Option {
	return func(c *config) { c.measurementMarkers = true }
}
