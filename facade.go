package graphstate

import (
	"fmt"

	"github.com/katalvlaran/qgraphstate/engine"
	"github.com/katalvlaran/qgraphstate/gate"
	"github.com/katalvlaran/qgraphstate/icm"
	"github.com/katalvlaran/qgraphstate/lco"
	"github.com/katalvlaran/qgraphstate/store"
)

// Run decomposes c via icm.Decompose, then replays the resulting op
// stream against a fresh graph state one op at a time, reporting
// progress through opts' ProgressFn (if any) every config.every ops.
//
// Every fresh physical qubit starts dressed with lco.H, representing
// |+⟩ = H|0⟩ (spec §4.3.5's initial-state clause).
func Run(c gate.Circuit, opts ...Option) (*Result, error) {
	cfg := newConfig(opts...)

	decomposed, err := icm.Decompose(c)
	if err != nil {
		return nil, fmt.Errorf("graphstate: decompose: %w", err)
	}

	g := store.New(decomposed.PhysicalQubits, lco.H)
	total := len(decomposed.Ops)
	for i, op := range decomposed.Ops {
		if err := engine.Dispatch(g, []engine.Op{op}); err != nil {
			return nil, fmt.Errorf("graphstate: run: %w", err)
		}
		if cfg.onProgress != nil && ((i+1)%cfg.every == 0 || i+1 == total) {
			cfg.onProgress(Stats{OpsDone: i + 1, OpsTotal: total, PhysicalQubits: g.NQubits()})
		}
	}

	return &Result{
		graph:        g,
		QubitMap:     decomposed.QubitMap,
		Measurements: decomposed.Measurements,
	}, nil
}
