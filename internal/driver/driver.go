// Package driver wires the phases together: tokenize, parse, evaluate,
// run calculation sheets. The kernel packages stay pure; all I/O, deadlines
// and symbol-table mutation happen here.
package driver

import (
	"time"

	"recalc/internal/units"
)

// Options tune a pipeline run.
type Options struct {
	// MaxDiagnostics — ёмкость сумки диагностик на выражение.
	MaxDiagnostics int
	// Deadline bounds one expression evaluation; 0 disables the watchdog.
	Deadline time.Duration
	// Jobs caps RunDir parallelism; 0 means GOMAXPROCS.
	Jobs int
	// NewSystem builds the unit system for one isolated document.
	// Defaults to a fresh units.NewTable per document.
	NewSystem func() (units.System, error)
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return 64
	}
	return o.MaxDiagnostics
}

func (o Options) newSystem() (units.System, error) {
	if o.NewSystem == nil {
		return units.NewTable(), nil
	}
	return o.NewSystem()
}
