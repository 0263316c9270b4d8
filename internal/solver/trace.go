package solver

import (
	"context"
	"log/slog"
)

// Step is one iteration of the two-pointer scan. Low and High are cursor
// positions in the sorted index, not original indices. Sum is the plain int
// sum and wraps for values near the int limits; the scan itself compares
// exactly.
type Step struct {
	Low       int
	High      int
	LowValue  int
	HighValue int
	Sum       int
}

// Probe is one iteration of a binary search.
type Probe struct {
	Low  int
	High int
	Mid  int
	Key  int
}

// Tracer observes the solver's inner loops. Implementations must not retain
// or modify solver state.
type Tracer interface {
	Step(Step)
	Probe(Probe)
}

// LogTracer writes steps and probes to a slog.Logger at debug level.
type LogTracer struct {
	Logger *slog.Logger
}

// NewLogTracer returns a tracer logging to l.
func NewLogTracer(l *slog.Logger) *LogTracer {
	return &LogTracer{Logger: l}
}

// Step logs one two-pointer iteration.
func (t *LogTracer) Step(s Step) {
	t.Logger.LogAttrs(context.Background(), slog.LevelDebug, "two-pointer step",
		slog.Int("low", s.Low),
		slog.Int("high", s.High),
		slog.Int("low_value", s.LowValue),
		slog.Int("high_value", s.HighValue),
		slog.Int("sum", s.Sum),
	)
}

// Probe logs one binary search iteration.
func (t *LogTracer) Probe(p Probe) {
	t.Logger.LogAttrs(context.Background(), slog.LevelDebug, "binary search probe",
		slog.Int("low", p.Low),
		slog.Int("high", p.High),
		slog.Int("mid", p.Mid),
		slog.Int("key", p.Key),
	)
}
