package app

import (
	"io"
	"log/slog"

	"twosum/internal/domain"
	"twosum/internal/input"
	"twosum/internal/output"
	"twosum/internal/solver"
	"twosum/internal/store"
)

// Wire bundles the logger and components the CLI runs on.
type Wire struct {
	Logger  *slog.Logger
	Solver  *solver.Solver
	Reader  domain.CaseReader
	Writer  domain.ResultWriter
	Results domain.ResultStore // nil unless Config.Out is set
}

// NewWire constructs the dependency graph from cfg. Diagnostics go to logOut.
func NewWire(cfg Config, logOut io.Writer) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	format, _ := output.ParseFormat(cfg.Format)

	level := slog.LevelInfo
	if cfg.Trace {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))

	var opts []solver.Option
	if cfg.Trace {
		opts = append(opts, solver.WithTracer(solver.NewLogTracer(logger)))
	}

	w := &Wire{
		Logger: logger,
		Solver: solver.New(opts...),
		Reader: input.Reader{},
		Writer: output.NewWriter(format),
	}
	if cfg.Out != "" {
		w.Results = store.NewResultFileStore(cfg.Out)
	}
	return w, nil
}
