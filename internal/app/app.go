package app

import (
	"bytes"
	"io"
	"log/slog"

	"github.com/cockroachdb/errors"

	"twosum/internal/domain"
	"twosum/internal/output"
	"twosum/internal/verify"
)

// App runs the read, solve, write loop.
type App struct {
	Logger  *slog.Logger
	Solver  domain.Solver
	Reader  domain.CaseReader
	Writer  domain.ResultWriter
	Results domain.ResultStore
}

// New builds an App from w.
func New(w *Wire) *App {
	return &App{
		Logger:  w.Logger,
		Solver:  w.Solver,
		Reader:  w.Reader,
		Writer:  w.Writer,
		Results: w.Results,
	}
}

// Solve runs the solver over every case. Result.Case is 1-based.
func (a *App) Solve(cases []domain.Case) []domain.Result {
	results := make([]domain.Result, 0, len(cases))
	for i, c := range cases {
		pair, ok := a.Solver.Solve(c.Nums, c.Target)
		results = append(results, domain.Result{Case: i + 1, Target: c.Target, Pair: pair, Found: ok})
	}
	return results
}

// Run reads cases from in, solves them, writes them to out and saves them to
// the result store when one is configured.
func (a *App) Run(in io.Reader, out io.Writer) ([]domain.Result, error) {
	cases, err := a.Reader.ReadCases(in)
	if err != nil {
		return nil, errors.Wrap(err, "reading cases")
	}
	results := a.Solve(cases)

	found := 0
	for _, r := range results {
		if r.Found {
			found++
		}
	}
	a.Logger.Debug("solved cases", "cases", len(results), "found", found)

	if err := a.Writer.WriteResults(out, results); err != nil {
		return results, err
	}
	if a.Results != nil {
		if err := a.Results.SaveResults(results); err != nil {
			return results, errors.Wrap(err, "saving results")
		}
	}
	return results, nil
}

// Check solves the cases read from in, renders them in the text format and
// compares that with expected. actual is the rendered output.
func (a *App) Check(in io.Reader, expected string, mode verify.Mode) (report verify.Report, actual string, err error) {
	cases, err := a.Reader.ReadCases(in)
	if err != nil {
		return verify.Report{}, "", errors.Wrap(err, "reading cases")
	}

	var buf bytes.Buffer
	if err := output.NewWriter(output.FormatText).WriteResults(&buf, a.Solve(cases)); err != nil {
		return verify.Report{}, "", err
	}
	actual = buf.String()

	report = verify.Compare(expected, actual, mode)
	a.Logger.Debug("checked outputs", "cases", len(cases), "mismatches", len(report.Mismatches))
	return report, actual, nil
}
