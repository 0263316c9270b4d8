package domain

import "io"

// Solver finds two indices whose values sum to target. ok is false when no
// such pair exists; that is a normal outcome, not an error.
type Solver interface {
	Solve(nums []int, target int) (pair Pair, ok bool)
}

// CaseReader parses test cases from an input stream.
type CaseReader interface {
	ReadCases(r io.Reader) ([]Case, error)
}

// ResultWriter renders solved cases to an output stream.
type ResultWriter interface {
	WriteResults(w io.Writer, results []Result) error
}

// ResultStore persists the results of a run.
type ResultStore interface {
	SaveResults(results []Result) error
}
