package verify

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrMismatch is returned by Report.Err when outputs differ.
var ErrMismatch = errors.New("outputs do not match")

// Mode selects how lines are compared.
type Mode int

const (
	// ModeExact requires identical lines.
	ModeExact Mode = iota
	// ModeUnordered ignores field order and spacing within a line.
	ModeUnordered
)

// Mismatch is one differing line. Line is 1-based; a missing line is empty.
type Mismatch struct {
	Line     int
	Expected string
	Actual   string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("line %d: expected %q, got %q", m.Line, m.Expected, m.Actual)
}

// Report is the result of Compare.
type Report struct {
	Mismatches []Mismatch
}

// Match reports whether the outputs were equal.
func (r Report) Match() bool { return len(r.Mismatches) == 0 }

// Err returns nil on a match and an ErrMismatch naming the first differing
// line otherwise.
func (r Report) Err() error {
	if r.Match() {
		return nil
	}
	return errors.Wrapf(ErrMismatch, "%d line(s) differ, first at %s", len(r.Mismatches), r.Mismatches[0])
}

// Compare checks actual against expected.
func Compare(expected, actual string, mode Mode) Report {
	want, got := splitLines(expected), splitLines(actual)

	var r Report
	for i := 0; i < max(len(want), len(got)); i++ {
		var w, g string
		if i < len(want) {
			w = want[i]
		}
		if i < len(got) {
			g = got[i]
		}
		if !lineEqual(w, g, mode) || (i >= len(want)) != (i >= len(got)) {
			r.Mismatches = append(r.Mismatches, Mismatch{Line: i + 1, Expected: w, Actual: g})
		}
	}
	return r
}

func splitLines(s string) []string {
	s = strings.TrimSpace(strings.ReplaceAll(s, "\r\n", "\n"))
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func lineEqual(a, b string, mode Mode) bool {
	if mode != ModeUnordered {
		return a == b
	}
	fa, fb := strings.Fields(a), strings.Fields(b)
	slices.Sort(fa)
	slices.Sort(fb)
	return slices.Equal(fa, fb)
}
