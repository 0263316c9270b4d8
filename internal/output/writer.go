package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"

	"twosum/internal/domain"
)

// Format selects how results are rendered.
type Format string

const (
	// FormatText prints "<high> <low>" per found case.
	FormatText Format = "text"
	// FormatJSON prints every case as an indented JSON array.
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned for formats other than text and json.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat maps a user-supplied name to a Format. The empty string selects
// FormatText.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", errors.Wrapf(ErrUnknownFormat, "%q (want text or json)", s)
}

// Record is the JSON shape of a Result.
type Record struct {
	Case    int   `json:"case"`
	Target  int   `json:"target"`
	Found   bool  `json:"found"`
	Indices []int `json:"indices,omitempty"`
}

// NewRecord converts r to its JSON shape.
func NewRecord(r domain.Result) Record {
	rec := Record{Case: r.Case, Target: r.Target, Found: r.Found}
	if r.Found {
		rec.Indices = []int{r.Pair.High, r.Pair.Low}
	}
	return rec
}

// Records converts results to their JSON shape. It never returns nil so an
// empty run encodes as [].
func Records(results []domain.Result) []Record {
	recs := make([]Record, 0, len(results))
	for _, r := range results {
		recs = append(recs, NewRecord(r))
	}
	return recs
}

// Writer renders results in a fixed format.
type Writer struct {
	Format Format
}

var _ domain.ResultWriter = Writer{}

// NewWriter returns a Writer for f.
func NewWriter(f Format) Writer {
	return Writer{Format: f}
}

// WriteResults renders results to w.
func (wr Writer) WriteResults(w io.Writer, results []domain.Result) error {
	switch wr.Format {
	case "", FormatText:
		return writeText(w, results)
	case FormatJSON:
		return writeJSON(w, results)
	}
	return errors.Wrapf(ErrUnknownFormat, "%q", string(wr.Format))
}

func writeText(w io.Writer, results []domain.Result) error {
	for _, r := range results {
		if !r.Found {
			continue
		}
		if _, err := fmt.Fprintf(w, "%d %d\n", r.Pair.High, r.Pair.Low); err != nil {
			return errors.Wrapf(err, "writing case %d", r.Case)
		}
	}
	return nil
}

func writeJSON(w io.Writer, results []domain.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Records(results)); err != nil {
		return errors.Wrap(err, "encoding results")
	}
	return nil
}
