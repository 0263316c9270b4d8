package store

import (
	"os"

	"twosum/internal/domain"
	"twosum/internal/output"
)

const resultFileMode os.FileMode = 0o644

// ResultFileStore keeps the results of the most recent run in a single JSON
// file, in the same shape the json output format prints.
type ResultFileStore struct {
	path string
}

var _ domain.ResultStore = (*ResultFileStore)(nil)

// NewResultFileStore returns a store writing to path.
func NewResultFileStore(path string) *ResultFileStore {
	return &ResultFileStore{path: path}
}

// Path returns the destination file.
func (s *ResultFileStore) Path() string { return s.path }

// SaveResults replaces the stored results.
func (s *ResultFileStore) SaveResults(results []domain.Result) error {
	return writeJSON(s.path, output.Records(results), resultFileMode)
}

// LoadRecords returns the stored records. ok is false when nothing has been
// saved yet.
func (s *ResultFileStore) LoadRecords() (recs []output.Record, ok bool, err error) {
	ok, err = readJSON(s.path, &recs)
	return recs, ok, err
}
