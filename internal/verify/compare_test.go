package verify_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twosum/internal/verify"
)

func TestCompare_Exact(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expected string
		actual   string
		want     bool
	}{
		{"equal", "1 0\n2 1\n", "1 0\n2 1\n", true},
		{"surrounding whitespace", "\n1 0\n2 1", "1 0\n2 1\n\n", true},
		{"crlf", "1 0\r\n2 1\r\n", "1 0\n2 1\n", true},
		{"both empty", "", "\n", true},
		{"order within line", "0 1\n", "1 0\n", false},
		{"missing line", "1 0\n2 1\n", "1 0\n", false},
		{"extra line", "1 0\n", "1 0\n2 1\n", false},
		{"inner spacing", "1  0\n", "1 0\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := verify.Compare(tt.expected, tt.actual, verify.ModeExact)
			assert.Equal(t, tt.want, r.Match(), "mismatches: %v", r.Mismatches)
		})
	}
}

func TestCompare_Unordered(t *testing.T) {
	t.Parallel()

	assert.True(t, verify.Compare("0 1\n1 2\n", "1 0\n2 1\n", verify.ModeUnordered).Match())
	assert.True(t, verify.Compare("1  0\n", "0 1\n", verify.ModeUnordered).Match())
	assert.False(t, verify.Compare("0 1\n", "0 2\n", verify.ModeUnordered).Match())
}

func TestCompare_InteriorBlankLine(t *testing.T) {
	t.Parallel()

	r := verify.Compare("0 1\n\n1 2\n", "0 1\n1 2\n", verify.ModeUnordered)
	require.False(t, r.Match())
	assert.Equal(t, verify.Mismatch{Line: 2, Expected: "", Actual: "1 2"}, r.Mismatches[0])
}

func TestCompare_ReportsLines(t *testing.T) {
	t.Parallel()

	r := verify.Compare("1 0\n2 1\n", "1 0\n3 1\n4 0\n", verify.ModeExact)
	require.False(t, r.Match())
	assert.Equal(t, []verify.Mismatch{
		{Line: 2, Expected: "2 1", Actual: "3 1"},
		{Line: 3, Expected: "", Actual: "4 0"},
	}, r.Mismatches)

	err := r.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, verify.ErrMismatch))
	assert.Contains(t, err.Error(), `line 2: expected "2 1", got "3 1"`)
}

func TestReport_ErrNilOnMatch(t *testing.T) {
	t.Parallel()

	assert.NoError(t, verify.Compare("1 0", "1 0", verify.ModeExact).Err())
}
