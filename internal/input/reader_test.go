package input_test

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twosum/internal/domain"
	"twosum/internal/input"
)

func TestReadCases_OK(t *testing.T) {
	t.Parallel()

	in := "3\n2 7 11 15\n9\n3 2 4\n6\n3 3\n6\n"
	got, err := input.ReadCases(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []domain.Case{
		{Nums: []int{2, 7, 11, 15}, Target: 9},
		{Nums: []int{3, 2, 4}, Target: 6},
		{Nums: []int{3, 3}, Target: 6},
	}, got)
}

func TestReadCases_Whitespace(t *testing.T) {
	t.Parallel()

	// CRLF endings, tabs, a blank line before the target and no final newline.
	in := "\n 1 \r\n\t-4  5\t\r\n\r\n1"
	got, err := input.ReadCases(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []domain.Case{{Nums: []int{-4, 5}, Target: 1}}, got)
}

func TestReadCases_EmptyArrayLine(t *testing.T) {
	t.Parallel()

	got, err := input.ReadCases(strings.NewReader("1\n\n7\n"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Empty(t, got[0].Nums)
	assert.Equal(t, 7, got[0].Target)
}

func TestReadCases_ZeroCases(t *testing.T) {
	t.Parallel()

	got, err := input.ReadCases(strings.NewReader("0\n"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadCases_MissingLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
	}{
		{"empty input", ""},
		{"no array", "1\n"},
		{"no target", "1\n1 2\n"},
		{"second case truncated", "2\n1 2\n3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := input.ReadCases(strings.NewReader(tt.in))
			require.Error(t, err)
			assert.True(t, errors.Is(err, input.ErrMissingLine), "got %v", err)
		})
	}
}

func TestReadCases_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		wantMsg string
	}{
		{"bad count", "x\n", "line 1: case count"},
		{"negative count", "-1\n", "negative case count"},
		{"bad element", "1\n1 two 3\n4\n", "case 1: line 2: array"},
		{"bad target", "1\n1 2\nthree\n", "case 1: line 3: target"},
		{"two targets", "1\n1 2\n3 4\n", "expected one integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := input.ReadCases(strings.NewReader(tt.in))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.False(t, errors.Is(err, input.ErrMissingLine))
		})
	}
}

func TestReadCases_HugeCountDoesNotPreallocate(t *testing.T) {
	t.Parallel()

	_, err := input.ReadCases(strings.NewReader("2147483647\n1 2\n3\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, input.ErrMissingLine), "got %v", err)
	assert.Contains(t, err.Error(), "case 2")

	_, err = input.ReadCases(strings.NewReader("9223372036854775807\n1 2\n3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of 32-bit range")
}

func TestReadCases_RejectsValuesBeyond32Bits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
	}{
		{"element above", "1\n1 2147483648\n3\n"},
		{"element below", "1\n-2147483649 2\n3\n"},
		{"target", "1\n1 2\n9223372036854775807\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := input.ReadCases(strings.NewReader(tt.in))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "out of 32-bit range")
		})
	}

	got, err := input.ReadCases(strings.NewReader("1\n2147483647 -2147483648\n-1\n"))
	require.NoError(t, err)
	assert.Equal(t, []domain.Case{{Nums: []int{2147483647, -2147483648}, Target: -1}}, got)
}

func TestReader_ImplementsCaseReader(t *testing.T) {
	t.Parallel()

	var r domain.CaseReader = input.Reader{}
	got, err := r.ReadCases(strings.NewReader("1\n5\n5\n"))
	require.NoError(t, err)
	assert.Equal(t, []domain.Case{{Nums: []int{5}, Target: 5}}, got)
}

func TestReadSequence(t *testing.T) {
	t.Parallel()

	got, err := input.ReadSequence(strings.NewReader("4 -2 9\nignored\n"))
	require.NoError(t, err)
	assert.Equal(t, []int{4, -2, 9}, got)

	got, err = input.ReadSequence(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = input.ReadSequence(strings.NewReader("1 x"))
	require.Error(t, err)
	assert.Nil(t, got)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestReadSequence_ScannerErrorReturnsNil(t *testing.T) {
	t.Parallel()

	got, err := input.ReadSequence(failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
	assert.Nil(t, got)
}

func TestParseInts(t *testing.T) {
	t.Parallel()

	got, err := input.ParseInts("  10 -3\t0 ")
	require.NoError(t, err)
	assert.Equal(t, []int{10, -3, 0}, got)

	_, err = input.ParseInts("1 2.5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"2.5"`)
}
