package input

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"twosum/internal/domain"
)

// MaxLineBytes bounds a single input line.
const MaxLineBytes = 1 << 20

// maxPrealloc caps the capacity reserved from the declared case count, which
// is untrusted.
const maxPrealloc = 1024

// ErrMissingLine is returned when the input ends before a case is complete.
var ErrMissingLine = errors.New("unexpected end of input")

// Reader parses cases in the line-based format.
type Reader struct{}

var _ domain.CaseReader = Reader{}

// ReadCases parses every case from r.
func (Reader) ReadCases(r io.Reader) ([]domain.Case, error) {
	return ReadCases(r)
}

// ReadCases parses the case count followed by that many cases.
func ReadCases(r io.Reader) ([]domain.Case, error) {
	ls := newLineScanner(r)

	line, ok, err := ls.nextNonBlank()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.Wrap(ErrMissingLine, "reading case count")
	}
	n, err := parseSingle(line)
	if err != nil {
		return nil, errors.Wrapf(err, "line %d: case count", ls.lineNo)
	}
	if n < 0 {
		return nil, errors.Newf("line %d: negative case count %d", ls.lineNo, n)
	}

	cases := make([]domain.Case, 0, min(n, maxPrealloc))
	for c := 1; c <= n; c++ {
		tc, err := readCase(ls)
		if err != nil {
			return nil, errors.Wrapf(err, "case %d", c)
		}
		cases = append(cases, tc)
	}
	return cases, nil
}

// ReadSequence parses the first line of r as a sequence of integers. Empty
// input yields an empty sequence.
func ReadSequence(r io.Reader) ([]int, error) {
	ls := newLineScanner(r)
	line, ok, err := ls.next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return []int{}, nil
	}
	nums, err := ParseInts(line)
	if err != nil {
		return nil, errors.Wrapf(err, "line %d", ls.lineNo)
	}
	return nums, nil
}

func readCase(ls *lineScanner) (domain.Case, error) {
	line, ok, err := ls.next()
	if err != nil {
		return domain.Case{}, err
	}
	if !ok {
		return domain.Case{}, errors.Wrap(ErrMissingLine, "reading array")
	}
	nums, err := ParseInts(line)
	if err != nil {
		return domain.Case{}, errors.Wrapf(err, "line %d: array", ls.lineNo)
	}

	line, ok, err = ls.nextNonBlank()
	if err != nil {
		return domain.Case{}, err
	}
	if !ok {
		return domain.Case{}, errors.Wrap(ErrMissingLine, "reading target")
	}
	target, err := parseSingle(line)
	if err != nil {
		return domain.Case{}, errors.Wrapf(err, "line %d: target", ls.lineNo)
	}
	return domain.Case{Nums: nums, Target: target}, nil
}

// ParseInts splits line on whitespace and parses each field as an integer.
func ParseInts(line string) ([]int, error) {
	fields := strings.Fields(line)
	nums := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := parseInt(f)
		if err != nil {
			return nil, err
		}
		nums = append(nums, v)
	}
	return nums, nil
}

// parseInt accepts 32-bit integers only, so the sum of any two stays exact.
func parseInt(f string) (int, error) {
	v, err := strconv.ParseInt(f, 10, 32)
	if errors.Is(err, strconv.ErrRange) {
		return 0, errors.Newf("integer %q out of 32-bit range", f)
	}
	if err != nil {
		return 0, errors.Newf("invalid integer %q", f)
	}
	return int(v), nil
}

func parseSingle(line string) (int, error) {
	fields := strings.Fields(line)
	if len(fields) != 1 {
		return 0, errors.Newf("expected one integer, got %d fields", len(fields))
	}
	return parseInt(fields[0])
}

type lineScanner struct {
	sc     *bufio.Scanner
	lineNo int
}

func newLineScanner(r io.Reader) *lineScanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)
	return &lineScanner{sc: sc}
}

// next returns the following line; ok is false at end of input.
func (l *lineScanner) next() (line string, ok bool, err error) {
	if !l.sc.Scan() {
		if err := l.sc.Err(); err != nil {
			return "", false, errors.Wrapf(err, "line %d", l.lineNo+1)
		}
		return "", false, nil
	}
	l.lineNo++
	return l.sc.Text(), true, nil
}

func (l *lineScanner) nextNonBlank() (string, bool, error) {
	for {
		line, ok, err := l.next()
		if err != nil || !ok {
			return "", ok, err
		}
		if strings.TrimSpace(line) != "" {
			return line, true, nil
		}
	}
}
