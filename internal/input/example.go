package input

import (
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"twosum/internal/domain"
)

// ErrNoExamples is returned when ParseExamples finds no "nums = [...]" input.
var ErrNoExamples = errors.New("no examples found")

var (
	exampleInputRe  = regexp.MustCompile(`nums\s*=\s*\[([^\]]*)\]\s*,?\s*target\s*=\s*(-?\d+)`)
	exampleOutputRe = regexp.MustCompile(`Output:\s*(?:</strong>)?\s*\[([^\]]*)\]`)
	intRe           = regexp.MustCompile(`-?\d+`)
)

// ParseExamples extracts problem-statement examples of the form
//
//	Input: nums = [2,7,11,15], target = 9
//	Output: [0,1]
//
// from r, in order. Each input is paired with the first "Output: [...]" that
// follows it before the next input. Surrounding text, including HTML markup
// around the labels, is ignored.
func ParseExamples(r io.Reader) ([]domain.Example, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading examples")
	}
	text := string(b)

	inputs := exampleInputRe.FindAllStringSubmatchIndex(text, -1)
	if len(inputs) == 0 {
		return nil, ErrNoExamples
	}

	examples := make([]domain.Example, 0, len(inputs))
	for n, loc := range inputs {
		nums, err := parseList(text[loc[2]:loc[3]])
		if err != nil {
			return nil, errors.Wrapf(err, "example %d: nums", n+1)
		}
		target, err := parseInt(text[loc[4]:loc[5]])
		if err != nil {
			return nil, errors.Wrapf(err, "example %d: target", n+1)
		}

		end := len(text)
		if n+1 < len(inputs) {
			end = inputs[n+1][0]
		}
		ex := domain.Example{Case: domain.Case{Nums: nums, Target: target}}
		if m := exampleOutputRe.FindStringSubmatch(text[loc[1]:end]); m != nil {
			for _, f := range intRe.FindAllString(m[1], -1) {
				v, err := strconv.Atoi(f)
				if err != nil {
					return nil, errors.Newf("example %d: invalid output index %q", n+1, f)
				}
				ex.Expected = append(ex.Expected, v)
			}
		}
		examples = append(examples, ex)
	}
	return examples, nil
}

// parseList parses a comma-separated list such as "2, 7,11".
func parseList(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return []int{}, nil
	}
	parts := strings.Split(s, ",")
	nums := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := parseInt(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		nums = append(nums, v)
	}
	return nums, nil
}

// FormatCases renders cases in the format ReadCases parses.
func FormatCases(cases []domain.Case) string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(len(cases)))
	sb.WriteByte('\n')
	for _, c := range cases {
		sb.WriteString(joinInts(c.Nums))
		sb.WriteByte('\n')
		sb.WriteString(strconv.Itoa(c.Target))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FormatExpected renders one line of space-separated indices per example.
func FormatExpected(examples []domain.Example) string {
	var sb strings.Builder
	for _, ex := range examples {
		sb.WriteString(joinInts(ex.Expected))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Cases returns the cases of examples.
func Cases(examples []domain.Example) []domain.Case {
	cases := make([]domain.Case, 0, len(examples))
	for _, ex := range examples {
		cases = append(cases, ex.Case)
	}
	return cases
}

func joinInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, v := range nums {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
