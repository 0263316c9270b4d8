package solver

import (
	"cmp"
	"math"
	"slices"

	"twosum/internal/domain"
)

// Solver runs the two-pointer scan. The zero value is ready to use.
type Solver struct {
	tracer Tracer
}

// Option configures a Solver.
type Option func(*Solver)

// WithTracer reports every cursor step and search probe to t.
func WithTracer(t Tracer) Option {
	return func(s *Solver) { s.tracer = t }
}

// New returns a Solver configured with opts.
func New(opts ...Option) *Solver {
	s := &Solver{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ domain.Solver = (*Solver)(nil)

// Solve returns two original indices of nums whose values sum to target.
// ok is false when no such pair exists, including when len(nums) < 2.
func (s *Solver) Solve(nums []int, target int) (pair domain.Pair, ok bool) {
	aux := Sorted(nums)
	i, j := 0, len(aux)-1
	for i < j {
		lo, hi := aux[i].Value, aux[j].Value
		if s.tracer != nil {
			s.tracer.Step(Step{Low: i, High: j, LowValue: lo, HighValue: hi, Sum: lo + hi})
		}
		switch c := compareSum(lo, hi, target); {
		case c == 0:
			return domain.Pair{High: aux[j].Index, Low: aux[i].Index}, true
		case c < 0:
			i++
		default:
			j--
		}
	}
	return domain.Pair{}, false
}

// Solve is shorthand for a zero Solver's Solve.
func Solve(nums []int, target int) (domain.Pair, bool) {
	var s Solver
	return s.Solve(nums, target)
}

// Sorted pairs each element of nums with its index and sorts the result by
// value, breaking ties by index.
func Sorted(nums []int) []domain.IndexedValue {
	aux := make([]domain.IndexedValue, len(nums))
	for i, v := range nums {
		aux[i] = domain.IndexedValue{Value: v, Index: i}
	}
	slices.SortFunc(aux, compareIndexed)
	return aux
}

// compareSum compares a+b with target without overflowing int.
func compareSum(a, b, target int) int {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 1
	case b < 0 && a < math.MinInt-b:
		return -1
	}
	return cmp.Compare(a+b, target)
}

func compareIndexed(a, b domain.IndexedValue) int {
	return cmp.Or(cmp.Compare(a.Value, b.Value), cmp.Compare(a.Index, b.Index))
}
