package solver

import "twosum/internal/domain"

// Search returns a position p in sorted with sorted[p].Value == key.
// sorted must be ascending by value, as returned by Sorted.
func Search(sorted []domain.IndexedValue, key int) (int, bool) {
	var s Solver
	return s.SearchFrom(sorted, 0, key)
}

// Search is Search with the solver's tracer attached.
func (s *Solver) Search(sorted []domain.IndexedValue, key int) (int, bool) {
	return s.SearchFrom(sorted, 0, key)
}

// SearchFrom is Search restricted to sorted[low:]. The returned position is
// relative to sorted, not to the sub-slice. A low outside [0, len(sorted)]
// finds nothing.
func (s *Solver) SearchFrom(sorted []domain.IndexedValue, low, key int) (int, bool) {
	if low < 0 || low > len(sorted) {
		return -1, false
	}
	high := len(sorted) - 1
	for low <= high {
		mid := low + (high-low)/2
		if s.tracer != nil {
			s.tracer.Probe(Probe{Low: low, High: high, Mid: mid, Key: key})
		}
		switch v := sorted[mid].Value; {
		case v == key:
			return mid, true
		case v < key:
			low = mid + 1
		default:
			high = mid - 1
		}
	}
	return -1, false
}
