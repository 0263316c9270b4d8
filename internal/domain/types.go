package domain

// IndexedValue pairs a value with its position in the caller's original,
// unsorted sequence.
type IndexedValue struct {
	Value int
	Index int
}

// Pair holds two distinct original indices whose values sum to a target.
//
// High is the index found under the high cursor of the two-pointer scan and
// Low the index under the low cursor. Pairs are rendered High first.
type Pair struct {
	High int
	Low  int
}

// Indices returns the pair in rendering order.
func (p Pair) Indices() [2]int { return [2]int{p.High, p.Low} }

// Case is one parsed test case.
type Case struct {
	Nums   []int
	Target int
}

// Result is the outcome of solving a single case. Case is 1-based.
type Result struct {
	Case   int
	Target int
	Pair   Pair
	Found  bool
}

// Example is a case together with the output it is expected to produce, as
// published with a problem statement. Expected is empty when the example
// gives no output.
type Example struct {
	Case     Case
	Expected []int
}
