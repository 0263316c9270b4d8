// Package solver implements the two-sum search over a sorted index.
//
// Solve pairs every value with its original index, sorts the pairs by value
// and walks them with two cursors from both ends:
//
//   - sum equal to the target: the pair is returned, high-cursor index first
//   - sum below the target: the low cursor moves up
//   - sum above the target: the high cursor moves down
//
// The scan stops when the cursors meet, so a returned pair always names two
// distinct positions of the caller's slice. Running time is O(n log n),
// dominated by the sort; the input slice is never modified.
//
// # Ties
//
// Equal values are ordered by original index ascending. This keeps results
// deterministic, but callers should not treat the choice between duplicate
// values as part of the contract.
//
// Search and SearchFrom are binary searches over the same sorted index and are
// independent of Solve.
package solver
