// Package input parses the line-based test case format.
//
//	t                  number of cases
//	a0 a1 ... an-1     array for case 1 (a blank line is an empty array)
//	target             target for case 1
//	...
//
// The array is always the line immediately following the previous case (or
// the count). Blank lines before a target are skipped.
package input
