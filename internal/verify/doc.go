// Package verify compares a run's text output with expected outputs.
//
// Both sides are trimmed of surrounding whitespace and split into lines;
// CRLF line endings are treated as LF. In ModeExact every line must match
// byte for byte. In ModeUnordered each line is compared as a multiset of
// whitespace-separated fields, so "1 0" matches "0 1". Published expected
// outputs usually list the lower index first, while this tool prints the
// high-cursor index first.
package verify
