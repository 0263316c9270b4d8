// Package output renders solved cases.
//
// The text format prints "<high> <low>" on its own line for every case with a
// pair and nothing for cases without one. The json format prints every case,
// found or not.
package output
