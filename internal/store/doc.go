// Package store provides file-based persistence for run results.
//
// Results are serialised as a JSON array and written atomically: a temp file
// in the destination directory is written, chmod-ed and renamed over the
// target, so readers never observe a partial file.
package store
