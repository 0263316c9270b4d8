// Package app wires application dependencies for the CLI.
//
// It loads Config, builds the logger, solver, case reader, result writer and
// optional result store from it, exposing them via the Wire struct. App runs
// the solve loop over those dependencies.
package app
