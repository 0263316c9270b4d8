// Package commands defines the twosum CLI.
//
// Commands
//
//   - twosum         Read test cases and print the index pair for each
//   - search <key>   Binary-search one sequence for key after sorting it
//   - check          Compare solved output with an expected-outputs file
//   - import         Convert "nums = [...], target = N" examples into files
//
// # Input
//
// The root command reads the case count, then for each case one line of
// whitespace-separated integers followed by the target. Every case with a
// pair prints "<high> <low>"; cases without one print nothing.
//
// # Implementation
//
// The root command loads the optional YAML config, applies explicitly set
// flags over it and builds the dependency graph (solver, reader, writer,
// result store) before any subcommand runs.
package commands
