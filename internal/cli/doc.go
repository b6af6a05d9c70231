// Package cli parses command line arguments and orchestrates one
// introspection run: load packages, select the requested types, and render
// the per-type reports.
//
// Key types:
//   - Config: parsed flags and positional package patterns
//   - Runner: load -> select -> report pipeline writing to an io.Writer
package cli
