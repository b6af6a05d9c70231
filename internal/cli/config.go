package cli

import "type-introspector/options"

// Config stores CLI options for a single introspection run.
type Config struct {
	Patterns []string // package patterns to load
	Types    []string // requested type names; empty selects every loaded type

	Sections options.SectionEnum

	LogFile  string
	LogLevel string

	ShowVersion bool
}
