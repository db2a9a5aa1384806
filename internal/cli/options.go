package cli

import (
	"io"
)

// DefaultTree is walked when no source is given.
const DefaultTree = "car"

// TreeSource selects where a tree comes from. At most one field may be set.
type TreeSource struct {
	// Name of a built-in tree (see catalog.Names).
	Name string
	// File is a YAML tree document, or HCL when it ends in .hcl.
	File string
	// Dir is a directory of Markdown node documents.
	Dir string
}

// RunOptions contains all the configuration for the Run command.
type RunOptions struct {
	Source      TreeSource
	Headless    bool
	JSON        bool
	Debug       bool
	NoBanner    bool
	MetricsFile string

	// Stdin and Stdout default to the process streams.
	Stdin  io.Reader
	Stdout io.Writer
}

// quiet reports whether system messages are suppressed.
func (o RunOptions) quiet() bool {
	return o.JSON || o.Headless
}
