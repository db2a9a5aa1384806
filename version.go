package crossroads

import _ "embed"

// Version is the release of the library and the crossroads binary.
//
//go:embed VERSION
var Version string
