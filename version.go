package strata

import _ "embed"

// Version is the library version, embedded from version.txt so the CLI
// and release tooling read the same source of truth.
//
//go:embed version.txt
var Version string
