// Package settings provides build metadata and per-run configuration
// shared across the gridx CLI and library packages.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "gridx"

// VersionInformation is populated at build time via ldflags and holds the
// commit hash, semantic version, and build timestamp of the running binary.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-nightly",
	BuildTime:    "unknown",
}

// VersionInfo holds metadata about the build.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// Run holds configuration for a single execution: logging, the data
// source, and output behavior.
type Run struct {
	MinLogLevel int8
	DataPath    string // file to load rows from; "-" reads stdin
	IsQuiet     bool
	NoColor     bool
	Interactive bool // full TUI instead of a one-shot snapshot
	ExitOnError bool
}

// NewCliParams returns the default per-run parameters for CLI usage.
func NewCliParams() *Run {
	return &Run{
		MinLogLevel: 0,
		IsQuiet:     false,
		NoColor:     false,
		Interactive: true,
		ExitOnError: true,
	}
}
