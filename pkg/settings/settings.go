// Package settings provides build metadata and the per-run options shared
// by the combo CLI and its packages.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "combo"

// VersionInformation is populated at build time via ldflags and holds the
// commit hash, semantic version, and build timestamp of the running binary.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-dev",
	BuildTime:    "unknown",
}

// VersionInfo holds metadata about the build
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// Run holds the settings of a single execution
type Run struct {
	MinLogLevel int8   // zap level; -1 enables V(1) logs
	LogFile     string // empty discards logs
	Mouse       bool
	KeepOpen    bool
}

// NewCliParams returns the defaults used before flags are applied
func NewCliParams() *Run {
	return &Run{
		MinLogLevel: 0,
		Mouse:       true,
	}
}
