// Package settings holds build metadata and the per-invocation settings of
// the column CLI.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "column"

// VersionInformation is populated at build time via ldflags.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-nightly",
	BuildTime:    "unknown",
}

// VersionInfo holds the commit hash, version and build timestamp of the
// running binary.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// Run holds the settings of a single invocation.
type Run struct {
	MinLogLevel int8

	// Command selects the column.<command> config key layered over
	// column.ui. Empty means column.ui only.
	Command string

	// ConfigFile is the resolved config path, empty when none was found.
	ConfigFile string

	// StdoutIsTTY is the answer used for "auto".
	StdoutIsTTY bool
}

// NewCliParams returns the settings a CLI invocation starts from.
func NewCliParams() *Run {
	return &Run{MinLogLevel: 0}
}
