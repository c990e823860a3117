// Package settings provides build metadata, per-run configuration, and
// context helpers shared by the gridkit CLI packages.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "gridkit"

// VersionInformation is populated at build time via ldflags and holds the
// commit hash, semantic version, and build timestamp of the running binary.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-nightly",
	BuildTime:    "unknown",
}

// VersionInfo holds metadata about the build.
type VersionInfo struct {
	Commit       string `json:"commit" yaml:"commit"`
	BuildVersion string `json:"version" yaml:"version"`
	BuildTime    string `json:"buildTime" yaml:"buildTime"`
}

// Run holds configuration settings for a single execution of the CLI.
type Run struct {
	MinLogLevel int8
	IsQuiet     bool
	NoColor     bool
	Output      string // table, json or yaml
}

// NewCliParams returns the defaults used before flags are parsed.
func NewCliParams() *Run {
	return &Run{
		MinLogLevel: 0,
		IsQuiet:     false,
		NoColor:     false,
		Output:      "table",
	}
}
