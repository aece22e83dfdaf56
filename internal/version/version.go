// Package version exposes build metadata injected through ldflags, e.g.
//
//	-ldflags "-X github.com/hueforge/hueforge/internal/version.Version=x.y.z"
//
// Builds without injected values report "dev".
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the semantic version of the binary.
	Version = "dev"

	// Commit is the git commit hash the binary was built from.
	Commit = "unknown"

	// Date is the build date in RFC3339 format.
	Date = "unknown"
)

// Info is the structured form of the build metadata, used by the version
// command's JSON output.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo collects the build metadata.
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String renders the metadata as a single human-readable line. Commit and
// date only appear when they were injected.
func (i Info) String() string {
	if i.Commit != "unknown" && i.Date != "unknown" {
		commit := i.Commit
		if len(commit) > 8 {
			commit = commit[:8]
		}
		return fmt.Sprintf("hueforge version %s (commit: %s, built: %s, %s, %s)",
			i.Version, commit, i.Date, i.GoVersion, i.Platform)
	}
	return fmt.Sprintf("hueforge version %s (%s, %s)", i.Version, i.GoVersion, i.Platform)
}

// String renders the current build's metadata.
func String() string {
	return GetInfo().String()
}

// Short returns just the version number for cobra's --version flag.
func Short() string {
	return Version
}
