// Package version provides build-time version information for navshell.
package version

import (
	"fmt"
	"runtime"
	"time"
)

// Build-time variables. These are set via ldflags during build:
//
//	go build -ldflags "-X navshell/internal/version.Version=1.0.0 \
//	                   -X navshell/internal/version.Commit=abc123 \
//	                   -X navshell/internal/version.BuildTime=2026-01-01T00:00:00Z"
var (
	// Version is the semantic version of the application.
	Version = "0.1.0-dev"

	// Commit is the git commit hash.
	Commit = "unknown"

	// BuildTime is the RFC3339 timestamp of when the binary was built.
	BuildTime = ""
)

// Info contains version information.
type Info struct {
	Version   string    `json:"version" yaml:"version"`
	Commit    string    `json:"commit" yaml:"commit"`
	BuildTime time.Time `json:"build_time" yaml:"build_time"`
	GoVersion string    `json:"go_version" yaml:"go_version"`
	Platform  string    `json:"platform" yaml:"platform"`
}

// Get returns the version information.
func Get() Info {
	var buildTime time.Time
	if BuildTime != "" {
		if t, err := time.Parse(time.RFC3339, BuildTime); err == nil {
			buildTime = t
		}
	}

	return Info{
		Version:   Version,
		Commit:    Commit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns the version with the short commit when known.
func (i Info) String() string {
	if i.Commit != "unknown" && len(i.Commit) > 7 {
		return fmt.Sprintf("%s (%s)", i.Version, i.Commit[:7])
	}
	return i.Version
}

// Full returns a detailed version string.
func (i Info) Full() string {
	built := "unknown"
	if !i.BuildTime.IsZero() {
		built = i.BuildTime.Format(time.RFC3339)
	}
	return fmt.Sprintf("navshell %s\n  commit:     %s\n  built:      %s\n  go version: %s\n  platform:   %s",
		i.Version, i.Commit, built, i.GoVersion, i.Platform)
}
