// Package version exposes build information for the keyhaven-go SDK and CLI.
package version

import (
	"fmt"
	"runtime"
)

// Set via -ldflags at release build time.
var (
	Version   = "0.3.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// String returns the bare semantic version.
func String() string {
	return Version
}

// UserAgent returns the User-Agent header value sent on every API request.
func UserAgent() string {
	return "keyhaven-go/" + Version
}

// Info returns the full build information map used by the CLI version command.
func Info() map[string]string {
	return map[string]string{
		"version":   Version,
		"gitCommit": GitCommit,
		"buildDate": BuildDate,
		"goVersion": runtime.Version(),
	}
}

// FullString returns a single-line version string including the commit.
func FullString() string {
	return fmt.Sprintf("%s (%s)", Version, GitCommit)
}
