// Package version holds build information stamped in with -ldflags, e.g.
//
//	go build -ldflags "-X sig-tracer/internal/version.Version=1.2.0"
package version

import "fmt"

var (
	Version   = "0.1.0"
	BuildTime = "unknown" // UTC
	GitCommit = "unknown"
)

// String formats the build information for -version output.
func String() string {
	commit := GitCommit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("sig-tracer %s (commit %s, built %s)", Version, commit, BuildTime)
}
