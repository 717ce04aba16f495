// Package version exposes build metadata stamped in via ldflags:
//
//	go build -ldflags "-X ethlens/internal/version.Version=1.0.0 \
//	                   -X ethlens/internal/version.Commit=$(git rev-parse --short HEAD) \
//	                   -X ethlens/internal/version.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package version

import "fmt"

var (
	// Version is the semantic version of the binary.
	Version = "dev"

	// Commit is the short git commit hash.
	Commit = "unknown"

	// BuildTime is the UTC build timestamp.
	BuildTime = "unknown"
)

// String formats the build metadata as a single line.
func String() string {
	return fmt.Sprintf("%s (%s) built %s", Version, Commit, BuildTime)
}
