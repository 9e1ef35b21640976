// Package version carries build metadata injected with ldflags:
//
//	go build -ldflags "-X git.home.luguber.info/inful/sitegen/internal/version.Version=v1.0.0" ./cmd/sitegen
package version

import "fmt"

// Version is the release version; "dev" for local builds.
var Version = "dev"

// Additional build metadata.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String renders the version line printed by --version.
func String() string {
	return fmt.Sprintf("sitegen %s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
