// Package buildinfo carries the version stamped into kolam binaries.
//
// Variables are set via ldflags during build:
//
//	go build -ldflags "-X github.com/kolamstudio/kolam/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/kolamstudio/kolam/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/kolamstudio/kolam/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

var (
	// Version is the semantic version (e.g., "v1.2.3").
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// Info is the build stamp as reported by the CLI and the health endpoint.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"built"`
}

// Get returns the current build stamp.
func Get() Info {
	return Info{Version: Version, Commit: Commit, Date: Date}
}

// String returns the stamp as "v1.2.3 (abc1234, 2025-01-02T03:04:05Z)".
// Commits are shortened to seven characters.
func (i Info) String() string {
	commit := i.Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", i.Version, commit, i.Date)
}

// Template returns the version template string for cobra.
func Template() string {
	return "{{.Name}} " + Get().String() + "\n"
}
