// Package buildinfo holds version information injected at build time:
//
//	go build -ldflags "-X github.com/matzehuels/stylewheel/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/stylewheel/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/stylewheel/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/stylewheel
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String returns the multi-line build summary.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the cobra --version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (%s, built %s)\n", Version, Commit, Date)
}

// UserAgent identifies catalog requests made by this build.
func UserAgent() string {
	return "stylewheel/" + Version
}
