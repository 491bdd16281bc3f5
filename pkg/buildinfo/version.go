// Package buildinfo carries version information stamped at link time:
//
//	go build -ldflags "-X github.com/rashika27/frameview/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/rashika27/frameview/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/rashika27/frameview/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/frameview
package buildinfo

import "fmt"

// Overridden by -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String returns the build information, one field per line.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the cobra version template.
func Template() string {
	return "{{.Name}} " + Version + " (" + Commit + ", " + Date + ")\n"
}

