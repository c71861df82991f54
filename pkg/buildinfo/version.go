// Package buildinfo holds version data injected at build time:
//
//	go build -ldflags "-X github.com/kunhq/kundocs/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/kunhq/kundocs/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/kunhq/kundocs/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String returns the multi-line form printed by "kundocs --version".
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Short returns "v1.2.3 (abc1234)", or just the version when no commit was
// recorded.
func Short() string {
	if Commit == "" || Commit == "none" {
		return Version
	}
	c := Commit
	if len(c) > 7 {
		c = c[:7]
	}
	return fmt.Sprintf("%s (%s)", Version, c)
}

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
