// Package version reports what binary is running and which attribute table
// it validates against.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set at build time via ldflags:
//
//	-X github.com/teranos/expertise/version.Version=v0.3.0
var (
	Version    = "dev"
	CommitHash = ""
	BuildTime  = "unknown"
)

// Info describes the running binary. Schema is the fingerprint of the
// attribute table and label set; instances are only comparable between
// binaries that report the same one.
type Info struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	Modified  bool   `json:"modified,omitempty" yaml:"modified,omitempty"`
	BuildTime string `json:"build_time" yaml:"build_time"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
	Schema    string `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// Get returns the build information, falling back to the VCS stamp the Go
// toolchain embeds when no commit was passed via ldflags
func Get() Info {
	info := Info{
		Version:   Version,
		Commit:    CommitHash,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if info.Commit == "" {
		info.Commit, info.Modified = vcsRevision()
	}
	if info.Commit == "" {
		info.Commit = "dev"
	}
	return info
}

// WithSchema returns a copy of i carrying the schema fingerprint
func (i Info) WithSchema(fingerprint string) Info {
	i.Schema = fingerprint
	return i
}

func (i Info) String() string {
	s := fmt.Sprintf("expertise %s (commit %s", i.Version, i.ShortCommit())
	if i.Modified {
		s += "+dirty"
	}
	s += ", built " + i.BuildTime + ")"
	if i.Schema != "" {
		s += " schema " + i.Schema
	}
	return s
}

// ShortCommit returns the commit cut to 7 characters
func (i Info) ShortCommit() string {
	if len(i.Commit) > 7 {
		return i.Commit[:7]
	}
	return i.Commit
}

func vcsRevision() (string, bool) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "", false
	}
	var rev string
	var modified bool
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	return rev, modified
}
