package version

import (
	"fmt"
	"runtime/debug"
)

// Set at build time with:
//
//	go build -ldflags="-X github.com/muurk/breakeven/internal/version.Version=v1.2.3 \
//	                   -X github.com/muurk/breakeven/internal/version.Commit=abc123"
//
// Unset values are read from the module build info, then default to "dev"
// and "unknown".
var (
	// Version is the release version of breakeven
	Version = ""
	// Commit is the short git revision it was built from
	Commit = ""
)

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		if Version == "" {
			Version = moduleVersion(info.Main.Version)
		}
		if Commit == "" {
			Commit = revision(info.Settings)
		}
	}

	if Version == "" {
		Version = "dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// moduleVersion returns v unless it is the placeholder the toolchain uses
// for builds outside a tagged module.
func moduleVersion(v string) string {
	if v == "(devel)" {
		return ""
	}
	return v
}

// revision returns the seven-character VCS revision, suffixed with "-dirty"
// for builds from a modified tree, or "" when no revision was recorded.
func revision(settings []debug.BuildSetting) string {
	var rev string
	var modified bool
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	if rev == "" {
		return ""
	}
	if len(rev) > 7 {
		rev = rev[:7]
	}
	if modified {
		rev += "-dirty"
	}
	return rev
}

// Full returns the version and commit as printed by --version
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
