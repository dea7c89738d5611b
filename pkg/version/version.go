// Package version exposes build metadata injected via -ldflags.
package version

import "github.com/Masterminds/semver/v3"

// Build metadata, overridden at link time:
//
//	go build -ldflags "-X github.com/rshade/carbonsense/pkg/version.version=1.2.3"
//
//nolint:gochecknoglobals // Set by the linker.
var (
	version   = "0.1.0-dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

// GetVersion returns the semantic version of this build.
func GetVersion() string {
	return version
}

// GetGitCommit returns the commit the binary was built from.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns when the binary was built.
func GetBuildDate() string {
	return buildDate
}

// IsRelease reports whether the build carries a valid, non-prerelease
// semantic version.
func IsRelease() bool {
	v, err := semver.NewVersion(version)
	if err != nil {
		return false
	}
	return v.Prerelease() == ""
}
