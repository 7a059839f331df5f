// Package version exposes the build version stamped in at link time.
package version

import (
	"runtime/debug"
	"strings"

	"golang.org/x/mod/semver"
)

// Version is overridden with -ldflags "-X ticketdesk/internal/shared/version.Version=v1.2.3".
var Version = "dev"

// Current returns the stamped version, falling back to the module version
// recorded in the binary's build info.
func Current() string {
	if Version != "" && Version != "dev" {
		return Normalize(Version)
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}

// Normalize ensures version string has "v" prefix for semver compatibility.
func Normalize(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if !strings.HasPrefix(v, "v") {
		return "v" + v
	}
	return v
}

// IsRelease reports whether v is a tagged semantic version without prerelease suffix.
func IsRelease(v string) bool {
	v = Normalize(v)
	return semver.IsValid(v) && semver.Prerelease(v) == ""
}
