// Package version reports the running binary's version. Release builds
// stamp the release var through ldflags; everything else falls back to
// the module's build info, ending in a VCS pseudo-version for plain
// `go build` trees.
package version

import (
	"runtime/debug"
	"strings"
	"time"
)

const fallbackModule = "pkt.systems/scratchdock"

// release is stamped by the release pipeline:
//
//	-ldflags "-X pkt.systems/scratchdock/internal/version.release=v1.2.3"
var release string

// Module returns the main module path, or the compiled-in fallback when
// build info is unavailable (stripped binaries, some test binaries).
func Module() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		if path := strings.TrimSpace(info.Main.Path); path != "" {
			return path
		}
	}
	return fallbackModule
}

// Current resolves the version in order of trust: the stamped release,
// the module version recorded by `go install`, then a pseudo-version
// derived from the embedded VCS settings. Locally modified trees carry
// a +dirty suffix.
func Current() string {
	if v := strings.TrimSpace(release); v != "" {
		return v
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := strings.TrimSpace(info.Main.Version); v != "" && v != "(devel)" {
			return v
		}
		if v := vcsVersion(info.Settings); v != "" {
			return v
		}
	}
	return "v0.0.0-unknown"
}

func vcsVersion(settings []debug.BuildSetting) string {
	var revision, stamp string
	dirty := false
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			stamp = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if revision == "" || stamp == "" {
		return ""
	}
	at, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		return ""
	}
	if len(revision) > 12 {
		revision = revision[:12]
	}
	v := "v0.0.0-" + at.UTC().Format("20060102150405") + "-" + revision
	if dirty {
		v += "+dirty"
	}
	return v
}
