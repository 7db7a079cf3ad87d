package version

import (
	"runtime/debug"
	"testing"
)

func TestCurrentPrefersStampedRelease(t *testing.T) {
	old := release
	release = " v1.2.3 "
	t.Cleanup(func() { release = old })

	if got := Current(); got != "v1.2.3" {
		t.Fatalf("expected stamped release, got %q", got)
	}
}

func TestVCSVersion(t *testing.T) {
	cases := []struct {
		name     string
		settings []debug.BuildSetting
		want     string
	}{
		{
			name: "clean tree",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "1234567890abcdef"},
				{Key: "vcs.time", Value: "2025-01-02T03:04:05Z"},
				{Key: "vcs.modified", Value: "false"},
			},
			want: "v0.0.0-20250102030405-1234567890ab",
		},
		{
			name: "dirty tree",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "1234567890abcdef"},
				{Key: "vcs.time", Value: "2025-01-02T03:04:05Z"},
				{Key: "vcs.modified", Value: "true"},
			},
			want: "v0.0.0-20250102030405-1234567890ab+dirty",
		},
		{
			name: "short revision kept whole",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc123"},
				{Key: "vcs.time", Value: "2025-01-02T03:04:05Z"},
			},
			want: "v0.0.0-20250102030405-abc123",
		},
		{
			name: "missing revision",
			settings: []debug.BuildSetting{
				{Key: "vcs.time", Value: "2025-01-02T03:04:05Z"},
			},
			want: "",
		},
		{
			name: "unparseable time",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "1234567890abcdef"},
				{Key: "vcs.time", Value: "yesterday"},
			},
			want: "",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := vcsVersion(tc.settings); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
