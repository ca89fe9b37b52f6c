package version

import "testing"

func TestGetFullVersion(t *testing.T) {
	defer func(v, c, d string) { Version, GitCommit, BuildDate = v, c, d }(Version, GitCommit, BuildDate)

	Version = "dev"
	if got := GetFullVersion(); got != "dev" {
		t.Errorf("expected %q, got %q", "dev", got)
	}

	Version, GitCommit, BuildDate = "v1.2.0", "abc123", "2026-01-01"
	if got := GetFullVersion(); got != "v1.2.0 (commit abc123, built 2026-01-01)" {
		t.Errorf("unexpected full version %q", got)
	}
	if got := GetVersion(); got != "v1.2.0" {
		t.Errorf("unexpected version %q", got)
	}
}
