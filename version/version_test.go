package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func withBuild(t *testing.T, bi *debug.BuildInfo, version, commit, buildTime string) {
	t.Helper()
	origRead, origVersion, origCommit, origBuildTime := readBuildInfo, Version, GitCommit, BuildTime
	t.Cleanup(func() {
		readBuildInfo, Version, GitCommit, BuildTime = origRead, origVersion, origCommit, origBuildTime
	})
	readBuildInfo = func() (*debug.BuildInfo, bool) { return bi, bi != nil }
	Version, GitCommit, BuildTime = version, commit, buildTime
}

func testBuildInfo() *debug.BuildInfo {
	return &debug.BuildInfo{
		GoVersion: "go1.26.0",
		Main:      debug.Module{Path: "github.com/kbukum/idprovider"},
		Deps: []*debug.Module{
			{Path: "golang.org/x/oauth2", Version: "v0.35.0"},
			{Path: "github.com/coreos/go-oidc/v3", Version: "v3.17.0"},
			{Path: "github.com/rs/zerolog", Version: "v1.34.0"},
			{
				Path:    "github.com/golang-jwt/jwt/v5",
				Version: "v5.3.0",
				Replace: &debug.Module{Path: "github.com/golang-jwt/jwt/v5", Version: "v5.3.1"},
			},
		},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.modified", Value: "false"},
			{Key: "vcs.time", Value: "2026-01-15T10:30:00Z"},
		},
	}
}

func TestGetWithoutBuildInfo(t *testing.T) {
	withBuild(t, nil, "dev", "", "")

	info := Get()
	if info.Version != "dev" {
		t.Errorf("expected version 'dev', got %q", info.Version)
	}
	if info.IsRelease() {
		t.Error("dev should not be a release")
	}
	if info.Short() != "dev" {
		t.Errorf("expected short version 'dev', got %q", info.Short())
	}
}

func TestGetFromBuildInfo(t *testing.T) {
	withBuild(t, testBuildInfo(), "1.2.0", "", "")

	info := Get()
	if info.GitCommit != "0123456" {
		t.Errorf("expected truncated vcs commit, got %q", info.GitCommit)
	}
	if info.BuildTime != "2026-01-15T10:30:00Z" {
		t.Errorf("expected vcs build time, got %q", info.BuildTime)
	}
	if info.Module != "github.com/kbukum/idprovider" {
		t.Errorf("unexpected module %q", info.Module)
	}
	if !info.IsRelease() {
		t.Error("clean tagged build should be a release")
	}

	want := map[string]string{
		"golang.org/x/oauth2":          "v0.35.0",
		"github.com/coreos/go-oidc/v3": "v3.17.0",
		"github.com/golang-jwt/jwt/v5": "v5.3.1",
	}
	if len(info.Deps) != len(want) {
		t.Fatalf("expected %d tracked deps, got %v", len(want), info.Deps)
	}
	for _, d := range info.Deps {
		if want[d.Path] != d.Version {
			t.Errorf("%s: expected %s, got %s", d.Path, want[d.Path], d.Version)
		}
	}
}

func TestLdflagsWinOverBuildInfo(t *testing.T) {
	withBuild(t, testBuildInfo(), "1.2.0", "feedbee", "2026-02-01T00:00:00Z")

	info := Get()
	if info.GitCommit != "feedbee" {
		t.Errorf("expected ldflags commit, got %q", info.GitCommit)
	}
	if info.BuildTime != "2026-02-01T00:00:00Z" {
		t.Errorf("expected ldflags build time, got %q", info.BuildTime)
	}
}

func TestDirtyBuild(t *testing.T) {
	bi := testBuildInfo()
	bi.Settings[1].Value = "true"
	withBuild(t, bi, "1.2.0", "", "")

	info := Get()
	if info.IsRelease() {
		t.Error("dirty build should not be a release")
	}
	if info.Short() != "1.2.0-0123456-dirty" {
		t.Errorf("unexpected short version %q", info.Short())
	}
}

func TestString(t *testing.T) {
	info := Info{Version: "1.2.0", GitCommit: "abc1234", GoVersion: "go1.26.0", BuildTime: "2026-01-15T10:30:00Z"}
	s := info.String()
	for _, want := range []string{"1.2.0-abc1234", "go1.26.0", "built 2026-01-15T10:30:00Z"} {
		if !strings.Contains(s, want) {
			t.Errorf("expected %q in %q", want, s)
		}
	}
}
