package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

var (
	// These variables are set at build time using -ldflags
	Version   = "dev"
	GitCommit = ""
	BuildTime = ""
)

// TrackedModules are the identity-stack dependencies reported by Get.
var TrackedModules = []string{
	"golang.org/x/oauth2",
	"github.com/coreos/go-oidc/v3",
	"github.com/golang-jwt/jwt/v5",
}

var readBuildInfo = debug.ReadBuildInfo

// Dependency is a module compiled into the binary.
type Dependency struct {
	Path    string `json:"path"`
	Version string `json:"version"`
}

// Info represents version information.
type Info struct {
	Version   string       `json:"version"`
	GitCommit string       `json:"git_commit,omitempty"`
	BuildTime string       `json:"build_time,omitempty"`
	GoVersion string       `json:"go_version,omitempty"`
	Module    string       `json:"module,omitempty"`
	IsDirty   bool         `json:"is_dirty"`
	Deps      []Dependency `json:"deps,omitempty"`
}

// Get returns the version of the running binary.
func Get() Info {
	info := Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
	}

	bi, ok := readBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = bi.GoVersion
	info.Module = bi.Main.Path

	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			if info.GitCommit == "" {
				info.GitCommit = setting.Value
			}
		case "vcs.modified":
			info.IsDirty = setting.Value == "true"
		case "vcs.time":
			if info.BuildTime == "" {
				info.BuildTime = setting.Value
			}
		}
	}
	if len(info.GitCommit) > 7 {
		info.GitCommit = info.GitCommit[:7]
	}

	for _, path := range TrackedModules {
		for _, dep := range bi.Deps {
			if dep.Path != path {
				continue
			}
			v := dep.Version
			if dep.Replace != nil {
				v = dep.Replace.Version
			}
			info.Deps = append(info.Deps, Dependency{Path: path, Version: v})
		}
	}
	return info
}

// IsRelease reports whether the binary was built from a tagged clean tree.
func (i Info) IsRelease() bool {
	return i.Version != "dev" && !i.IsDirty && !strings.Contains(i.Version, "dirty")
}

// Short returns version-commit, with a dirty suffix for modified trees.
func (i Info) Short() string {
	if i.GitCommit == "" {
		return i.Version
	}
	s := fmt.Sprintf("%s-%s", i.Version, i.GitCommit)
	if i.IsDirty {
		s += "-dirty"
	}
	return s
}

// String returns the short version with go version and build time.
func (i Info) String() string {
	var b strings.Builder
	b.WriteString(i.Short())
	if i.GoVersion != "" {
		fmt.Fprintf(&b, " %s", i.GoVersion)
	}
	if i.BuildTime != "" {
		fmt.Fprintf(&b, " (built %s)", i.BuildTime)
	}
	return b.String()
}
