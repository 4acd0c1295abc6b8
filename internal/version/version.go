// Package version reports DrivePick build information. Release builds set
// the variables with ldflags:
//
//	-X github.com/HerbHall/drivepick/internal/version.Version=0.2.0
//
// Plain `go build` binaries fall back to the VCS stamp recorded by the Go
// toolchain.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// Current returns the build info, filling unset commit and date from the
// embedded VCS settings when available.
func Current() BuildInfo {
	b := BuildInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		b = fillFromVCS(b, bi.Settings)
	}
	return b
}

func fillFromVCS(b BuildInfo, settings []debug.BuildSetting) BuildInfo {
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			if b.GitCommit == "unknown" && s.Value != "" {
				b.GitCommit = s.Value
				if len(b.GitCommit) > 12 {
					b.GitCommit = b.GitCommit[:12]
				}
			}
		case "vcs.time":
			if b.BuildDate == "unknown" && s.Value != "" {
				b.BuildDate = s.Value
			}
		}
	}
	return b
}

// String formats b for `drivepick version`.
func (b BuildInfo) String() string {
	return fmt.Sprintf("DrivePick %s (commit: %s, built: %s, go: %s, %s/%s)",
		b.Version, b.GitCommit, b.BuildDate, b.GoVersion, b.OS, b.Arch)
}

// Info returns the formatted build info.
func Info() string {
	return Current().String()
}

// Short returns just the version string (e.g., "0.1.0" or "dev").
func Short() string {
	return Version
}
