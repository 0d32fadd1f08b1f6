package version

import (
	"fmt"
	"runtime/debug"
)

const (
	unknown    = "unknown"
	devVersion = "dev"
)

// Set by -ldflags.
var (
	Version = devVersion
	Commit  = unknown
	Date    = unknown
)

// Info is the resolved build information.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Package string `json:"package"`
}

// Get resolves build information, preferring link-time values.
func Get() Info {
	bi, _ := debug.ReadBuildInfo()
	return resolve(bi)
}

func resolve(bi *debug.BuildInfo) Info {
	info := Info{
		Version: Version,
		Commit:  Commit,
		Date:    Date,
		Package: "fsaudit",
	}
	if info.Version == devVersion || info.Version == "" {
		info.Version = "development"
		if bi != nil && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
	}
	if info.Commit == unknown || info.Commit == "" {
		info.Commit = setting(bi, "vcs.revision")
	}
	if info.Date == unknown || info.Date == "" {
		info.Date = setting(bi, "vcs.time")
	}
	return info
}

func setting(bi *debug.BuildInfo, key string) string {
	if bi == nil {
		return unknown
	}
	for _, s := range bi.Settings {
		if s.Key == key && s.Value != "" {
			return s.Value
		}
	}
	return unknown
}

// Revision returns the commit hash, or "" when it is not known.
func (i Info) Revision() string {
	if i.Commit == unknown {
		return ""
	}
	return i.Commit
}

// String formats the version with a short commit and build date when known,
// e.g. "v1.2.0 (abc1234, built 2026-01-01T00:00:00Z)".
func (i Info) String() string {
	if i.Commit == unknown || len(i.Commit) <= 7 {
		return i.Version
	}
	short := i.Commit[:7]
	if i.Date != unknown {
		return fmt.Sprintf("%s (%s, built %s)", i.Version, short, i.Date)
	}
	return fmt.Sprintf("%s (%s)", i.Version, short)
}
