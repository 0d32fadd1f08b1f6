// Package version reports build information for fsaudit.
//
// Version, Commit and Date are meant to be set at link time:
//
//	-ldflags "-X github.com/dendrascience/fsaudit/version.Version=v1.0.0 -X github.com/dendrascience/fsaudit/version.Commit=abc123 -X github.com/dendrascience/fsaudit/version.Date=2026-01-01T00:00:00Z"
//
// Anything left unset falls back to the module and VCS settings recorded by
// the Go toolchain (debug.ReadBuildInfo), and finally to development
// placeholders.
package version
