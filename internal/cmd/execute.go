package cmd

import (
	"context"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/dendrascience/fsaudit/version"
)

// Execute runs root through fang with the version and commit resolved by
// the version package, so link-time values reach --version.
func Execute(ctx context.Context, root *cobra.Command) error {
	info := version.Get()
	return fang.Execute(ctx, root,
		fang.WithVersion(info.Version),
		fang.WithCommit(info.Revision()),
	)
}
