package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dendrascience/fsaudit/version"
)

// NewRootCmd creates and returns the root cobra command for the fsaudit CLI.
// Run without a subcommand it prints the digest report.
func NewRootCmd() *cobra.Command {
	opts := newOptions()

	rootCmd := &cobra.Command{
		Use:   "fsaudit",
		Short: "fsaudit - per-file size and checksum reports for directory trees",
		Long: `fsaudit walks a file or directory tree and reports on every file in it.

By default it prints one checksum per file, "<path>: <digest>", computed with
the algorithm selected by --algorithm (md5 unless configured otherwise).
Symbolic links inside the tree are skipped unless --follow-symlinks is given,
in which case they are traversed as their targets and cycles are cut off.

Use subcommands for other reports:
  - digest: checksum of every file (the default)
  - sizes: size of every file
  - count: number of files and total size
  - algorithms: list supported digest algorithms`,
		Version:           version.Get().String(),
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: opts.resolve,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDigest(cmd, opts)
		},
	}
	opts.bind(rootCmd)

	groupReports := "reports"
	groupUtilities := "utilities"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupReports,
		Title: "Reports",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	digestCmd := NewDigestCmd(opts)
	sizesCmd := NewSizesCmd(opts)
	countCmd := NewCountCmd(opts)
	algorithmsCmd := NewAlgorithmsCmd()

	digestCmd.GroupID = groupReports
	sizesCmd.GroupID = groupReports
	countCmd.GroupID = groupUtilities
	algorithmsCmd.GroupID = groupUtilities

	rootCmd.AddCommand(digestCmd)
	rootCmd.AddCommand(sizesCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(algorithmsCmd)

	return rootCmd
}
