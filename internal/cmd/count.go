package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dendrascience/fsaudit/fstree"
	"github.com/dendrascience/fsaudit/report"
)

// progressEvery is the number of files between two progress records.
var progressEvery = 10000

// NewCountCmd creates and returns the count subcommand for the fsaudit CLI.
// It provides file counting functionality for directory trees.
func NewCountCmd(opts *options) *cobra.Command {
	var showProgress bool

	cmd := &cobra.Command{
		Use:   "count [PATH]",
		Short: "Count files in a directory tree",
		Long: `Count the files in a directory tree and report their total size.

The tree is built with the same symlink policy as the reports, so the
numbers match exactly what 'digest' and 'sizes' would list.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(cmd, opts, showProgress)
		},
	}

	cmd.Flags().BoolVar(&showProgress, "progress", false, "Log progress every 10,000 files")

	return cmd
}

func runCount(cmd *cobra.Command, opts *options, showProgress bool) error {
	tree, err := opts.buildTree()
	if err != nil {
		return err
	}

	count := 0
	counter := report.ProcessorFunc(func(f *fstree.File) error {
		count++
		if showProgress && count%progressEvery == 0 {
			slog.Info("counting", "files", count)
		}
		return nil
	})
	if err := report.Run(tree, counter); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Total files: %d\n", count)
	fmt.Fprintf(out, "Total size: %d bytes\n", tree.Size())
	return nil
}
