package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dendrascience/fsaudit/digest"
	"github.com/dendrascience/fsaudit/report"
)

// NewDigestCmd creates the digest subcommand.
func NewDigestCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "digest [PATH]",
		Short: "Print the checksum of every file",
		Long: `Print one line per file, "<path>: <digest>", in traversal order.

Files that cannot be read are reported as "Error reading file <path>: <reason>"
and the remaining files are still processed. An unknown algorithm or a
missing path fails before anything is printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDigest(cmd, opts)
		},
	}
}

// NewSizesCmd creates the sizes subcommand.
func NewSizesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sizes [PATH]",
		Short: "Print the size of every file",
		Long: `Print one line per file, "<name>: <size> bytes", in traversal order.

Directories produce no lines of their own; an empty directory produces no
output at all.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSizes(cmd, opts)
		},
	}
}

func runDigest(cmd *cobra.Command, opts *options) error {
	// fail on the algorithm before walking anything
	if _, err := digest.Default.Lookup(opts.cfg.Algorithm); err != nil {
		return err
	}
	return runReport(cmd, opts, "digest", opts.cfg.Algorithm, func(sink report.Sink) (report.Processor, error) {
		return report.NewDigestReport(digest.Default, opts.cfg.Algorithm, sink)
	})
}

func runSizes(cmd *cobra.Command, opts *options) error {
	return runReport(cmd, opts, "sizes", "", func(sink report.Sink) (report.Processor, error) {
		return report.NewSizeReport(sink)
	})
}

func runReport(
	cmd *cobra.Command,
	opts *options,
	kind, algorithm string,
	newProcessor func(report.Sink) (report.Processor, error),
) error {
	format, err := report.ParseFormat(opts.cfg.Format)
	if err != nil {
		return err
	}
	tree, err := opts.buildTree()
	if err != nil {
		return err
	}
	sink, err := report.NewSink(format, cmd.OutOrStdout(), opts.cfg.Template, report.NewHeader(kind, algorithm, tree))
	if err != nil {
		return err
	}
	p, err := newProcessor(sink)
	if err != nil {
		return err
	}
	if err := report.Run(tree, p); err != nil {
		return err
	}
	return sink.Close()
}
