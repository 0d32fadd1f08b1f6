package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dendrascience/fsaudit/digest"
)

// NewAlgorithmsCmd creates the algorithms subcommand.
func NewAlgorithmsCmd() *cobra.Command {
	var check string

	cmd := &cobra.Command{
		Use:   "algorithms",
		Short: "List supported digest algorithms",
		Long: `List the digest algorithms accepted by --algorithm with their output size.

Names are matched case-insensitively. With --check the command prints nothing
and fails unless the given algorithm is supported.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if check != "" {
				_, err := digest.Default.Lookup(check)
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range digest.Default.Algorithms() {
				size, err := digest.Default.Size(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%d bits\t%d hex chars\n", name, size*8, size*2)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&check, "check", "", "Fail unless the named algorithm is supported")

	return cmd
}
