package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/eroom8/Java-document-sorter/internal/domain"
)

func modesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List ordering modes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printModes(cmd.OutOrStdout())
		},
	}
}

func printModes(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, m := range domain.Modes() {
		note := ""
		if m.Key == domain.ModeName {
			note = "\t(equal names ordered by count)"
		}
		fmt.Fprintf(tw, "- %s\t%s%s\n", m.Key, m.Ordering, note)
	}
	return tw.Flush()
}
