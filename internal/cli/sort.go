package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/eroom8/Java-document-sorter/internal/domain"
	"github.com/eroom8/Java-document-sorter/internal/infra/logger"
	"github.com/eroom8/Java-document-sorter/internal/usecase"
)

func sortCmd(g *globalFlags) *cobra.Command {
	var input string
	var output string
	var count int
	var mode string
	var exact bool
	var report bool

	c := &cobra.Command{
		Use:   "sort",
		Short: "Sort records from an input file into an output file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(g)
			if err != nil {
				return err
			}
			defer ws.close()

			d := ws.cfg.Defaults
			req := domain.SortRequest{
				Input:  stringFlag(cmd, "input", input, ws.configPath(d.Input)),
				Output: stringFlag(cmd, "output", output, ws.configPath(d.Output)),
				Count:  intFlag(cmd, "count", count, d.Count),
				Mode:   stringFlag(cmd, "mode", mode, d.Mode),
				Exact:  boolFlag(cmd, "exact", exact, d.Exact),
			}

			opts := []usecase.SortOption{usecase.WithLogger(logger.L())}
			if boolFlag(cmd, "report", report, ws.cfg.Reports.Enabled) {
				opts = append(opts, usecase.WithReportStore(ws.reportStore()))
			}

			uc := usecase.NewSortRecords(ws.store, opts...)
			rep, reportID, err := uc.Execute(cmd.Context(), req)
			if err != nil {
				return err
			}

			printSortSummary(cmd.OutOrStdout(), rep, reportID)
			return nil
		},
	}

	c.Flags().StringVarP(&input, "input", "i", "", "Input file (default from recsort.yaml, else input.txt)")
	c.Flags().StringVarP(&output, "output", "o", "", "Output file (default from recsort.yaml, else output.txt)")
	c.Flags().IntVarP(&count, "count", "n", 0, "Maximum records to read (default from recsort.yaml, else 20)")
	c.Flags().StringVarP(&mode, "mode", "m", "", "Ordering: name|count|nameThenCount|countThenName")
	c.Flags().BoolVar(&exact, "exact", false, "Fail when the input holds fewer than --count records")
	c.Flags().BoolVar(&report, "report", false, "Save a JSON run report under the reports dir")
	return c
}

func printSortSummary(w io.Writer, rep domain.SortReport, reportID string) {
	fmt.Fprintf(w, "Sorted %d record(s) by %s into %s\n", rep.Loaded, rep.Mode, rep.Output)
	if rep.Truncated {
		fmt.Fprintf(w, "note: input held %d of %d requested record(s)\n", rep.Loaded, rep.Requested)
	}
	if reportID != "" {
		fmt.Fprintf(w, "Report: %s\n", reportID)
	}
}
