package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eroom8/Java-document-sorter/internal/usecase"
)

func checkCmd(g *globalFlags) *cobra.Command {
	var input string
	var count int
	var exact bool

	c := &cobra.Command{
		Use:   "check",
		Short: "Parse an input file without sorting or writing anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(g)
			if err != nil {
				return err
			}
			defer ws.close()

			d := ws.cfg.Defaults
			uc := usecase.NewCheckInput(ws.store)
			n, err := uc.Execute(
				cmd.Context(),
				stringFlag(cmd, "input", input, ws.configPath(d.Input)),
				intFlag(cmd, "count", count, d.Count),
				boolFlag(cmd, "exact", exact, d.Exact),
			)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "OK: %d record(s)\n", n)
			return nil
		},
	}

	c.Flags().StringVarP(&input, "input", "i", "", "Input file (default from recsort.yaml, else input.txt)")
	c.Flags().IntVarP(&count, "count", "n", 0, "Maximum records to read (default from recsort.yaml, else 20)")
	c.Flags().BoolVar(&exact, "exact", false, "Fail when the input holds fewer than --count records")
	return c
}
