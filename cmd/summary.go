package cmd

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/abhisek/gradebook/internal/report"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the roster-wide summary table",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, _, err := runPipeline(cmd)
		if err != nil {
			return err
		}

		sum := report.Summary(res.Table)

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader(append([]string{"ID"}, sum.Columns()...))
		for _, key := range sum.Keys() {
			row := []string{key}
			for _, c := range sum.Columns() {
				row = append(row, sum.Get(key, c).String())
			}
			table.Append(row)
		}
		table.Render()
		return nil
	},
}
