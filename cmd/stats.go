package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/abhisek/gradebook/internal/report"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the grade histogram and score distribution",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, _, err := runPipeline(cmd)
		if err != nil {
			return err
		}
		includeEmpty, _ := cmd.Flags().GetBool("all-grades")

		hist := report.Histogram(res.Table, includeEmpty)
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Grade", "Students", ""})
		for _, bar := range hist {
			table.Append([]string{
				bar.Grade,
				strconv.Itoa(bar.Count),
				strings.Repeat("█", bar.Count),
			})
		}
		table.Render()

		_, ds, err := report.Distribution(res.Table)
		if err != nil {
			return err
		}
		fmt.Printf("\nFinal score distribution (n=%d)\n", res.Table.Len())
		fmt.Printf("  mean   %.3f\n", ds.Mean)
		fmt.Printf("  median %.3f\n", ds.Median)
		fmt.Printf("  stddev %.3f\n", ds.StdDev)
		fmt.Printf("  min    %.3f\n", ds.Min)
		fmt.Printf("  q1     %.3f\n", ds.Q1)
		fmt.Printf("  q3     %.3f\n", ds.Q3)
		fmt.Printf("  max    %.3f\n", ds.Max)
		return nil
	},
}

func init() {
	statsCmd.Flags().Bool("all-grades", false, "Include letter grades nobody earned")
}
