package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/gradebook/internal/report"
	"github.com/abhisek/gradebook/internal/ui/components"
)

var reportCmd = &cobra.Command{
	Use:   "report <netid or name>",
	Short: "Print one student's report",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, _, err := runPipeline(cmd)
		if err != nil {
			return err
		}

		// A bare name may arrive as several args; rejoin it.
		query := strings.Join(args, " ")
		id, ok := report.ResolveID(res.Table, query)
		if !ok {
			return fmt.Errorf("no student matching %q", query)
		}
		r, err := report.ForStudent(res.Table, id)
		if err != nil {
			return err
		}

		fmt.Println(r.Text())
		for _, cat := range r.Categories {
			bar := components.NewScoreBar(cat.Label, cat.Percent/100, 48)
			fmt.Println(bar.View())
		}

		if out, _ := cmd.Flags().GetString("out"); out != "" {
			if err := os.WriteFile(out, []byte(r.Text()), 0o644); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			fmt.Fprintln(os.Stderr, "report written to", out)
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().String("out", "", "Also write the report text to this file")
}
