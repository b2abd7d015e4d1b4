package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/gradebook/internal/export"
	"github.com/abhisek/gradebook/internal/report"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the scored gradebook to CSV or XLSX files",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, log, err := runPipeline(cmd)
		if err != nil {
			return err
		}

		outDir, _ := cmd.Flags().GetString("out")
		perSection, _ := cmd.Flags().GetBool("sections")
		asXLSX, _ := cmd.Flags().GetBool("xlsx")
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}

		if asXLSX {
			sheets := []export.Sheet{{Name: "Gradebook", Table: res.Table}}
			if perSection {
				labels, parts := report.Sections(res.Table)
				for _, sec := range labels {
					sheets = append(sheets, export.Sheet{
						Name:  "Section " + sec,
						Table: parts[sec],
					})
				}
			}
			path := filepath.Join(outDir, "grades.xlsx")
			if err := writeFileWith(path, func(f *os.File) error {
				return export.WriteXLSX(f, sheets)
			}); err != nil {
				return err
			}
			log.Info().Str("file", path).Msg("workbook written")
			return nil
		}

		path := filepath.Join(outDir, "grades.csv")
		if err := writeFileWith(path, func(f *os.File) error {
			return export.WriteCSV(f, res.Table)
		}); err != nil {
			return err
		}
		log.Info().Str("file", path).Msg("gradebook written")

		if perSection {
			labels, parts := report.Sections(res.Table)
			for _, sec := range labels {
				name := fmt.Sprintf("Section_%s.csv", sanitize(sec))
				path := filepath.Join(outDir, name)
				part := parts[sec]
				if err := writeFileWith(path, func(f *os.File) error {
					return export.WriteCSV(f, part)
				}); err != nil {
					return err
				}
				log.Info().Str("file", path).Str("section", sec).Msg("section written")
			}
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().String("out", ".", "Output directory")
	exportCmd.Flags().Bool("sections", false, "Also write one file per section")
	exportCmd.Flags().Bool("xlsx", false, "Write a single XLSX workbook instead of CSV")
}

func writeFileWith(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// sanitize keeps section labels filesystem-safe.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', ' ':
			return '_'
		}
		return r
	}, s)
}
