package cmd

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/gradebook/internal/app"
	"github.com/abhisek/gradebook/internal/config"
	"github.com/abhisek/gradebook/internal/gradebook"
	"github.com/abhisek/gradebook/internal/logging"
	"github.com/abhisek/gradebook/internal/pipeline"
)

var rootCmd = &cobra.Command{
	Use:   "gradebook",
	Short: "Course gradebook pipeline",
	Long: "Gradebook — merges a roster, a grades export, and quiz score files, " +
		"computes weighted final grades, and renders summaries, charts, and per-student reports.",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, _, err := runPipeline(cmd)
		if err != nil {
			return err
		}
		return app.Run(app.Options{Result: res})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("roster", "", "Path to the roster CSV (NetID, Section, Email Address)")
	pf.String("grades", "", "Path to the grades export CSV (SID plus score columns)")
	pf.StringArray("quiz", nil, "Path to a quiz CSV (Email, Grade); repeatable")
	pf.String("weights", "", "Path to a JSON weights file (overrides GRADEBOOK_WEIGHTS)")
	pf.String("log-level", "", "Log level (overrides GRADEBOOK_LOG_LEVEL)")
	pf.String("log-format", "", "Log format, pretty or json (overrides GRADEBOOK_LOG_FORMAT)")

	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}

// runPipeline resolves configuration, loads the input files, and runs
// one full load → merge → score pass.
func runPipeline(cmd *cobra.Command) (*pipeline.Result, zerolog.Logger, error) {
	cfg := config.Load()

	level := flagOr(cmd, "log-level", cfg.LogLevel)
	format := flagOr(cmd, "log-format", cfg.LogFormat)
	log := logging.Setup(level, format)

	rosterPath, _ := cmd.Flags().GetString("roster")
	gradesPath, _ := cmd.Flags().GetString("grades")
	if rosterPath == "" || gradesPath == "" {
		return nil, log, fmt.Errorf("both --roster and --grades are required")
	}
	quizPaths, _ := cmd.Flags().GetStringArray("quiz")

	weights, err := loadWeights(cmd, cfg)
	if err != nil {
		return nil, log, err
	}

	res, err := pipeline.Run(pipeline.Inputs{
		RosterPath: rosterPath,
		GradesPath: gradesPath,
		QuizPaths:  quizPaths,
	}, weights, log)
	if err != nil {
		return nil, log, err
	}
	return res, log, nil
}

// loadWeights resolves the weights file using --weights flag (highest
// priority), then the GRADEBOOK_WEIGHTS env var, then the defaults.
func loadWeights(cmd *cobra.Command, cfg *config.Config) (gradebook.Weights, error) {
	path, _ := cmd.Flags().GetString("weights")
	if path == "" {
		path = cfg.WeightsPath
	}
	return config.LoadWeights(path)
}

func flagOr(cmd *cobra.Command, name, fallback string) string {
	if v, _ := cmd.Flags().GetString(name); v != "" {
		return v
	}
	return fallback
}
