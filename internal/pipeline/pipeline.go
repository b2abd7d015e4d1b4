// Package pipeline runs one full gradebook computation: normalize the
// sources, merge, score. Every invocation reconstructs the table from
// scratch, so identical inputs and weights always produce an identical
// result; there is no partial recovery, any stage error discards the
// whole run.
package pipeline

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/abhisek/gradebook/internal/gradebook"
	"github.com/abhisek/gradebook/internal/ingest"
	"github.com/abhisek/gradebook/internal/table"
)

// Inputs names the source files for one run.
type Inputs struct {
	RosterPath string
	GradesPath string
	QuizPaths  []string
}

// Result is the computed snapshot for one run.
type Result struct {
	RunID string
	Table *table.Table
	Stats *gradebook.MergeStats
}

// Run executes load → merge → score and returns the enriched table.
func Run(in Inputs, weights gradebook.Weights, log zerolog.Logger) (*Result, error) {
	runID := uuid.NewString()
	log = log.With().Str("run_id", runID).Logger()

	roster, err := readTable(in.RosterPath, ingest.ReadRoster)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("students", roster.Len()).Str("file", in.RosterPath).Msg("roster loaded")

	grades, err := readTable(in.GradesPath, ingest.ReadGrades)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("rows", grades.Len()).Str("file", in.GradesPath).Msg("grades loaded")

	var quizzes *table.Table
	if len(in.QuizPaths) > 0 {
		var parts []*table.Table
		for _, path := range in.QuizPaths {
			q, err := readQuizFile(path)
			if err != nil {
				return nil, err
			}
			parts = append(parts, q)
		}
		quizzes = ingest.CombineQuizzes(parts, func(name string) {
			log.Warn().Str("quiz", name).Msg("quiz name collision: later file replaces the column")
		})
		log.Debug().Int("quizzes", len(in.QuizPaths)).Msg("quiz files combined")
	}

	merged, stats, err := gradebook.Merge(roster, grades, quizzes)
	if err != nil {
		return nil, err
	}
	// Rows dropped by the inner join surface only here, in the log.
	if len(stats.RosterOnly) > 0 {
		log.Warn().Strs("netids", stats.RosterOnly).Msg("students in roster but not in grades, dropped")
	}
	if len(stats.GradesOnly) > 0 {
		log.Warn().Strs("netids", stats.GradesOnly).Msg("students in grades but not in roster, dropped")
	}

	if err := gradebook.Score(merged, weights); err != nil {
		return nil, err
	}
	log.Info().Int("students", stats.Students).Msg("gradebook scored")

	return &Result{RunID: runID, Table: merged, Stats: stats}, nil
}

func readTable(path string, read func(r io.Reader) (*table.Table, error)) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return read(f)
}

func readQuizFile(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ingest.ReadQuiz(f, path)
}
