// Package gradebook merges normalized roster, grades, and quiz tables
// into one student-indexed table and computes category scores, the
// weighted final score, and the letter grade.
package gradebook

import (
	"fmt"

	"github.com/abhisek/gradebook/internal/ingest"
	"github.com/abhisek/gradebook/internal/table"
)

// Column names shared across the pipeline.
const (
	ColSection = "Section"
	ColEmail   = "Email Address"
)

// MergeStats records what the join kept and what it silently dropped.
// The inner join between roster and grades loses students present in
// only one source; callers surface that, the merge itself does not.
type MergeStats struct {
	Students    int
	RosterOnly  []string
	GradesOnly  []string
	QuizColumns []string
}

// Merge inner-joins the roster with the grades table on the canonical
// identifier, then left-joins the combined quiz table using each row's
// email. Grades-side gaps fill to zero; quiz cells stay missing until
// scoring so that the quiz average can skip them.
func Merge(roster, grades, quizzes *table.Table) (*table.Table, *MergeStats, error) {
	stats := &MergeStats{}

	cols := roster.Columns()
	seen := make(map[string]bool, len(cols))
	for _, c := range cols {
		seen[c] = true
	}
	for _, c := range grades.Columns() {
		if seen[c] {
			return nil, nil, &ingest.SchemaMismatchError{
				Source: "grades",
				Column: c,
				Err:    fmt.Errorf("column also present in roster"),
			}
		}
		seen[c] = true
		cols = append(cols, c)
	}

	quizCols := make(map[string]bool)
	if quizzes != nil {
		for _, c := range quizzes.Columns() {
			if seen[c] {
				return nil, nil, &ingest.SchemaMismatchError{
					Source: "quizzes",
					Column: c,
					Err:    fmt.Errorf("column also present in roster or grades"),
				}
			}
			quizCols[c] = true
			stats.QuizColumns = append(stats.QuizColumns, c)
			cols = append(cols, c)
		}
	}

	merged := table.New(roster.IndexName(), cols...)

	inRoster := make(map[string]bool, roster.Len())
	for _, key := range roster.Keys() {
		inRoster[key] = true
		if !grades.HasKey(key) {
			stats.RosterOnly = append(stats.RosterOnly, key)
			continue
		}

		email := roster.Get(key, ColEmail).String()
		row := make([]table.Value, 0, len(cols))
		for _, c := range roster.Columns() {
			row = append(row, roster.Get(key, c))
		}
		for _, c := range grades.Columns() {
			v := grades.Get(key, c)
			if v.IsMissing() {
				// Post-merge fill: absent grades cells contribute zero.
				v = table.Number(0)
			}
			row = append(row, v)
		}
		if quizzes != nil {
			for _, c := range quizzes.Columns() {
				row = append(row, quizzes.Get(email, c))
			}
		}
		if err := merged.AppendRow(key, row); err != nil {
			return nil, nil, &ingest.SchemaMismatchError{Source: "merge", Err: err}
		}
	}

	for _, key := range grades.Keys() {
		if !inRoster[key] {
			stats.GradesOnly = append(stats.GradesOnly, key)
		}
	}

	stats.Students = merged.Len()
	return merged, stats, nil
}
