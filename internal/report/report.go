// Package report provides read-only views over the scored gradebook
// table: the roster-wide summary, aggregate statistics, per-section
// partitions, and the single-student narrative report.
package report

import (
	"fmt"
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/abhisek/gradebook/internal/gradebook"
	"github.com/abhisek/gradebook/internal/table"
)

// summaryColumns is the identity + outcome projection shown on the
// summary view. Columns absent from the scored table (a grades export
// without name columns) are simply left out.
var summaryColumns = []string{
	"First Name",
	"Last Name",
	gradebook.ColEmail,
	gradebook.ColCeilingScore,
	gradebook.ColFinalGrade,
}

// Summary projects the scored table down to identity and outcome
// columns, keeping the identifier index.
func Summary(t *table.Table) *table.Table {
	var cols []string
	for _, c := range summaryColumns {
		if t.HasColumn(c) {
			cols = append(cols, c)
		}
	}

	out := table.New(t.IndexName(), cols...)
	for _, key := range t.Keys() {
		row := make([]table.Value, len(cols))
		for i, c := range cols {
			row[i] = t.Get(key, c)
		}
		// Keys come straight from the source table, so no duplicates.
		_ = out.AppendRow(key, row)
	}
	return out
}

// GradeCount is one bar of the grade histogram.
type GradeCount struct {
	Grade string
	Count int
}

// Histogram counts students per letter grade, sorted by grade label.
// Grades nobody earned appear only when includeEmpty is set.
func Histogram(t *table.Table, includeEmpty bool) []GradeCount {
	counts := make(map[string]int)
	for _, key := range t.Keys() {
		g := t.Get(key, gradebook.ColFinalGrade).String()
		if g != "" {
			counts[g]++
		}
	}

	var out []GradeCount
	if includeEmpty {
		for _, b := range gradebook.Bands {
			out = append(out, GradeCount{Grade: b.Label, Count: counts[b.Label]})
		}
		sort.Slice(out, func(i, j int) bool { return out[i].Grade < out[j].Grade })
		return out
	}

	for g, n := range counts {
		out = append(out, GradeCount{Grade: g, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Grade < out[j].Grade })
	return out
}

// DistStats summarizes the final-score distribution.
type DistStats struct {
	Mean   float64
	Median float64
	StdDev float64
	Min    float64
	Max    float64
	Q1     float64
	Q3     float64
}

// Distribution returns every final score in roster order together with
// aggregate statistics. The caller bins and renders; the core only
// supplies values.
func Distribution(t *table.Table) ([]float64, DistStats, error) {
	scores := finalScores(t)
	if len(scores) == 0 {
		return nil, DistStats{}, fmt.Errorf("no final scores: table has not been scored")
	}

	var ds DistStats
	var err error
	if ds.Mean, err = stats.Mean(scores); err != nil {
		return nil, DistStats{}, err
	}
	if ds.Median, err = stats.Median(scores); err != nil {
		return nil, DistStats{}, err
	}
	if ds.StdDev, err = stats.StandardDeviation(scores); err != nil {
		return nil, DistStats{}, err
	}
	if ds.Min, err = stats.Min(scores); err != nil {
		return nil, DistStats{}, err
	}
	if ds.Max, err = stats.Max(scores); err != nil {
		return nil, DistStats{}, err
	}
	q, err := stats.Quartile(scores)
	if err != nil {
		return nil, DistStats{}, err
	}
	ds.Q1, ds.Q3 = q.Q1, q.Q3

	return scores, ds, nil
}

// Sections partitions the scored table by section. Labels come back
// sorted; every partition is independently serializable.
func Sections(t *table.Table) ([]string, map[string]*table.Table) {
	parts := make(map[string]*table.Table)
	var labels []string
	for _, key := range t.Keys() {
		sec := t.Get(key, gradebook.ColSection).String()
		part, ok := parts[sec]
		if !ok {
			part = table.New(t.IndexName(), t.Columns()...)
			parts[sec] = part
			labels = append(labels, sec)
		}
		row := make([]table.Value, 0, len(t.Columns()))
		for _, c := range t.Columns() {
			row = append(row, t.Get(key, c))
		}
		_ = part.AppendRow(key, row)
	}
	sort.Strings(labels)
	return labels, parts
}

func finalScores(t *table.Table) []float64 {
	var scores []float64
	for _, key := range t.Keys() {
		v := t.Get(key, gradebook.ColFinalScore)
		if v.IsNumber() {
			scores = append(scores, v.Float())
		}
	}
	return scores
}
