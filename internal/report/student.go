package report

import (
	"fmt"
	"strings"

	"github.com/montanaflynn/stats"

	"github.com/abhisek/gradebook/internal/gradebook"
	"github.com/abhisek/gradebook/internal/table"
)

// StudentNotFoundError indicates the requested identifier is not in the
// scored table.
type StudentNotFoundError struct {
	ID string
}

func (e *StudentNotFoundError) Error() string {
	return fmt.Sprintf("student %q not found", e.ID)
}

// CategoryScore is one labeled per-category percentage for the bar
// visualization.
type CategoryScore struct {
	Label   string
	Percent float64
}

// StudentReport is the single-student view: identity, outcome, class
// context, and the five category percentages.
type StudentReport struct {
	ID         string
	FirstName  string
	LastName   string
	Grade      string
	Ceiling    int
	ClassAvg   float64 // percent
	Categories []CategoryScore
}

// ResolveID maps a lookup query to a student key: the identifier
// itself, or a case-insensitive "First Last" full-name match.
func ResolveID(t *table.Table, query string) (string, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if t.HasKey(q) {
		return q, true
	}
	for _, key := range t.Keys() {
		full := strings.TrimSpace(
			t.Get(key, "First Name").String() + " " + t.Get(key, "Last Name").String())
		if strings.ToLower(full) == q {
			return key, true
		}
	}
	return "", false
}

// ForStudent builds the report for one identifier. Category columns the
// table does not have read as 0 percent.
func ForStudent(t *table.Table, id string) (*StudentReport, error) {
	key := strings.ToLower(id)
	if !t.HasKey(key) {
		return nil, &StudentNotFoundError{ID: id}
	}

	scores := finalScores(t)
	classAvg := 0.0
	if len(scores) > 0 {
		classAvg, _ = stats.Mean(scores)
	}

	pct := func(col string) float64 {
		return t.Get(key, col).Float() * 100
	}

	return &StudentReport{
		ID:        key,
		FirstName: t.Get(key, "First Name").String(),
		LastName:  t.Get(key, "Last Name").String(),
		Grade:     t.Get(key, gradebook.ColFinalGrade).String(),
		Ceiling:   int(t.Get(key, gradebook.ColCeilingScore).Float()),
		ClassAvg:  classAvg * 100,
		Categories: []CategoryScore{
			{Label: "Ex1", Percent: pct(gradebook.ExamScoreColumn(1))},
			{Label: "Ex2", Percent: pct(gradebook.ExamScoreColumn(2))},
			{Label: "Ex3", Percent: pct(gradebook.ExamScoreColumn(3))},
			{Label: "HW", Percent: pct(gradebook.ColHomeworkScore)},
			{Label: "QZ", Percent: pct(gradebook.ColQuizScore)},
		},
	}, nil
}

// Text renders the fixed-layout narrative report: header lines, then
// one line per category with percentages to one decimal place.
func (r *StudentReport) Text() string {
	var b strings.Builder

	name := strings.TrimSpace(r.FirstName + " " + r.LastName)
	if name == "" {
		fmt.Fprintf(&b, "STUDENT: %s\n", r.ID)
	} else {
		fmt.Fprintf(&b, "STUDENT: %s (%s)\n", name, r.ID)
	}
	fmt.Fprintf(&b, "GRADE:   %s (%d%%)\n", r.Grade, r.Ceiling)
	fmt.Fprintf(&b, "AVG:     %.1f%%\n", r.ClassAvg)
	b.WriteString("-----------------------------------\n")
	fmt.Fprintf(&b, "Exam 1: %.1f%%\n", r.Categories[0].Percent)
	fmt.Fprintf(&b, "Exam 2: %.1f%%\n", r.Categories[1].Percent)
	fmt.Fprintf(&b, "Exam 3: %.1f%%\n", r.Categories[2].Percent)
	fmt.Fprintf(&b, "HW:     %.1f%%\n", r.Categories[3].Percent)
	fmt.Fprintf(&b, "Quiz:   %.1f%%\n", r.Categories[4].Percent)

	return b.String()
}
