package gradebook

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/abhisek/gradebook/internal/ingest"
	"github.com/abhisek/gradebook/internal/table"
)

// Derived column names added by Score.
const (
	ColHomeworkScore = "Homework Score"
	ColQuizScore     = "Quiz Score"
	ColFinalScore    = "Final Score"
	ColCeilingScore  = "Ceiling Score"
	ColFinalGrade    = "Final Grade"
)

// ExamScoreColumn returns the derived score column name for exam n.
func ExamScoreColumn(n int) string {
	return fmt.Sprintf("Exam %d Score", n)
}

// maxExams bounds the per-exam score loop, matching the grades exports
// this pipeline consumes.
const maxExams = 3

var (
	homeworkRawPattern = regexp.MustCompile(`^Homework \d{1,2}$`)
	homeworkMaxPattern = regexp.MustCompile(`^Homework \d{1,2} - Max Points$`)
)

// Weights maps a category-score column name to its contribution toward
// the final score. Keys that match no column are skipped silently; the
// Scorer never checks that weights sum to one; that is the caller's
// job.
type Weights map[string]float64

// Score extends the merged table in place with per-category fractional
// scores, the weighted final score, the ceiling score, and the letter
// grade.
func Score(t *table.Table, weights Weights) error {
	if err := scoreExams(t); err != nil {
		return err
	}
	if err := scoreHomework(t); err != nil {
		return err
	}
	if err := scoreQuizzes(t); err != nil {
		return err
	}
	return scoreFinal(t, weights)
}

// scoreExams computes Exam N Score = Exam N / Exam N - Max Points for
// each exam that carries both columns. Exams without a max-points
// column produce no score column at all, so they can never be weighted.
func scoreExams(t *table.Table) error {
	for n := 1; n <= maxExams; n++ {
		raw := fmt.Sprintf("Exam %d", n)
		max := fmt.Sprintf("Exam %d - Max Points", n)
		if !t.HasColumn(raw) || !t.HasColumn(max) {
			continue
		}
		scoreCol := ExamScoreColumn(n)
		for _, key := range t.Keys() {
			rawV, err := numericCell(t, key, raw)
			if err != nil {
				return err
			}
			maxV, err := numericCell(t, key, max)
			if err != nil {
				return err
			}
			t.Set(key, scoreCol, table.Number(ratio(rawV, maxV)))
		}
	}
	return nil
}

// scoreHomework sums raw homework totals and max points row-wise and
// divides. A single combined score: max points only need to balance in
// aggregate. With no homework columns at all the 0/0 case is defined
// as 0.
func scoreHomework(t *table.Table) error {
	var rawCols, maxCols []string
	for _, c := range t.Columns() {
		switch {
		case homeworkRawPattern.MatchString(c):
			rawCols = append(rawCols, c)
		case homeworkMaxPattern.MatchString(c):
			maxCols = append(maxCols, c)
		}
	}

	for _, key := range t.Keys() {
		var rawSum, maxSum float64
		for _, c := range rawCols {
			v, err := numericCell(t, key, c)
			if err != nil {
				return err
			}
			rawSum += v
		}
		for _, c := range maxCols {
			v, err := numericCell(t, key, c)
			if err != nil {
				return err
			}
			maxSum += v
		}
		t.Set(key, ColHomeworkScore, table.Number(ratio(rawSum, maxSum)))
	}
	return nil
}

// scoreQuizzes normalizes every quiz column by its own observed
// maximum, then averages the fractions per student, skipping missing
// entries: a quiz never taken is not a quiz failed. Students with no
// quiz entries keep a missing Quiz Score, which weighting later treats
// as zero without writing the zero back.
func scoreQuizzes(t *table.Table) error {
	var quizCols []string
	for _, c := range t.Columns() {
		if strings.HasPrefix(c, "Quiz") {
			quizCols = append(quizCols, c)
		}
	}

	if len(quizCols) == 0 {
		for _, key := range t.Keys() {
			t.Set(key, ColQuizScore, table.Number(0))
		}
		return nil
	}

	// Quiz files declare no maximum; the best observed score defines it.
	colMax := make(map[string]float64, len(quizCols))
	for _, c := range quizCols {
		if max, ok := t.ColumnMax(c); ok && max > 0 {
			colMax[c] = max
		}
	}

	for _, key := range t.Keys() {
		var sum float64
		var n int
		for _, c := range quizCols {
			max, ok := colMax[c]
			if !ok {
				continue
			}
			v := t.Get(key, c)
			if v.IsMissing() {
				continue
			}
			if !v.IsNumber() {
				return nonNumericCell(key, c, v)
			}
			sum += v.Float() / max
			n++
		}
		if n == 0 {
			t.Set(key, ColQuizScore, table.Missing())
			continue
		}
		t.Set(key, ColQuizScore, table.Number(sum/float64(n)))
	}
	return nil
}

// scoreFinal applies the weight configuration over the categories that
// exist as columns, treating missing category cells as zero for the
// weighting only, then derives the ceiling score and letter grade.
func scoreFinal(t *table.Table, weights Weights) error {
	var applied []string
	for _, c := range t.Columns() {
		if _, ok := weights[c]; ok {
			applied = append(applied, c)
		}
	}

	for _, key := range t.Keys() {
		var final float64
		for _, c := range applied {
			v := t.Get(key, c)
			if v.IsMissing() {
				continue
			}
			if !v.IsNumber() {
				return nonNumericCell(key, c, v)
			}
			final += v.Float() * weights[c]
		}
		ceiling := int(math.Ceil(final * 100))

		t.Set(key, ColFinalScore, table.Number(final))
		t.Set(key, ColCeilingScore, table.Number(float64(ceiling)))
		t.Set(key, ColFinalGrade, table.Text(Letter(ceiling)))
	}
	return nil
}

// ratio divides raw by max, defining the zero-max (and 0/0) case as 0
// rather than an overflow to the student's detriment.
func ratio(raw, max float64) float64 {
	if max == 0 {
		return 0
	}
	return raw / max
}

// numericCell fetches a cell that the scorer requires to be numeric.
// Missing cells read as zero here; the post-merge fill has already run
// by the time Score is called.
func numericCell(t *table.Table, key, col string) (float64, error) {
	v := t.Get(key, col)
	if v.IsMissing() {
		return 0, nil
	}
	if !v.IsNumber() {
		return 0, nonNumericCell(key, col, v)
	}
	return v.Float(), nil
}

func nonNumericCell(key, col string, v table.Value) error {
	return &ingest.SchemaMismatchError{
		Source: "merged table",
		Column: col,
		Err:    fmt.Errorf("cell %q for student %q is not numeric", v.String(), key),
	}
}
