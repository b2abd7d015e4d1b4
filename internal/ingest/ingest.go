// Package ingest normalizes raw CSV sources into tables keyed by a
// canonical identifier. Each source type keeps only the columns the
// pipeline cares about; identifiers and emails are case-folded on the
// way in.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/abhisek/gradebook/internal/table"
)

// Roster column names.
const (
	colNetID   = "NetID"
	colSection = "Section"
	colEmail   = "Email Address"
)

// Grades column names.
const colSID = "SID"

// Quiz column names.
const (
	colQuizEmail = "Email"
	colQuizGrade = "Grade"
)

// submissionMarker flags raw submission metadata columns in the grades
// export; any column containing it is dropped.
const submissionMarker = "Submission"

// ReadRoster parses the roster source. The result is indexed by the
// lowercased NetID and retains Section and the lowercased Email Address.
func ReadRoster(r io.Reader) (*table.Table, error) {
	const source = "roster"
	header, rows, err := readAll(r, source)
	if err != nil {
		return nil, err
	}

	idx, err := columnIndex(header, source, colNetID, colSection, colEmail)
	if err != nil {
		return nil, err
	}

	t := table.New(colNetID, colSection, colEmail)
	for _, rec := range rows {
		key := strings.ToLower(rec[idx[colNetID]])
		cells := []table.Value{
			table.Text(rec[idx[colSection]]),
			table.Text(strings.ToLower(rec[idx[colEmail]])),
		}
		if err := t.AppendRow(key, cells); err != nil {
			return nil, &SchemaMismatchError{Source: source, Err: err}
		}
	}
	return t, nil
}

// ReadGrades parses the grades export. The result is indexed by the
// lowercased SID; every column whose name contains "Submission" is
// dropped, everything else is kept as-is. Cells are typed by inference:
// empty is missing, parseable floats are numbers, the rest is text.
func ReadGrades(r io.Reader) (*table.Table, error) {
	const source = "grades"
	header, rows, err := readAll(r, source)
	if err != nil {
		return nil, err
	}

	idx, err := columnIndex(header, source, colSID)
	if err != nil {
		return nil, err
	}
	sidPos := idx[colSID]

	var keep []int
	var cols []string
	for i, name := range header {
		if i == sidPos || strings.Contains(name, submissionMarker) {
			continue
		}
		keep = append(keep, i)
		cols = append(cols, name)
	}

	t := table.New(colSID, cols...)
	for _, rec := range rows {
		key := strings.ToLower(rec[sidPos])
		cells := make([]table.Value, len(keep))
		for j, i := range keep {
			cells[j] = table.Parse(rec[i])
		}
		if err := t.AppendRow(key, cells); err != nil {
			return nil, &SchemaMismatchError{Source: source, Err: err}
		}
	}
	return t, nil
}

// ReadQuiz parses one quiz source. The result is indexed by the
// lowercased Email and holds a single numeric column named after the
// originating file (see QuizName).
func ReadQuiz(r io.Reader, filename string) (*table.Table, error) {
	source := fmt.Sprintf("quiz %s", filename)
	header, rows, err := readAll(r, source)
	if err != nil {
		return nil, err
	}

	idx, err := columnIndex(header, source, colQuizEmail, colQuizGrade)
	if err != nil {
		return nil, err
	}

	name := QuizName(filename)
	t := table.New(colQuizEmail, name)
	for _, rec := range rows {
		key := strings.ToLower(rec[idx[colQuizEmail]])
		raw := rec[idx[colQuizGrade]]
		score, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, &SchemaMismatchError{
				Source: source,
				Column: colQuizGrade,
				Err:    fmt.Errorf("cell %q is not numeric", raw),
			}
		}
		if err := t.AppendRow(key, []table.Value{table.Number(score)}); err != nil {
			return nil, &SchemaMismatchError{Source: source, Err: err}
		}
	}
	return t, nil
}

// QuizName derives a human-readable quiz label from a file name: strip
// the directory and ".csv" suffix, lowercase, title-case each
// underscore-separated word, and keep the first two words joined by a
// space. "data/quiz_1_results.csv" becomes "Quiz 1". Two files that
// collapse to the same label collide; CombineQuizzes keeps the later
// one.
func QuizName(filename string) string {
	base := filename
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	base = strings.ToLower(base)
	base = strings.TrimSuffix(base, ".csv")

	words := strings.Split(base, "_")
	if len(words) > 2 {
		words = words[:2]
	}
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// CombineQuizzes merges per-quiz tables into one table with a column per
// quiz, aligned by email. Students absent from a given quiz file keep a
// missing cell for that column; the fill to zero only ever happens at
// weighting time. Duplicate quiz names overwrite the earlier column and
// are reported through collide, when non-nil.
func CombineQuizzes(quizzes []*table.Table, collide func(name string)) *table.Table {
	combined := table.New(colQuizEmail)
	for _, q := range quizzes {
		cols := q.Columns()
		for _, c := range cols {
			if combined.HasColumn(c) {
				// Name collision: the later file replaces the column wholesale.
				if collide != nil {
					collide(c)
				}
				for _, email := range combined.Keys() {
					combined.Set(email, c, table.Missing())
				}
			}
			combined.AddColumn(c)
		}
		for _, email := range q.Keys() {
			if !combined.HasKey(email) {
				// AppendRow only fails on duplicates, which HasKey rules out.
				_ = combined.AppendRow(email, make([]table.Value, len(combined.Columns())))
			}
			for _, c := range cols {
				combined.Set(email, c, q.Get(email, c))
			}
		}
	}
	return combined
}

// readAll slurps a CSV source: header plus records, with ragged rows
// rejected by the csv reader itself.
func readAll(r io.Reader, source string) ([]string, [][]string, error) {
	cr := csv.NewReader(r)
	all, err := cr.ReadAll()
	if err != nil {
		return nil, nil, &SchemaMismatchError{Source: source, Err: err}
	}
	if len(all) == 0 {
		return nil, nil, &SchemaMismatchError{Source: source, Err: fmt.Errorf("empty input")}
	}
	return all[0], all[1:], nil
}

// columnIndex locates required columns in a header, failing with
// MissingColumnError on the first absent one.
func columnIndex(header []string, source string, required ...string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		if _, ok := idx[name]; !ok {
			idx[name] = i
		}
	}
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			return nil, &MissingColumnError{Source: source, Column: name}
		}
	}
	return idx, nil
}
