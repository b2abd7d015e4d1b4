package charts

import (
	"strings"
	"testing"

	"github.com/abhisek/gradebook/internal/gradebook"
	"github.com/abhisek/gradebook/internal/table"
)

func TestBinScores(t *testing.T) {
	bins := binScores([]float64{0.0, 0.05, 0.55, 0.95, 1.0, 1.2})

	if bins[0] != 2 {
		t.Errorf("expected 2 scores in the first bin, got %d", bins[0])
	}
	if bins[5] != 1 {
		t.Errorf("expected 1 score in the 50-60 bin, got %d", bins[5])
	}
	// 100% and above land in the last bin rather than overflowing.
	if bins[9] != 3 {
		t.Errorf("expected 3 scores in the last bin, got %d", bins[9])
	}
}

func TestViewShowsHistogramAndStats(t *testing.T) {
	tbl := table.New("NetID", gradebook.ColFinalScore, gradebook.ColFinalGrade)
	rows := []struct {
		key   string
		score float64
		grade string
	}{
		{"aaa111", 0.95, "A"},
		{"bbb222", 0.85, "B"},
		{"ccc333", 0.82, "B"},
	}
	for _, r := range rows {
		if err := tbl.AppendRow(r.key, []table.Value{
			table.Number(r.score), table.Text(r.grade),
		}); err != nil {
			t.Fatalf("append row: %v", err)
		}
	}

	s := New(tbl)
	view := s.View(100, 40)

	for _, want := range []string{"GRADE COUNTS", "SCORE DISTRIBUTION", "mean", "median"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestUnscoredTableShowsError(t *testing.T) {
	tbl := table.New("NetID", "Exam 1")
	if err := tbl.AppendRow("aaa111", []table.Value{table.Number(40)}); err != nil {
		t.Fatalf("append row: %v", err)
	}

	s := New(tbl)
	view := s.View(100, 40)

	if !strings.Contains(view, "Error") {
		t.Errorf("expected error view for unscored table, got:\n%s", view)
	}
}
