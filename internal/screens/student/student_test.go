package student

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/gradebook/internal/gradebook"
	"github.com/abhisek/gradebook/internal/table"
)

func scoredTable(t *testing.T) *table.Table {
	t.Helper()
	tbl := table.New("NetID",
		"First Name", "Last Name",
		gradebook.ExamScoreColumn(1), gradebook.ExamScoreColumn(2), gradebook.ExamScoreColumn(3),
		gradebook.ColHomeworkScore, gradebook.ColQuizScore,
		gradebook.ColFinalScore, gradebook.ColCeilingScore, gradebook.ColFinalGrade)

	err := tbl.AppendRow("aaa111", []table.Value{
		table.Text("Ada"), table.Text("Lovelace"),
		table.Number(0.9), table.Number(0.8), table.Number(0.95),
		table.Number(0.88), table.Number(0.92),
		table.Number(0.9), table.Number(90), table.Text("A"),
	})
	if err != nil {
		t.Fatalf("append row: %v", err)
	}
	return tbl
}

func TestLookupRendersReport(t *testing.T) {
	s := New(scoredTable(t))
	s.input.Model.SetValue("AAA111")

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if s.rep == nil {
		t.Fatal("expected a report after lookup")
	}
	view := s.View(100, 30)
	for _, want := range []string{"Ada Lovelace", "Grade A", "Ex1", "QZ"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestLookupByName(t *testing.T) {
	s := New(scoredTable(t))
	s.input.Model.SetValue("Ada Lovelace")

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if s.rep == nil {
		t.Fatal("expected a report after name lookup")
	}
	if s.rep.ID != "aaa111" {
		t.Errorf("expected report for aaa111, got %q", s.rep.ID)
	}
}

func TestUnknownStudentShowsError(t *testing.T) {
	s := New(scoredTable(t))
	s.input.Model.SetValue("zzz999")

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if s.rep != nil {
		t.Fatal("expected no report for unknown student")
	}
	if !strings.Contains(s.View(100, 30), "No student matching") {
		t.Error("expected not-found message in view")
	}
}

func TestEmptyLookupIsIgnored(t *testing.T) {
	s := New(scoredTable(t))

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if s.rep != nil || s.errMsg != "" {
		t.Error("expected enter on empty input to be a no-op")
	}
}
