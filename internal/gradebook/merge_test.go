package gradebook

import (
	"strings"
	"testing"

	"github.com/abhisek/gradebook/internal/ingest"
	"github.com/abhisek/gradebook/internal/table"
)

func mustRoster(t *testing.T, csv string) *table.Table {
	t.Helper()
	tbl, err := ingest.ReadRoster(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ReadRoster: %v", err)
	}
	return tbl
}

func mustGrades(t *testing.T, csv string) *table.Table {
	t.Helper()
	tbl, err := ingest.ReadGrades(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ReadGrades: %v", err)
	}
	return tbl
}

func mustQuiz(t *testing.T, csv, filename string) *table.Table {
	t.Helper()
	tbl, err := ingest.ReadQuiz(strings.NewReader(csv), filename)
	if err != nil {
		t.Fatalf("ReadQuiz: %v", err)
	}
	return tbl
}

func TestMerge_InnerJoinCardinality(t *testing.T) {
	roster := mustRoster(t, `NetID,Section,Email Address
aaa111,1,aaa111@univ.edu
bbb222,1,bbb222@univ.edu
ccc333,2,ccc333@univ.edu
`)
	grades := mustGrades(t, `SID,Exam 1,Exam 1 - Max Points
aaa111,45,50
bbb222,40,50
ddd444,30,50
`)

	merged, stats, err := Merge(roster, grades, nil)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}

	keys := merged.Keys()
	if len(keys) != 2 || keys[0] != "aaa111" || keys[1] != "bbb222" {
		t.Errorf("merged keys = %v, want [aaa111 bbb222]", keys)
	}
	if len(stats.RosterOnly) != 1 || stats.RosterOnly[0] != "ccc333" {
		t.Errorf("RosterOnly = %v, want [ccc333]", stats.RosterOnly)
	}
	if len(stats.GradesOnly) != 1 || stats.GradesOnly[0] != "ddd444" {
		t.Errorf("GradesOnly = %v, want [ddd444]", stats.GradesOnly)
	}
	if stats.Students != 2 {
		t.Errorf("Students = %d, want 2", stats.Students)
	}
}

func TestMerge_LeftJoinQuizzesByEmail(t *testing.T) {
	roster := mustRoster(t, `NetID,Section,Email Address
aaa111,1,AAA111@univ.edu
bbb222,1,bbb222@univ.edu
`)
	grades := mustGrades(t, `SID,Exam 1
aaa111,45
bbb222,40
`)
	quiz := mustQuiz(t, "Email,Grade\naaa111@univ.edu,9\n", "quiz_1.csv")
	quizzes := ingest.CombineQuizzes([]*table.Table{quiz}, nil)

	merged, _, err := Merge(roster, grades, quizzes)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}

	// Both students survive the left join even though bbb222 has no quiz.
	if merged.Len() != 2 {
		t.Fatalf("merged rows = %d, want 2", merged.Len())
	}
	if got := merged.Get("aaa111", "Quiz 1").Float(); got != 9 {
		t.Errorf("Quiz 1 for aaa111 = %f, want 9", got)
	}
	// Quiz absence stays missing after the merge; only scoring decides
	// what a missing quiz means.
	if got := merged.Get("bbb222", "Quiz 1"); !got.IsMissing() {
		t.Errorf("Quiz 1 for bbb222 = %v, want missing", got)
	}
}

func TestMerge_FillsGradesGapsToZero(t *testing.T) {
	roster := mustRoster(t, `NetID,Section,Email Address
aaa111,1,aaa111@univ.edu
bbb222,1,bbb222@univ.edu
`)
	grades := mustGrades(t, `SID,Exam 1,Exam 1 - Max Points
aaa111,45,50
bbb222,40,
`)

	merged, _, err := Merge(roster, grades, nil)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}

	v := merged.Get("bbb222", "Exam 1 - Max Points")
	if !v.IsNumber() || v.Float() != 0 {
		t.Errorf("empty grades cell = %v, want 0 after fill", v)
	}
}

func TestMerge_ColumnCollision(t *testing.T) {
	roster := mustRoster(t, "NetID,Section,Email Address\naaa111,1,a@u.edu\n")
	grades := mustGrades(t, "SID,Section\naaa111,2\n")

	_, _, err := Merge(roster, grades, nil)
	if err == nil {
		t.Fatal("expected collision error for duplicate Section column")
	}
}
