package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/abhisek/gradebook/internal/gradebook"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	roster := writeFile(t, dir, "roster.csv", `NetID,Section,Email Address
AAA111,1,aaa111@univ.edu
bbb222,2,BBB222@univ.edu
`)
	grades := writeFile(t, dir, "grades.csv", `SID,Exam 1,Exam 1 - Max Points
aaa111,45,50
bbb222,25,50
`)
	quiz := writeFile(t, dir, "quiz_1.csv", `Email,Grade
aaa111@univ.edu,10
bbb222@univ.edu,5
`)

	res, err := Run(Inputs{
		RosterPath: roster,
		GradesPath: grades,
		QuizPaths:  []string{quiz},
	}, gradebook.Weights{
		"Exam 1 Score":         0.5,
		gradebook.ColQuizScore: 0.5,
	}, zerolog.Nop())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if res.RunID == "" {
		t.Error("missing run ID")
	}
	if res.Table.Len() != 2 {
		t.Fatalf("rows = %d, want 2", res.Table.Len())
	}

	// aaa111: exam 0.9, quiz 10/10 = 1.0 → 0.95 → ceiling 95 → A.
	if got := res.Table.Get("aaa111", gradebook.ColFinalGrade).String(); got != "A" {
		t.Errorf("aaa111 grade = %q, want A", got)
	}
	// bbb222: exam 0.5, quiz 0.5 → 0.5 → ceiling 50 → F.
	if got := res.Table.Get("bbb222", gradebook.ColFinalGrade).String(); got != "F" {
		t.Errorf("bbb222 grade = %q, want F", got)
	}
}

func TestRun_MissingRosterColumnAborts(t *testing.T) {
	dir := t.TempDir()
	roster := writeFile(t, dir, "roster.csv", "NetID,Section\naaa111,1\n")
	grades := writeFile(t, dir, "grades.csv", "SID,Exam 1\naaa111,45\n")

	_, err := Run(Inputs{RosterPath: roster, GradesPath: grades}, nil, zerolog.Nop())
	if err == nil {
		t.Fatal("expected error for roster without Email Address")
	}
	// The error must name the offending column for the user.
	if !strings.Contains(err.Error(), "Email Address") {
		t.Errorf("error %q does not name the missing column", err)
	}
}
