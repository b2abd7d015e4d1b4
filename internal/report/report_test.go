package report

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/abhisek/gradebook/internal/gradebook"
	"github.com/abhisek/gradebook/internal/table"
)

// scoredFixture builds a small scored table: three students across two
// sections with final grades A, B, B.
func scoredFixture(t *testing.T) *table.Table {
	t.Helper()
	tbl := table.New("NetID",
		"First Name", "Last Name", gradebook.ColSection, gradebook.ColEmail,
		"Exam 1", "Exam 1 - Max Points")

	rows := []struct {
		key   string
		cells []table.Value
	}{
		{"aaa111", []table.Value{
			table.Text("Ada"), table.Text("Alpha"), table.Text("1"), table.Text("aaa111@univ.edu"),
			table.Number(46), table.Number(50)}},
		{"bbb222", []table.Value{
			table.Text("Bea"), table.Text("Beta"), table.Text("1"), table.Text("bbb222@univ.edu"),
			table.Number(40), table.Number(50)}},
		{"ccc333", []table.Value{
			table.Text("Cal"), table.Text("Gamma"), table.Text("2"), table.Text("ccc333@univ.edu"),
			table.Number(42), table.Number(50)}},
	}
	for _, r := range rows {
		if err := tbl.AppendRow(r.key, r.cells); err != nil {
			t.Fatalf("AppendRow: %v", err)
		}
	}
	if err := gradebook.Score(tbl, gradebook.Weights{"Exam 1 Score": 1.0}); err != nil {
		t.Fatalf("Score: %v", err)
	}
	return tbl
}

func TestSummary_Projection(t *testing.T) {
	sum := Summary(scoredFixture(t))

	want := []string{"First Name", "Last Name", "Email Address", "Ceiling Score", "Final Grade"}
	got := sum.Columns()
	if len(got) != len(want) {
		t.Fatalf("columns = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("columns = %v, want %v", got, want)
		}
	}
	if sum.Len() != 3 {
		t.Errorf("rows = %d, want 3", sum.Len())
	}
	if g := sum.Get("aaa111", "Final Grade").String(); g != "A" {
		t.Errorf("grade = %q, want A", g)
	}
}

func TestSummary_SkipsAbsentColumns(t *testing.T) {
	tbl := table.New("NetID", gradebook.ColEmail, "Exam 1", "Exam 1 - Max Points")
	_ = tbl.AppendRow("aaa111", []table.Value{
		table.Text("aaa111@univ.edu"), table.Number(45), table.Number(50)})
	_ = gradebook.Score(tbl, gradebook.Weights{"Exam 1 Score": 1.0})

	sum := Summary(tbl)
	if sum.HasColumn("First Name") {
		t.Error("projection invented a First Name column")
	}
}

func TestHistogram_ObservedOnly(t *testing.T) {
	h := Histogram(scoredFixture(t), false)

	// 46/50=0.92→A, 40/50=0.80→B, 42/50=0.84→B... ceiling(84)=84→B.
	if len(h) != 2 {
		t.Fatalf("histogram = %v, want two bars (A, B)", h)
	}
	if h[0].Grade != "A" || h[0].Count != 1 {
		t.Errorf("bar 0 = %v, want A:1", h[0])
	}
	if h[1].Grade != "B" || h[1].Count != 2 {
		t.Errorf("bar 1 = %v, want B:2", h[1])
	}
}

func TestHistogram_IncludeEmpty(t *testing.T) {
	h := Histogram(scoredFixture(t), true)

	if len(h) != 5 {
		t.Fatalf("histogram = %v, want all five grades", h)
	}
	for _, bar := range h {
		switch bar.Grade {
		case "C", "D", "F":
			if bar.Count != 0 {
				t.Errorf("%s count = %d, want 0", bar.Grade, bar.Count)
			}
		}
	}
}

func TestDistribution_Stats(t *testing.T) {
	scores, ds, err := Distribution(scoredFixture(t))
	if err != nil {
		t.Fatalf("Distribution: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("scores = %v, want 3 values", scores)
	}
	wantMean := (0.92 + 0.80 + 0.84) / 3
	if math.Abs(ds.Mean-wantMean) > 1e-9 {
		t.Errorf("mean = %f, want %f", ds.Mean, wantMean)
	}
	if ds.Min != 0.80 || ds.Max != 0.92 {
		t.Errorf("min/max = %f/%f, want 0.80/0.92", ds.Min, ds.Max)
	}
}

func TestDistribution_UnscoredTable(t *testing.T) {
	tbl := table.New("NetID", "Exam 1")
	_ = tbl.AppendRow("aaa111", []table.Value{table.Number(45)})

	if _, _, err := Distribution(tbl); err == nil {
		t.Error("expected error for unscored table")
	}
}

func TestSections_Partition(t *testing.T) {
	labels, parts := Sections(scoredFixture(t))

	if len(labels) != 2 || labels[0] != "1" || labels[1] != "2" {
		t.Fatalf("labels = %v, want [1 2]", labels)
	}
	if parts["1"].Len() != 2 || parts["2"].Len() != 1 {
		t.Errorf("partition sizes = %d/%d, want 2/1", parts["1"].Len(), parts["2"].Len())
	}
	if !parts["2"].HasKey("ccc333") {
		t.Error("ccc333 missing from section 2 partition")
	}
}

func TestForStudent_ReportFields(t *testing.T) {
	// Lookup is case-insensitive, matching the canonical identifier.
	r, err := ForStudent(scoredFixture(t), "AAA111")
	if err != nil {
		t.Fatalf("ForStudent: %v", err)
	}

	if r.Grade != "A" || r.Ceiling != 92 {
		t.Errorf("grade/ceiling = %s/%d, want A/92", r.Grade, r.Ceiling)
	}
	if len(r.Categories) != 5 {
		t.Fatalf("categories = %v, want 5 entries", r.Categories)
	}
	if math.Abs(r.Categories[0].Percent-92.0) > 1e-9 {
		t.Errorf("Ex1 = %f, want 92.0", r.Categories[0].Percent)
	}
	// Exam 2 has no column at all: 0 percent, not an error.
	if r.Categories[1].Percent != 0 {
		t.Errorf("Ex2 = %f, want 0", r.Categories[1].Percent)
	}
}

func TestForStudent_NotFound(t *testing.T) {
	_, err := ForStudent(scoredFixture(t), "zzz999")

	var nf *StudentNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want StudentNotFoundError", err)
	}
}

func TestResolveID(t *testing.T) {
	tbl := scoredFixture(t)

	cases := []struct {
		query string
		want  string
		ok    bool
	}{
		{"aaa111", "aaa111", true},
		{"AAA111", "aaa111", true},
		{"Bea Beta", "bbb222", true},
		{"cal gamma", "ccc333", true},
		{"  Ada Alpha  ", "aaa111", true},
		{"Ada", "", false},
		{"zzz999", "", false},
	}
	for _, c := range cases {
		got, ok := ResolveID(tbl, c.query)
		if ok != c.ok || got != c.want {
			t.Errorf("ResolveID(%q) = (%q, %v), want (%q, %v)", c.query, got, ok, c.want, c.ok)
		}
	}
}

func TestStudentReport_TextLayout(t *testing.T) {
	r, err := ForStudent(scoredFixture(t), "aaa111")
	if err != nil {
		t.Fatalf("ForStudent: %v", err)
	}

	text := r.Text()
	wantLines := []string{
		"STUDENT: Ada Alpha (aaa111)",
		"GRADE:   A (92%)",
		"Exam 1: 92.0%",
		"Exam 2: 0.0%",
		"HW:     0.0%",
		"Quiz:   0.0%",
	}
	for _, line := range wantLines {
		if !strings.Contains(text, line) {
			t.Errorf("report missing line %q:\n%s", line, text)
		}
	}
}
