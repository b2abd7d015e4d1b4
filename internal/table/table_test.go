package table

import "testing"

func TestAppendRow_DuplicateKey(t *testing.T) {
	tbl := New("NetID", "Section")
	if err := tbl.AppendRow("abc123", []Value{Text("A")}); err != nil {
		t.Fatalf("AppendRow: %v", err)
	}
	if err := tbl.AppendRow("abc123", []Value{Text("B")}); err == nil {
		t.Error("expected duplicate key error, got nil")
	}
}

func TestAppendRow_CellCountMismatch(t *testing.T) {
	tbl := New("NetID", "Section", "Email Address")
	if err := tbl.AppendRow("abc123", []Value{Text("A")}); err == nil {
		t.Error("expected cell count error, got nil")
	}
}

func TestAddColumn_BackfillsMissing(t *testing.T) {
	tbl := New("NetID", "Exam 1")
	_ = tbl.AppendRow("abc123", []Value{Number(40)})
	tbl.AddColumn("Quiz 1")

	v := tbl.Get("abc123", "Quiz 1")
	if !v.IsMissing() {
		t.Errorf("new column cell = %v, want missing", v)
	}
}

func TestGet_UnknownKeyOrColumn(t *testing.T) {
	tbl := New("NetID", "Exam 1")
	_ = tbl.AppendRow("abc123", []Value{Number(40)})

	if v := tbl.Get("nobody", "Exam 1"); !v.IsMissing() {
		t.Errorf("unknown key = %v, want missing", v)
	}
	if v := tbl.Get("abc123", "Exam 9"); !v.IsMissing() {
		t.Errorf("unknown column = %v, want missing", v)
	}
}

func TestSet_CreatesColumnOnDemand(t *testing.T) {
	tbl := New("NetID")
	_ = tbl.AppendRow("abc123", nil)
	tbl.Set("abc123", "Final Score", Number(0.9))

	if !tbl.HasColumn("Final Score") {
		t.Fatal("Set did not create column")
	}
	if got := tbl.Get("abc123", "Final Score").Float(); got != 0.9 {
		t.Errorf("cell = %f, want 0.9", got)
	}
}

func TestColumnMax_SkipsMissingAndText(t *testing.T) {
	tbl := New("Email", "Quiz 1")
	_ = tbl.AppendRow("a@x.edu", []Value{Number(7)})
	_ = tbl.AppendRow("b@x.edu", []Value{Missing()})
	_ = tbl.AppendRow("c@x.edu", []Value{Number(9)})

	max, ok := tbl.ColumnMax("Quiz 1")
	if !ok || max != 9 {
		t.Errorf("ColumnMax = (%f, %v), want (9, true)", max, ok)
	}
}

func TestColumnMax_NoNumericValues(t *testing.T) {
	tbl := New("Email", "Quiz 1")
	_ = tbl.AppendRow("a@x.edu", []Value{Missing()})

	if _, ok := tbl.ColumnMax("Quiz 1"); ok {
		t.Error("ColumnMax ok = true, want false for all-missing column")
	}
}

func TestValue_Parse(t *testing.T) {
	tests := []struct {
		raw  string
		kind Kind
	}{
		{"", KindMissing},
		{"42", KindNumber},
		{"0.875", KindNumber},
		{"-3.5", KindNumber},
		{"Doe", KindText},
	}
	for _, tt := range tests {
		if got := Parse(tt.raw).Kind(); got != tt.kind {
			t.Errorf("Parse(%q).Kind() = %v, want %v", tt.raw, got, tt.kind)
		}
	}
}

func TestValue_StringRoundTrip(t *testing.T) {
	for _, f := range []float64{0, 0.1, 0.891, 45.0 / 50.0, 1e-9} {
		v := Number(f)
		back := Parse(v.String())
		if !back.IsNumber() || back.Float() != f {
			t.Errorf("round trip of %v lost precision: %q -> %v", f, v.String(), back.Float())
		}
	}
}
