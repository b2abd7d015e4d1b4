package table

import "strconv"

// Kind identifies what a cell holds.
type Kind int

const (
	KindMissing Kind = iota
	KindNumber
	KindText
)

// Value is a single table cell. Missing is a distinct state from zero:
// score averaging skips missing cells while weighting treats them as zero,
// and the two must never be conflated.
type Value struct {
	kind Kind
	num  float64
	text string
}

// Number returns a numeric cell value.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Text returns a textual cell value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Missing returns the absent cell value.
func Missing() Value {
	return Value{}
}

// Kind returns the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// IsMissing reports whether the cell is absent.
func (v Value) IsMissing() bool { return v.kind == KindMissing }

// IsNumber reports whether the cell holds a number.
func (v Value) IsNumber() bool { return v.kind == KindNumber }

// Float returns the numeric value, or 0 for text and missing cells.
func (v Value) Float() float64 {
	if v.kind == KindNumber {
		return v.num
	}
	return 0
}

// String renders the value for serialization. Numbers use the shortest
// representation that round-trips exactly through ParseFloat; missing
// cells render empty.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindText:
		return v.text
	default:
		return ""
	}
}

// Parse converts a raw cell string into a Value: empty is missing, a
// parseable float is a number, anything else is text.
func Parse(raw string) Value {
	if raw == "" {
		return Missing()
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return Number(f)
	}
	return Text(raw)
}
