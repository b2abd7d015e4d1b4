package gradebook

// Band is one letter-grade threshold. Bands are evaluated highest
// threshold first; the first one the ceiling score meets or exceeds
// wins. Lookup depends on the slice ordering.
type Band struct {
	Threshold int
	Label     string
}

// Bands is the grading scale, highest first. Lower bounds are closed:
// a ceiling score of exactly 90 is an A.
var Bands = []Band{
	{Threshold: 90, Label: "A"},
	{Threshold: 80, Label: "B"},
	{Threshold: 70, Label: "C"},
	{Threshold: 60, Label: "D"},
	{Threshold: 0, Label: "F"},
}

// Letter maps a ceiling score to its letter grade. Pathological scores
// below zero (negative weights) fall through every band and land on F;
// there is no grade lower than failing.
func Letter(ceiling int) string {
	for _, b := range Bands {
		if ceiling >= b.Threshold {
			return b.Label
		}
	}
	return "F"
}
