package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/gradebook/internal/ui/theme"
)

// ScoreBar displays a labeled horizontal bar for a 0..1 score fraction.
// The fill color tracks the fraction: green, yellow, red.
type ScoreBar struct {
	Label    string
	Fraction float64
	Width    int
}

// NewScoreBar creates a new score bar.
func NewScoreBar(label string, fraction float64, width int) ScoreBar {
	return ScoreBar{
		Label:    label,
		Fraction: fraction,
		Width:    width,
	}
}

// View renders the score bar.
func (s ScoreBar) View() string {
	var result string

	if s.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(s.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 7 // "  100%"

	barWidth := s.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	frac := s.Fraction
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	filled := int(float64(barWidth) * frac)
	if filled > barWidth {
		filled = barWidth
	}
	empty := barWidth - filled

	filledStr := lipgloss.NewStyle().
		Background(theme.ScoreColor(frac)).
		Render(strings.Repeat(" ", filled))

	emptyStr := lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	result += filledStr + emptyStr

	result += lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %d%%", int(s.Fraction*100)))

	return result
}
