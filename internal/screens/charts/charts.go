package charts

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/gradebook/internal/report"
	"github.com/abhisek/gradebook/internal/router"
	"github.com/abhisek/gradebook/internal/screen"
	"github.com/abhisek/gradebook/internal/table"
	"github.com/abhisek/gradebook/internal/ui/layout"
	"github.com/abhisek/gradebook/internal/ui/theme"
)

const histogramBins = 10

// ChartsScreen shows the grade histogram and the final-score distribution.
type ChartsScreen struct {
	table     *table.Table
	counts    []report.GradeCount
	scores    []float64
	dist      report.DistStats
	allGrades bool
	errMsg    string
}

var _ screen.Screen = (*ChartsScreen)(nil)
var _ screen.KeyHintProvider = (*ChartsScreen)(nil)

// New creates a new ChartsScreen over a scored gradebook.
func New(t *table.Table) *ChartsScreen {
	s := &ChartsScreen{table: t}
	s.counts = report.Histogram(t, false)

	scores, dist, err := report.Distribution(t)
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.scores = scores
	s.dist = dist
	return s
}

func (s *ChartsScreen) Init() tea.Cmd {
	return nil
}

func (s *ChartsScreen) Title() string {
	return "Charts"
}

func (s *ChartsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "a", Description: "Toggle empty grades"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ChartsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "a":
		s.allGrades = !s.allGrades
		s.counts = report.Histogram(s.table, s.allGrades)
	}
	return s, nil
}

func (s *ChartsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString("  " + lipgloss.NewStyle().
		Foreground(theme.Primary).Bold(true).
		Render("GRADE COUNTS") + "\n\n")

	maxCount := 0
	for _, gc := range s.counts {
		if gc.Count > maxCount {
			maxCount = gc.Count
		}
	}
	barSpan := width - 16
	if barSpan < 10 {
		barSpan = 10
	}
	for _, gc := range s.counts {
		barLen := 0
		if maxCount > 0 {
			barLen = gc.Count * barSpan / maxCount
		}
		bar := lipgloss.NewStyle().
			Foreground(theme.GradeColor(gc.Grade)).
			Render(strings.Repeat("█", barLen))
		b.WriteString(fmt.Sprintf("  %s  %s %d\n", gc.Grade, bar, gc.Count))
	}

	b.WriteString("\n  " + lipgloss.NewStyle().
		Foreground(theme.Primary).Bold(true).
		Render("SCORE DISTRIBUTION") + "\n\n")

	bins := binScores(s.scores)
	maxBin := 0
	for _, n := range bins {
		if n > maxBin {
			maxBin = n
		}
	}
	for i, n := range bins {
		lo := i * 100 / histogramBins
		hi := lo + 100/histogramBins
		barLen := 0
		if maxBin > 0 {
			barLen = n * barSpan / maxBin
		}
		bar := lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Render(strings.Repeat("█", barLen))
		b.WriteString(fmt.Sprintf("  %3d-%3d%%  %s %d\n", lo, hi, bar, n))
	}

	b.WriteString("\n  " + theme.Hint.Render(fmt.Sprintf(
		"mean %.1f%%  median %.1f%%  stddev %.1f  min %.1f%%  max %.1f%%",
		s.dist.Mean*100, s.dist.Median*100, s.dist.StdDev*100,
		s.dist.Min*100, s.dist.Max*100)) + "\n")

	return b.String()
}

// binScores buckets 0..1 scores into fixed-width percent bins. Scores at
// or above 100% land in the final bin.
func binScores(scores []float64) []int {
	bins := make([]int, histogramBins)
	for _, sc := range scores {
		i := int(sc * histogramBins)
		if i >= histogramBins {
			i = histogramBins - 1
		}
		if i < 0 {
			i = 0
		}
		bins[i]++
	}
	return bins
}
