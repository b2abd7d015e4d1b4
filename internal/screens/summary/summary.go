package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/gradebook/internal/gradebook"
	"github.com/abhisek/gradebook/internal/report"
	"github.com/abhisek/gradebook/internal/router"
	"github.com/abhisek/gradebook/internal/screen"
	"github.com/abhisek/gradebook/internal/table"
	"github.com/abhisek/gradebook/internal/ui/layout"
	"github.com/abhisek/gradebook/internal/ui/theme"
)

const colWidth = 16

// SummaryScreen lists every student with their final outcome.
type SummaryScreen struct {
	view   *table.Table
	offset int
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen over a scored gradebook.
func New(t *table.Table) *SummaryScreen {
	return &SummaryScreen{view: report.Summary(t)}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.offset > 0 {
			s.offset--
		}
	case "down", "j":
		if s.offset < s.view.Len()-1 {
			s.offset++
		}
	case "home", "g":
		s.offset = 0
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	// Header row.
	cells := []string{pad(s.view.IndexName())}
	for _, c := range s.view.Columns() {
		cells = append(cells, pad(c))
	}
	b.WriteString("  " + lipgloss.NewStyle().
		Foreground(theme.Primary).Bold(true).
		Render(strings.Join(cells, " ")) + "\n")
	b.WriteString("  " + lipgloss.NewStyle().
		Foreground(theme.Border).
		Render(strings.Repeat("─", (colWidth+1)*len(cells))) + "\n")

	// Data rows, windowed by the scroll offset.
	visible := height - 5
	if visible < 1 {
		visible = 1
	}
	keys := s.view.Keys()
	end := s.offset + visible
	if end > len(keys) {
		end = len(keys)
	}

	for _, key := range keys[s.offset:end] {
		row := []string{pad(key)}
		for _, c := range s.view.Columns() {
			row = append(row, pad(s.view.Get(key, c).String()))
		}

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if g := s.view.Get(key, gradebook.ColFinalGrade); g.Kind() == table.KindText {
			style = lipgloss.NewStyle().Foreground(theme.GradeColor(g.String()))
		}
		b.WriteString("  " + style.Render(strings.Join(row, " ")) + "\n")
	}

	if end < len(keys) {
		b.WriteString("  " + theme.Hint.Render(
			fmt.Sprintf("... %d more", len(keys)-end)) + "\n")
	}

	return b.String()
}

func pad(s string) string {
	if len(s) > colWidth {
		return s[:colWidth-1] + "…"
	}
	return s + strings.Repeat(" ", colWidth-len(s))
}
