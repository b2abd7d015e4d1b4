package student

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/gradebook/internal/report"
	"github.com/abhisek/gradebook/internal/router"
	"github.com/abhisek/gradebook/internal/screen"
	"github.com/abhisek/gradebook/internal/table"
	"github.com/abhisek/gradebook/internal/ui/components"
	"github.com/abhisek/gradebook/internal/ui/layout"
	"github.com/abhisek/gradebook/internal/ui/theme"
)

const barWidth = 48

// StudentScreen searches for a student by identifier and renders their
// per-category report.
type StudentScreen struct {
	table  *table.Table
	input  components.TextInput
	rep    *report.StudentReport
	errMsg string
}

var _ screen.Screen = (*StudentScreen)(nil)
var _ screen.KeyHintProvider = (*StudentScreen)(nil)

// New creates a new StudentScreen over a scored gradebook.
func New(t *table.Table) *StudentScreen {
	return &StudentScreen{
		table: t,
		input: components.NewTextInput("NetID or student name", 48),
	}
}

func (s *StudentScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *StudentScreen) Title() string {
	return "Student Report"
}

func (s *StudentScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Look up"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StudentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			query := strings.TrimSpace(s.input.Value())
			if query == "" {
				return s, nil
			}
			id, ok := report.ResolveID(s.table, query)
			if !ok {
				s.rep = nil
				s.errMsg = fmt.Sprintf("No student matching %q", query)
				s.input.Submit(false)
				return s, nil
			}
			rep, err := report.ForStudent(s.table, id)
			if err != nil {
				s.rep = nil
				var nf *report.StudentNotFoundError
				if errors.As(err, &nf) {
					s.errMsg = fmt.Sprintf("No student matching %q", query)
				} else {
					s.errMsg = err.Error()
				}
				s.input.Submit(false)
				return s, nil
			}
			s.rep = rep
			s.errMsg = ""
			s.input.Submit(true)
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *StudentScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString("  " + lipgloss.NewStyle().
		Foreground(theme.Primary).Bold(true).
		Render("LOOK UP STUDENT") + "\n\n")
	b.WriteString("  " + s.input.View() + "\n\n")

	if s.errMsg != "" {
		b.WriteString("  " + lipgloss.NewStyle().
			Foreground(theme.Error).
			Render(s.errMsg) + "\n")
		return b.String()
	}

	if s.rep == nil {
		b.WriteString("  " + theme.Hint.Render(
			"Type an identifier and press Enter.") + "\n")
		return b.String()
	}

	r := s.rep
	name := strings.TrimSpace(r.FirstName + " " + r.LastName)
	b.WriteString("  " + lipgloss.NewStyle().
		Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("%s (%s)", name, r.ID)) + "\n")
	b.WriteString("  " + lipgloss.NewStyle().
		Foreground(theme.GradeColor(r.Grade)).Bold(true).
		Render(fmt.Sprintf("Grade %s (%d%%)", r.Grade, r.Ceiling)) +
		theme.Hint.Render(fmt.Sprintf("   class avg %.1f%%", r.ClassAvg)) + "\n\n")

	for _, cat := range r.Categories {
		bar := components.NewScoreBar(
			fmt.Sprintf("%-4s", cat.Label), cat.Percent/100, barWidth)
		b.WriteString("  " + bar.View() + "\n")
	}

	return b.String()
}
