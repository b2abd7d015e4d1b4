package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/gradebook/internal/pipeline"
	"github.com/abhisek/gradebook/internal/report"
	"github.com/abhisek/gradebook/internal/router"
	"github.com/abhisek/gradebook/internal/screen"
	"github.com/abhisek/gradebook/internal/screens/charts"
	exportscreen "github.com/abhisek/gradebook/internal/screens/export"
	"github.com/abhisek/gradebook/internal/screens/student"
	summaryscreen "github.com/abhisek/gradebook/internal/screens/summary"
	"github.com/abhisek/gradebook/internal/ui/components"
	"github.com/abhisek/gradebook/internal/ui/theme"
)

// HomeScreen is the dashboard entry screen.
type HomeScreen struct {
	res      *pipeline.Result
	menu     components.Menu
	students int
	sections int
	classAvg float64
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen over a scored gradebook.
func New(res *pipeline.Result) *HomeScreen {
	labels, _ := report.Sections(res.Table)

	var classAvg float64
	if _, ds, err := report.Distribution(res.Table); err == nil {
		classAvg = ds.Mean * 100
	}

	items := []components.MenuItem{
		{Label: "SUMMARY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: summaryscreen.New(res.Table)}
			}
		}},
		{Label: "CHARTS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: charts.New(res.Table)}
			}
		}},
		{Label: "STUDENT REPORT", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: student.New(res.Table)}
			}
		}},
		{Label: "EXPORT", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: exportscreen.New(res.Table)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		res:      res,
		menu:     components.NewMenu(items),
		students: res.Table.Len(),
		sections: len(labels),
		classAvg: classAvg,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Render("FINAL GRADE CALCULATOR")
	sections = append(sections, title)

	stats := fmt.Sprintf("%d students   %d sections   class avg %.1f%%",
		h.students, h.sections, h.classAvg)
	sections = append(sections, theme.Subtitle.Render(stats))

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
