package export

import (
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	codec "github.com/abhisek/gradebook/internal/export"
	"github.com/abhisek/gradebook/internal/report"
	"github.com/abhisek/gradebook/internal/router"
	"github.com/abhisek/gradebook/internal/screen"
	"github.com/abhisek/gradebook/internal/table"
	"github.com/abhisek/gradebook/internal/ui/components"
	"github.com/abhisek/gradebook/internal/ui/layout"
	"github.com/abhisek/gradebook/internal/ui/theme"
)

type exportDoneMsg struct {
	Files []string
	Err   error
}

// ExportScreen writes the scored gradebook to files in the working
// directory.
type ExportScreen struct {
	table   *table.Table
	menu    components.Menu
	files   []string
	errMsg  string
	working bool
}

var _ screen.Screen = (*ExportScreen)(nil)
var _ screen.KeyHintProvider = (*ExportScreen)(nil)

// New creates a new ExportScreen over a scored gradebook.
func New(t *table.Table) *ExportScreen {
	s := &ExportScreen{table: t}

	items := []components.MenuItem{
		{Label: "FULL CSV", Action: func() tea.Cmd {
			return s.start(writeFullCSV)
		}},
		{Label: "PER-SECTION CSV", Action: func() tea.Cmd {
			return s.start(writeSectionCSVs)
		}},
		{Label: "XLSX WORKBOOK", Action: func() tea.Cmd {
			return s.start(writeWorkbook)
		}},
	}
	s.menu = components.NewMenu(items)
	return s
}

func (s *ExportScreen) start(write func(*table.Table) ([]string, error)) tea.Cmd {
	s.working = true
	t := s.table
	return func() tea.Msg {
		files, err := write(t)
		return exportDoneMsg{Files: files, Err: err}
	}
}

func (s *ExportScreen) Init() tea.Cmd {
	return nil
}

func (s *ExportScreen) Title() string {
	return "Export"
}

func (s *ExportScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Write files"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ExportScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case exportDoneMsg:
		s.working = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			s.files = nil
		} else {
			s.errMsg = ""
			s.files = msg.Files
		}
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ExportScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString("  " + lipgloss.NewStyle().
		Foreground(theme.Primary).Bold(true).
		Render("EXPORT GRADEBOOK") + "\n\n")
	b.WriteString(s.menu.View() + "\n")

	switch {
	case s.working:
		b.WriteString("  " + theme.Hint.Render("Writing...") + "\n")
	case s.errMsg != "":
		b.WriteString("  " + lipgloss.NewStyle().
			Foreground(theme.Error).
			Render("Error: "+s.errMsg) + "\n")
	case len(s.files) > 0:
		for _, f := range s.files {
			b.WriteString("  " + lipgloss.NewStyle().
				Foreground(theme.Success).
				Render("Wrote "+f) + "\n")
		}
	}

	return b.String()
}

func writeFullCSV(t *table.Table) ([]string, error) {
	const name = "grades.csv"
	if err := writeFile(name, func(f *os.File) error {
		return codec.WriteCSV(f, t)
	}); err != nil {
		return nil, err
	}
	return []string{name}, nil
}

func writeSectionCSVs(t *table.Table) ([]string, error) {
	labels, parts := report.Sections(t)
	var files []string
	for _, sec := range labels {
		name := fmt.Sprintf("Section_%s.csv", sec)
		part := parts[sec]
		if err := writeFile(name, func(f *os.File) error {
			return codec.WriteCSV(f, part)
		}); err != nil {
			return nil, err
		}
		files = append(files, name)
	}
	return files, nil
}

func writeWorkbook(t *table.Table) ([]string, error) {
	const name = "grades.xlsx"
	sheets := []codec.Sheet{{Name: "Gradebook", Table: t}}
	labels, parts := report.Sections(t)
	for _, sec := range labels {
		sheets = append(sheets, codec.Sheet{Name: "Section " + sec, Table: parts[sec]})
	}
	if err := writeFile(name, func(f *os.File) error {
		return codec.WriteXLSX(f, sheets)
	}); err != nil {
		return nil, err
	}
	return []string{name}, nil
}

func writeFile(name string, write func(*os.File) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
