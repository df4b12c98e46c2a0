package tui

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/colwise/cli/internal/logger"
	"golang.org/x/term"
)

// pagerModel is the bubbletea model for scrolling through a formatted
// table that is taller than the terminal.
type pagerModel struct {
	lines  []string
	offset int
	width  int
	height int
}

// NewPager shows the formatted lines in a scrollable full-screen view and
// blocks until the user quits.
func NewPager(lines []string) error {
	// Initial size before the first WindowSizeMsg arrives.
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width, height = 80, 24
	}

	model := &pagerModel{
		lines:  lines,
		width:  width,
		height: height,
	}

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run pager: %w", err)
	}
	return nil
}

// Init initializes the model
func (m *pagerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			m.scroll(-1)
		case "down", "j":
			m.scroll(1)
		case "pgup", "b":
			m.scroll(-m.pageSize())
		case "pgdown", "f", " ":
			m.scroll(m.pageSize())
		case "home", "g":
			m.offset = 0
		case "end", "G":
			m.scroll(len(m.lines))
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scroll(0) // re-clamp for the new viewport
		return m, nil
	}
	return m, nil
}

// View renders the model
func (m *pagerModel) View() string {
	var sb strings.Builder

	statusStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(logger.ColorDarkGray))

	visible := m.pageSize()
	end := m.offset + visible
	if end > len(m.lines) {
		end = len(m.lines)
	}

	for i := m.offset; i < end; i++ {
		sb.WriteString(m.lines[i])
		sb.WriteString("\n")
	}
	for i := end - m.offset; i < visible; i++ {
		sb.WriteString("\n")
	}

	sb.WriteString(statusStyle.Render(m.statusLine()))
	return sb.String()
}

// pageSize is the number of table lines per screen, leaving one row for
// the status line.
func (m *pagerModel) pageSize() int {
	if m.height <= 1 {
		return 1
	}
	return m.height - 1
}

func (m *pagerModel) scroll(delta int) {
	m.offset += delta

	max := len(m.lines) - m.pageSize()
	if max < 0 {
		max = 0
	}
	if m.offset > max {
		m.offset = max
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m *pagerModel) statusLine() string {
	bottom := m.offset + m.pageSize()
	if bottom > len(m.lines) {
		bottom = len(m.lines)
	}
	return fmt.Sprintf("%d-%d/%d  (q to quit)", m.offset+1, bottom, len(m.lines))
}
