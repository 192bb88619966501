package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// SelectorModel lets the player pick a difficulty before the run starts.
// Digits 1-3 choose directly; the cursor and Enter work as well.
type SelectorModel struct {
	options []config.Difficulty
	rates   config.DifficultyConfig
	cursor  int
	keys    SelectorKeyMap
	help    help.Model
	width   int
	height  int

	titleStyle  lipgloss.Style
	activeStyle lipgloss.Style
	helpStyle   lipgloss.Style

	selected *config.Difficulty
	quitting bool
}

// NewSelectorModel creates a selector for the configured tick rates.
// The cursor starts on Medium. A nil renderer uses the local terminal.
func NewSelectorModel(cfg config.Config, r *lipgloss.Renderer, width, height int) SelectorModel {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	h := help.New()
	h.ShowAll = false

	return SelectorModel{
		options:     config.Difficulties(),
		rates:       cfg.Difficulty,
		cursor:      1,
		keys:        DefaultSelectorKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		titleStyle:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		activeStyle: r.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		helpStyle:   r.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// Init initializes the model.
func (m SelectorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SelectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m SelectorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.selected != nil || m.quitting {
		return m, nil
	}

	if d, ok := m.keys.Shortcut(msg); ok {
		return m.choose(d)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		return m.choose(m.options[m.cursor])
	}
	return m, nil
}

func (m SelectorModel) choose(d config.Difficulty) (tea.Model, tea.Cmd) {
	m.selected = &d
	return m, tea.Quit
}

// View renders the difficulty list.
func (m SelectorModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder

	// Vertically center the block when the terminal is tall enough.
	const blockHeight = 10
	if pad := (m.height - blockHeight) / 2; pad > 0 {
		b.WriteString(strings.Repeat("\n", pad))
	}

	b.WriteString(centerText(m.titleStyle.Render("S N A K E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, d := range m.options {
		line := fmt.Sprintf("%d. %-6s  %2d moves/s", i+1, d.Title(), m.rates.TickRate(d))
		if i == m.cursor {
			line = m.activeStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.helpStyle.Render(m.help.View(m.keys)), m.width))

	return b.String()
}

// Selected returns the chosen difficulty, or nil if still choosing.
func (m SelectorModel) Selected() *config.Difficulty {
	return m.selected
}

// Cursor returns the highlighted option.
func (m SelectorModel) Cursor() config.Difficulty {
	return m.options[m.cursor]
}

// IsQuitting returns true if the player quit without choosing.
func (m SelectorModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// RunSelector runs the difficulty selector in its own program and returns
// the choice. A nil difficulty means the player quit.
func RunSelector(cfg config.Config, rc core.RuntimeConfig) (*config.Difficulty, error) {
	model := NewSelectorModel(cfg, nil, rc.ScreenW, rc.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("tui: selector: %w", err)
	}

	m, ok := finalModel.(SelectorModel)
	if !ok || m.IsQuitting() {
		return nil, nil
	}
	return m.Selected(), nil
}
