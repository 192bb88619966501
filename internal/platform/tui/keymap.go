package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// GameKeyMap defines the key bindings used while a run is on screen.
type GameKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// DefaultGameKeyMap returns default key bindings: arrows or WASD to steer.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc/q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Restart, k.Quit},
	}
}

// Action translates a key message to a game action.
// Unbound keys map to ActionNone.
func (k GameKeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// SelectorKeyMap defines the key bindings for the difficulty selector.
type SelectorKeyMap struct {
	Easy   key.Binding
	Medium key.Binding
	Hard   key.Binding
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// DefaultSelectorKeyMap returns default key bindings.
func DefaultSelectorKeyMap() SelectorKeyMap {
	return SelectorKeyMap{
		Easy: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "easy"),
		),
		Medium: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "medium"),
		),
		Hard: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "hard"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc/q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k SelectorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Easy, k.Medium, k.Hard, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k SelectorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Easy, k.Medium, k.Hard},
		{k.Up, k.Down, k.Select, k.Quit},
	}
}

// Shortcut returns the difficulty bound to a digit key, if any.
func (k SelectorKeyMap) Shortcut(msg tea.KeyMsg) (config.Difficulty, bool) {
	switch {
	case key.Matches(msg, k.Easy):
		return config.DifficultyEasy, true
	case key.Matches(msg, k.Medium):
		return config.DifficultyMedium, true
	case key.Matches(msg, k.Hard):
		return config.DifficultyHard, true
	}
	return "", false
}
