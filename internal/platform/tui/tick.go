// Package tui provides the Bubble Tea front end for the snake game: the
// difficulty selector, the game loop, key mapping, colored rendering and the
// SSH server that hosts the same flow for remote players.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickInterval returns the delay between ticks for the given rate.
// Non-positive rates are treated as one tick per second.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 1
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd returns a Bubble Tea command that sends a tick message after one
// interval at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
