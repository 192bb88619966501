package tui

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func newTestSession() (SessionModel, *bytes.Buffer) {
	var buf bytes.Buffer
	rc := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 3}
	return NewSessionModel(config.Default(), rc, nil, log.New(&buf)), &buf
}

func sendSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	require.True(t, ok, "Update returned %T", next)
	return sm, cmd
}

func TestSessionSelectsThenPlays(t *testing.T) {
	m, buf := newTestSession()
	assert.False(t, m.InGame())
	assert.Nil(t, m.Game())
	assert.Contains(t, m.View(), "Select difficulty")

	m, cmd := sendSession(t, m, runeKey('3'))

	require.True(t, m.InGame())
	assert.False(t, m.IsQuitting(), "choosing must not end the session")
	assert.NotNil(t, cmd, "game tick loop starts")
	assert.Equal(t, config.DifficultyHard, m.Game().Difficulty())
	assert.Equal(t, 18, m.Game().TickRate())
	assert.Contains(t, buf.String(), "difficulty selected")
	assert.Contains(t, m.View(), "Hard")
}

func TestSessionForwardsToGame(t *testing.T) {
	m, _ := newTestSession()
	m, _ = sendSession(t, m, runeKey('1'))

	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = sendSession(t, m, TickMsg{})

	assert.Equal(t, snake.Cell{X: 15, Y: 11}, m.Game().Snake().Head())
}

func TestSessionQuitAtSelector(t *testing.T) {
	m, _ := newTestSession()

	m, cmd := sendSession(t, m, runeKey('q'))

	assert.True(t, m.IsQuitting())
	assert.False(t, m.InGame())
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestSessionQuitInGame(t *testing.T) {
	m, _ := newTestSession()
	m, _ = sendSession(t, m, runeKey('2'))

	m, cmd := sendSession(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.True(t, m.IsQuitting())
	assert.NotNil(t, cmd)
}

func TestSessionTracksResizeBeforeGame(t *testing.T) {
	m, _ := newTestSession()
	m, _ = sendSession(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	m, _ = sendSession(t, m, runeKey('2'))

	assert.True(t, m.Game().State().TooSmall, "game starts with the resized dimensions")
}
