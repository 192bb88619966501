package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// SessionModel runs the whole flow inside a single program: difficulty
// selector first, then the game. This is the top-level model used for SSH
// sessions, where each connection gets one program.
type SessionModel struct {
	cfg       config.Config
	config    core.RuntimeConfig
	renderer  *lipgloss.Renderer
	logger    *log.Logger
	selector  SelectorModel
	gameModel *GameModel
	quitting  bool
}

// NewSessionModel creates a session that starts at the selector.
func NewSessionModel(cfg config.Config, rc core.RuntimeConfig, r *lipgloss.Renderer, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.Default()
	}
	return SessionModel{
		cfg:      cfg,
		config:   rc,
		renderer: r,
		logger:   logger,
		selector: NewSelectorModel(cfg, r, rc.ScreenW, rc.ScreenH),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.selector.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.gameModel != nil {
		return m.updateGame(msg)
	}
	return m.updateSelector(msg)
}

func (m SessionModel) updateSelector(msg tea.Msg) (tea.Model, tea.Cmd) {
	newSelector, cmd := m.selector.Update(msg)
	if sel, ok := newSelector.(SelectorModel); ok {
		m.selector = sel
	}

	if m.selector.IsQuitting() {
		m.quitting = true
		m.logger.Info("quit at selector")
		return m, tea.Quit
	}

	// The selector's own quit command is dropped: the session continues
	// into the game.
	if d := m.selector.Selected(); d != nil {
		m.logger.Info("difficulty selected", "difficulty", *d)
		game := snake.New(m.cfg, *d)
		gameModel := NewGameModel(game, m.config, NewPainter(m.renderer), m.logger)
		m.gameModel = &gameModel
		return m, m.gameModel.Init()
	}

	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.gameModel != nil {
		return m.gameModel.View()
	}
	return m.selector.View()
}

// InGame returns true once a difficulty has been chosen.
func (m SessionModel) InGame() bool {
	return m.gameModel != nil
}

// Game returns the running game, or nil while at the selector.
func (m SessionModel) Game() *snake.Game {
	if m.gameModel == nil {
		return nil
	}
	return m.gameModel.Game()
}

// IsQuitting returns true if the player quit.
func (m SessionModel) IsQuitting() bool {
	return m.quitting
}
