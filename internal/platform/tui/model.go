package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// GameModel is the Bubble Tea model that drives one snake game.
// Keys are queued between ticks and handed to the game in arrival order.
type GameModel struct {
	game       *snake.Game
	screen     *core.Screen
	painter    *Painter
	keys       GameKeyMap
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewGameModel creates a model for the given game and resets it.
// A zero seed is replaced by the current time.
func NewGameModel(game *snake.Game, cfg core.RuntimeConfig, painter *Painter, logger *log.Logger) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.TickRate = game.TickRate()
	if painter == nil {
		painter = NewPainter(nil)
	}
	if logger == nil {
		logger = log.Default()
	}

	game.Reset(cfg)
	logger.Info("game started",
		"difficulty", game.Difficulty(),
		"tick_rate", cfg.TickRate,
		"seed", cfg.Seed,
	)

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		painter:    painter,
		keys:       DefaultGameKeyMap(),
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the action for the next tick; quit is immediate.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score)
		return m, tea.Quit
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleResize adapts the screen buffer. The run itself is preserved.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	m.gameState = m.game.State()

	if m.gameState.TooSmall {
		m.logger.Debug("window too small", "width", msg.Width, "height", msg.Height)
	}
	return m, nil
}

// handleTick runs one simulation step with the queued input.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.Restarted {
		m.logger.Info("restart")
	}
	if result.Died {
		m.logger.Info("game over",
			"score", result.State.Score,
			"length", m.game.Snake().Len(),
		)
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.painter.Paint(m.screen)
}

// Game returns the game driven by this model.
func (m GameModel) Game() *snake.Game {
	return m.game
}

// Pending returns the input queued for the next tick.
func (m GameModel) Pending() core.InputFrame {
	return m.inputFrame.Clone()
}

// IsQuitting returns true if the player asked to quit.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for the given game and blocks until
// the player quits.
func Run(game *snake.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewGameModel(game, cfg, nil, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
