// Package snake implements the single-player snake game: a snake steered
// around a walled grid, eating food to grow, until it hits a wall or itself.
package snake

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game owns one run's state: snake, food, score and the game-over flag.
// The difficulty, and with it the tick rate, is fixed for the lifetime of
// the Game; restarting keeps it.
type Game struct {
	cfg        config.Config
	difficulty config.Difficulty
	renderer   *Renderer
	rng        *rand.Rand

	tick     uint64
	score    int
	gameOver bool
	tooSmall bool

	snake *Snake
	food  *Food

	screenW int
	screenH int
}

// New creates a game for the given configuration and difficulty.
// Call Reset before the first Step.
func New(cfg config.Config, difficulty config.Difficulty) *Game {
	return &Game{
		cfg:        cfg,
		difficulty: difficulty,
		renderer:   NewRenderer(cfg),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Difficulty returns the level chosen for this game.
func (g *Game) Difficulty() config.Difficulty {
	return g.difficulty
}

// TickRate returns simulation ticks per second for the chosen level.
func (g *Game) TickRate() int {
	return g.cfg.Difficulty.TickRate(g.difficulty)
}

// Reset seeds the random source, records the screen size and starts a
// fresh run.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.Resize(rc.ScreenW, rc.ScreenH)
	g.restart()
}

// Resize records new screen dimensions. The run continues; while the
// board does not fit, ticks are ignored.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = !g.renderer.Fits(w, h)
}

// restart creates a new snake and food and clears score and game over.
func (g *Game) restart() {
	g.score = 0
	g.gameOver = false
	g.snake = NewSnake(g.cfg.Grid.Cols, g.cfg.Grid.Rows)
	g.food = NewFood(g.cfg.Grid.Cols, g.cfg.Grid.Rows, g.rng, g.snake.Body())
}

// Step runs one tick: queued input in arrival order, then one simulation
// advance unless the run is over or the screen is too small.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	var result core.StepResult

	for _, a := range input.Actions {
		switch a {
		case core.ActionUp:
			g.steer(DirUp)
		case core.ActionDown:
			g.steer(DirDown)
		case core.ActionLeft:
			g.steer(DirLeft)
		case core.ActionRight:
			g.steer(DirRight)
		case core.ActionRestart:
			if g.gameOver {
				g.restart()
				result.Restarted = true
			}
		}
	}

	if !g.gameOver && !g.tooSmall {
		g.advance()
		result.Died = g.gameOver
	}

	result.State = g.State()
	return result
}

func (g *Game) steer(d Direction) {
	if g.gameOver {
		return
	}
	g.snake.ChangeDir(d)
}

// advance moves the snake and applies the collision and food rules.
// Food is checked even when the snake has just run into itself, so the
// fatal tick can still score.
func (g *Game) advance() {
	g.snake.Move()
	head := g.snake.Head()

	if !g.InBounds(head) {
		g.gameOver = true
		return
	}

	if g.snake.HitsSelf() {
		g.gameOver = true
	}

	if pos, ok := g.food.Position(); ok && pos == head {
		g.snake.Grow()
		g.score++
		g.food.Respawn(g.snake.Body())
	}
}

// InBounds reports whether c lies on the grid.
func (g *Game) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.cfg.Grid.Cols && c.Y >= 0 && c.Y < g.cfg.Grid.Rows
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.renderer.Render(dst, g)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		TooSmall: g.tooSmall,
	}
}

// Score returns the food eaten this run.
func (g *Game) Score() int {
	return g.score
}

// GameOver reports whether the run has ended.
func (g *Game) GameOver() bool {
	return g.gameOver
}

// Snake returns the live snake. Callers must not mutate it.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Food returns the food position, if any.
func (g *Game) Food() (Cell, bool) {
	return g.food.Position()
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Tick: %d, Score: %d, Difficulty: %s\n", g.tick, g.score, g.difficulty))
	b.WriteString(fmt.Sprintf("Snake len: %d, Direction: %s\n", g.snake.Len(), g.snake.Direction()))
	head := g.snake.Head()
	if food, ok := g.food.Position(); ok {
		b.WriteString(fmt.Sprintf("Head: (%d, %d), Food: (%d, %d)\n", head.X, head.Y, food.X, food.Y))
	} else {
		b.WriteString(fmt.Sprintf("Head: (%d, %d), Food: none\n", head.X, head.Y))
	}
	b.WriteString(fmt.Sprintf("GameOver: %v, TooSmall: %v\n", g.gameOver, g.tooSmall))
	return b.String()
}
