package snake

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and debugging.
type Snapshot struct {
	Tick       uint64
	Difficulty string
	TickRate   int
	Score      int
	SnakeLen   int
	HeadX      int
	HeadY      int
	Dir        Direction
	HasFood    bool
	FoodX      int
	FoodY      int
	State      GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.gameOver:
		state = StateGameOver
	case g.tooSmall:
		state = StatePausedSmall
	}

	head := g.snake.Head()
	food, hasFood := g.food.Position()

	return Snapshot{
		Tick:       g.tick,
		Difficulty: g.difficulty.String(),
		TickRate:   g.TickRate(),
		Score:      g.score,
		SnakeLen:   g.snake.Len(),
		HeadX:      head.X,
		HeadY:      head.Y,
		Dir:        g.snake.Direction(),
		HasFood:    hasFood,
		FoodX:      food.X,
		FoodY:      food.Y,
		State:      state,
	}
}
