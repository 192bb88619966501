package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

const (
	hudHeight = 1 // Score line above the board

	gridRune  = '·'
	blockRune = '█'
)

// Renderer draws a Game into a screen buffer. It holds only layout and
// colors; everything else is read from the game on each call.
type Renderer struct {
	cols, rows   int
	cellW, cellH int
	palette      config.Palette
}

// NewRenderer creates a renderer for the given configuration. The config
// is expected to have passed Validate; unknown colors fall back to default.
func NewRenderer(cfg config.Config) *Renderer {
	palette, _ := cfg.Theme.Palette() //nolint:errcheck // validated at load
	return &Renderer{
		cols:    cfg.Grid.Cols,
		rows:    cfg.Grid.Rows,
		cellW:   max(cfg.Cell.Width, 1),
		cellH:   max(cfg.Cell.Height, 1),
		palette: palette,
	}
}

// boardSize returns the framed board dimensions in characters.
func (r *Renderer) boardSize() (w, h int) {
	return r.cols*r.cellW + 2, r.rows*r.cellH + 2
}

// Size returns the minimum screen size needed to draw the game.
func (r *Renderer) Size() (w, h int) {
	bw, bh := r.boardSize()
	return bw, bh + hudHeight
}

// Fits reports whether a w×h screen can hold the board.
func (r *Renderer) Fits(w, h int) bool {
	needW, needH := r.Size()
	return w >= needW && h >= needH
}

// Render draws the HUD, board, food, snake and, once the run is over, the
// game-over overlay.
func (r *Renderer) Render(dst *core.Screen, g *Game) {
	dst.Clear()

	if !r.Fits(dst.Width(), dst.Height()) {
		r.renderTooSmall(dst)
		return
	}

	bw, bh := r.boardSize()
	board := core.NewRect((dst.Width()-bw)/2, hudHeight, bw, bh)

	r.renderHUD(dst, board, g)
	r.renderGrid(dst, board)

	if food, ok := g.Food(); ok {
		r.fillCell(dst, board, food, blockRune, r.palette.Food)
	}
	r.renderSnake(dst, board, g)

	if g.GameOver() {
		r.renderOverlay(dst, board,
			"GAME OVER",
			fmt.Sprintf("Score: %d", g.Score()),
			"R: restart   Esc: quit",
		)
	}
}

// cellRect returns the screen area of grid cell c.
func (r *Renderer) cellRect(board core.Rect, c Cell) core.Rect {
	return core.NewRect(board.X+1+c.X*r.cellW, board.Y+1+c.Y*r.cellH, r.cellW, r.cellH)
}

func (r *Renderer) fillCell(dst *core.Screen, board core.Rect, c Cell, ch rune, color core.Color) {
	if c.X < 0 || c.X >= r.cols || c.Y < 0 || c.Y >= r.rows {
		return
	}
	dst.DrawRect(r.cellRect(board, c), ch, color)
}

func (r *Renderer) renderHUD(dst *core.Screen, board core.Rect, g *Game) {
	left := fmt.Sprintf(" Score: %d", g.Score())
	right := fmt.Sprintf("%s ", g.Difficulty().Title())

	dst.DrawTextColored(board.X, 0, left, r.palette.Text)
	dst.DrawTextColored(board.Right()-len(right), 0, right, r.palette.Text)
}

// renderGrid draws the frame and marks the top-left corner of every cell.
func (r *Renderer) renderGrid(dst *core.Screen, board core.Rect) {
	dst.DrawBox(board, r.palette.Frame)
	for y := 0; y < r.rows; y++ {
		for x := 0; x < r.cols; x++ {
			cell := r.cellRect(board, Cell{X: x, Y: y})
			dst.SetColored(cell.X, cell.Y, gridRune, r.palette.Grid)
		}
	}
}

func (r *Renderer) renderSnake(dst *core.Screen, board core.Rect, g *Game) {
	body := g.Snake().Body()
	// Tail first so the head is drawn on top.
	for i := len(body) - 1; i >= 0; i-- {
		color := r.palette.Snake
		if i == 0 {
			color = r.palette.Head
		}
		r.fillCell(dst, board, body[i], blockRune, color)
	}
}

// renderOverlay draws a framed message box centered on the board.
func (r *Renderer) renderOverlay(dst *core.Screen, board core.Rect, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len(l))
	}

	box := board.Centered(maxLen+4, len(lines)+4)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, r.palette.Overlay)

	for i, l := range lines {
		x := box.X + (box.W-len(l))/2
		dst.DrawTextColored(x, box.Y+2+i, l, r.palette.Overlay)
	}
}

func (r *Renderer) renderTooSmall(dst *core.Screen) {
	needW, needH := r.Size()
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Window too small", r.palette.Text)
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", needW, needH, dst.Width(), dst.Height()), r.palette.Text)
	dst.DrawTextCentered(y+1, "Resize to continue", r.palette.Text)
}
