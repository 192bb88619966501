package snake

import (
	"github.com/gammazero/deque"
)

// Cell is a grid coordinate. Valid cells satisfy 0 <= X < cols and
// 0 <= Y < rows; the snake's head may briefly leave that range before the
// wall check ends the run.
type Cell struct {
	X, Y int
}

// Add returns the cell one step away in direction d.
func (c Cell) Add(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Delta returns the unit step for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return d
	}
}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d >= DirRight && d <= DirUp
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// StartLength is the body length of a fresh snake.
const StartLength = 3

// Snake is an ordered body (head at the front) with a heading and a one-shot
// growth flag.
type Snake struct {
	body *deque.Deque[Cell]

	// moved is the heading used by the last Move; reversal is judged
	// against it. heading is what the next Move will use.
	moved   Direction
	heading Direction
	growing bool
}

// NewSnake creates a snake of StartLength cells in the middle of a
// cols×rows grid, heading right with its tail to the left.
func NewSnake(cols, rows int) *Snake {
	x, y := cols/2, rows/2
	cells := make([]Cell, StartLength)
	for i := range cells {
		cells[i] = Cell{X: x - i, Y: y}
	}
	return NewSnakeFrom(cells, DirRight)
}

// NewSnakeFrom creates a snake with the given body (head first) and heading.
func NewSnakeFrom(cells []Cell, dir Direction) *Snake {
	body := deque.New[Cell](len(cells))
	for _, c := range cells {
		body.PushBack(c)
	}
	return &Snake{
		body:    body,
		moved:   dir,
		heading: dir,
	}
}

// Head returns the current head cell.
func (s *Snake) Head() Cell {
	return s.body.Front()
}

// Direction returns the heading the next Move will use.
func (s *Snake) Direction() Direction {
	return s.heading
}

// Len returns the body length.
func (s *Snake) Len() int {
	return s.body.Len()
}

// Growing reports whether the next Move will keep the tail.
func (s *Snake) Growing() bool {
	return s.growing
}

// Grow makes the next Move keep the tail, lengthening the body by one.
func (s *Snake) Grow() {
	s.growing = true
}

// Body returns a copy of the body cells, head first.
func (s *Snake) Body() []Cell {
	out := make([]Cell, s.body.Len())
	for i := range out {
		out[i] = s.body.At(i)
	}
	return out
}

// Contains reports whether any segment occupies c.
func (s *Snake) Contains(c Cell) bool {
	for i := 0; i < s.body.Len(); i++ {
		if s.body.At(i) == c {
			return true
		}
	}
	return false
}

// HitsSelf reports whether the head overlaps any other segment.
func (s *Snake) HitsSelf() bool {
	head := s.body.Front()
	for i := 1; i < s.body.Len(); i++ {
		if s.body.At(i) == head {
			return true
		}
	}
	return false
}

// ChangeDir requests a new heading for the next Move. A request for the
// reverse of the heading the snake last moved with is ignored, so any number
// of key presses inside one tick can never fold the head back onto the neck.
// Invalid directions are ignored too.
func (s *Snake) ChangeDir(d Direction) {
	if !d.Valid() || d == s.moved.Opposite() {
		return
	}
	s.heading = d
}

// Move pushes a new head one step along the heading and drops the tail,
// unless the growth flag is set, in which case the flag is cleared and the
// tail stays. Coordinates are not wrapped or clamped.
func (s *Snake) Move() {
	s.moved = s.heading
	s.body.PushFront(s.body.Front().Add(s.heading))

	if s.growing {
		s.growing = false
		return
	}
	s.body.PopBack()
}
