package snake

import (
	"reflect"
	"testing"
)

var allDirs = []Direction{DirUp, DirDown, DirLeft, DirRight}

func TestNewSnakeCentered(t *testing.T) {
	s := NewSnake(30, 20)

	want := []Cell{{15, 10}, {14, 10}, {13, 10}}
	if got := s.Body(); !reflect.DeepEqual(got, want) {
		t.Errorf("Body() = %v, expected %v", got, want)
	}
	if s.Direction() != DirRight {
		t.Errorf("Direction() = %v, expected right", s.Direction())
	}
	if s.Growing() {
		t.Error("new snake should not be growing")
	}
}

func TestMoveWithoutTurn(t *testing.T) {
	s := NewSnake(30, 20)
	s.Move()

	want := []Cell{{16, 10}, {15, 10}, {14, 10}}
	if got := s.Body(); !reflect.DeepEqual(got, want) {
		t.Errorf("after Move, Body() = %v, expected %v", got, want)
	}
}

func TestChangeDirReversalGuard(t *testing.T) {
	for _, h := range allDirs {
		for _, d := range allDirs {
			s := NewSnakeFrom([]Cell{{5, 5}}, h)
			s.ChangeDir(d)

			want := d
			if d == h.Opposite() {
				want = h
			}
			if s.Direction() != want {
				t.Errorf("heading %v, ChangeDir(%v): Direction() = %v, expected %v", h, d, s.Direction(), want)
			}
		}
	}
}

func TestChangeDirIgnoresInvalid(t *testing.T) {
	s := NewSnake(30, 20)
	s.ChangeDir(Direction(42))

	if s.Direction() != DirRight {
		t.Errorf("invalid direction should be ignored, got %v", s.Direction())
	}
}

func TestChangeDirGuardUsesLastMovedHeading(t *testing.T) {
	// Up then Left inside one tick: Left is the reverse of the heading the
	// snake is still travelling in, so it must not be accepted.
	s := NewSnake(30, 20)
	s.ChangeDir(DirUp)
	s.ChangeDir(DirLeft)

	if s.Direction() != DirUp {
		t.Fatalf("Direction() = %v, expected up", s.Direction())
	}

	s.Move()
	if s.HitsSelf() {
		t.Error("snake folded back onto itself")
	}
	if got := s.Head(); got != (Cell{15, 9}) {
		t.Errorf("Head() = %v, expected (15, 9)", got)
	}

	// After moving up, left is a legal turn.
	s.ChangeDir(DirLeft)
	if s.Direction() != DirLeft {
		t.Errorf("Direction() = %v, expected left", s.Direction())
	}
}

func TestChangeDirLastAcceptedWins(t *testing.T) {
	s := NewSnake(30, 20)
	s.ChangeDir(DirDown)
	s.ChangeDir(DirUp)

	if s.Direction() != DirUp {
		t.Errorf("Direction() = %v, expected up", s.Direction())
	}
}

func TestMoveHeadDelta(t *testing.T) {
	for _, d := range allDirs {
		// Body trails opposite to d so every heading is legal.
		dx, dy := d.Delta()
		start := Cell{0, 0}
		s := NewSnakeFrom([]Cell{start, {-dx, -dy}, {-2 * dx, -2 * dy}}, d)

		s.Move()

		want := Cell{start.X + dx, start.Y + dy}
		if s.Head() != want {
			t.Errorf("dir %v: Head() = %v, expected %v", d, s.Head(), want)
		}
	}
}

func TestMoveDoesNotWrapOrClamp(t *testing.T) {
	s := NewSnakeFrom([]Cell{{0, 0}, {1, 0}, {2, 0}}, DirLeft)
	s.Move()

	if s.Head() != (Cell{-1, 0}) {
		t.Errorf("Head() = %v, expected (-1, 0)", s.Head())
	}
}

func TestMoveLengthAndGrowth(t *testing.T) {
	s := NewSnake(30, 20)

	s.Move()
	if s.Len() != 3 {
		t.Fatalf("Len() = %d after plain move, expected 3", s.Len())
	}

	s.Grow()
	tail := s.Body()[2]
	s.Move()

	if s.Len() != 4 {
		t.Errorf("Len() = %d after growing move, expected 4", s.Len())
	}
	if s.Growing() {
		t.Error("growth flag should be cleared after Move")
	}
	if got := s.Body()[3]; got != tail {
		t.Errorf("tail = %v, expected it to stay at %v", got, tail)
	}

	s.Move()
	if s.Len() != 4 {
		t.Errorf("Len() = %d, growth should only last one move", s.Len())
	}
}

func TestHitsSelfExcludesHead(t *testing.T) {
	s := NewSnake(30, 20)
	if s.HitsSelf() {
		t.Error("straight snake should not hit itself")
	}

	// Head overlaps a body segment
	s = NewSnakeFrom([]Cell{{6, 5}, {5, 5}, {5, 6}, {6, 6}, {6, 5}}, DirUp)
	if !s.HitsSelf() {
		t.Error("head on a body segment should count as self hit")
	}
}

func TestMovingIntoVacatedTailIsSafe(t *testing.T) {
	// 2x2 loop: head at (0,0), tail at (1,0). The tail leaves as the head
	// arrives.
	s := NewSnakeFrom([]Cell{{0, 0}, {0, 1}, {1, 1}, {1, 0}}, DirRight)
	s.Move()

	if s.HitsSelf() {
		t.Errorf("chasing the tail should be safe, body = %v", s.Body())
	}
}

func TestContains(t *testing.T) {
	s := NewSnake(30, 20)

	if !s.Contains(Cell{13, 10}) {
		t.Error("Contains should find the tail")
	}
	if s.Contains(Cell{12, 10}) {
		t.Error("Contains should not find an empty cell")
	}
}

func TestBodyIsCopy(t *testing.T) {
	s := NewSnake(30, 20)
	body := s.Body()
	body[0] = Cell{99, 99}

	if s.Head() == (Cell{99, 99}) {
		t.Error("Body() must not expose internal storage")
	}
}

func TestDirectionHelpers(t *testing.T) {
	for _, d := range allDirs {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v: double opposite should be identity", d)
		}
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		if dx != -ox || dy != -oy {
			t.Errorf("%v: opposite delta mismatch", d)
		}
		if !d.Valid() {
			t.Errorf("%v should be valid", d)
		}
	}
	if Direction(-1).Valid() || Direction(4).Valid() {
		t.Error("out-of-range directions should be invalid")
	}
	if Direction(9).String() != "unknown" {
		t.Errorf("String() = %q, expected unknown", Direction(9).String())
	}
}
