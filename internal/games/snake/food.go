package snake

import "math/rand"

// Food is the single optional food cell on a cols×rows grid.
type Food struct {
	cols, rows int
	rng        *rand.Rand
	pos        Cell
	present    bool
}

// NewFood creates food and places it on a free cell.
func NewFood(cols, rows int, rng *rand.Rand, body []Cell) *Food {
	f := &Food{cols: cols, rows: rows, rng: rng}
	f.Respawn(body)
	return f
}

// Position returns the food cell; ok is false when the board was full at
// the last placement.
func (f *Food) Position() (Cell, bool) {
	return f.pos, f.present
}

// Respawn moves the food to a new random free cell.
func (f *Food) Respawn(body []Cell) {
	f.pos, f.present = f.RandomPos(body)
}

// RandomPos picks a cell not covered by body, uniformly at random.
// Returns ok=false when every cell is occupied.
//
// All free cells are enumerated on every call: O(cols×rows), which is
// fine for terminal-sized boards.
func (f *Food) RandomPos(body []Cell) (Cell, bool) {
	occupied := make(map[Cell]struct{}, len(body))
	for _, c := range body {
		occupied[c] = struct{}{}
	}

	free := make([]Cell, 0, max(f.cols*f.rows-len(occupied), 0))
	for x := 0; x < f.cols; x++ {
		for y := 0; y < f.rows; y++ {
			c := Cell{X: x, Y: y}
			if _, taken := occupied[c]; !taken {
				free = append(free, c)
			}
		}
	}

	if len(free) == 0 {
		return Cell{}, false
	}
	return free[f.rng.Intn(len(free))], true
}
