package config

import (
	"fmt"
	"strings"
)

// Difficulty is one of the three levels offered before a run starts.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties returns all levels in menu order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty accepts a level name ("easy", "Medium") or its menu
// number ("1", "2", "3").
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "1":
		return DifficultyEasy, nil
	case "medium", "normal", "2":
		return DifficultyMedium, nil
	case "hard", "3":
		return DifficultyHard, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, medium or hard)", s)
}

// String returns the level name.
func (d Difficulty) String() string {
	return string(d)
}

// Title returns the display name.
func (d Difficulty) Title() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// Key returns the digit that selects this level in the menu.
func (d Difficulty) Key() string {
	switch d {
	case DifficultyEasy:
		return "1"
	case DifficultyMedium:
		return "2"
	case DifficultyHard:
		return "3"
	default:
		return ""
	}
}

// TickRate returns ticks per second for the level, or 0 if unknown.
func (c DifficultyConfig) TickRate(d Difficulty) int {
	switch d {
	case DifficultyEasy:
		return c.Easy
	case DifficultyMedium:
		return c.Medium
	case DifficultyHard:
		return c.Hard
	default:
		return 0
	}
}
