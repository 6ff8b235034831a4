package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDifficulty is returned when a difficulty name cannot be parsed.
var ErrUnknownDifficulty = errors.New("config: unknown difficulty")

// Difficulty selects spawn periods and the decoy probability for a session.
// The numeric values are the menu choices (1 = easy, 2 = medium, 3 = hard).
type Difficulty int

const (
	DifficultyEasy Difficulty = iota + 1
	DifficultyMedium
	DifficultyHard
)

// Difficulties returns all valid difficulties in menu order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// String returns the lowercase name used in flags and storage.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// Title returns the capitalized name shown in the UI.
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

// Next returns the difficulty after d, wrapping from hard to easy.
func (d Difficulty) Next() Difficulty {
	if !d.Valid() || d == DifficultyHard {
		return DifficultyEasy
	}
	return d + 1
}

// Valid reports whether d is one of the known difficulties.
func (d Difficulty) Valid() bool {
	return d >= DifficultyEasy && d <= DifficultyHard
}

// ParseDifficulty accepts names ("easy", "normal", "hard") and the numeric
// select values ("1", "2", "3").
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "1":
		return DifficultyEasy, nil
	case "medium", "normal", "2":
		return DifficultyMedium, nil
	case "hard", "3":
		return DifficultyHard, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownDifficulty, s)
	}
}
