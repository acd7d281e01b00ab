package domain

import "fmt"

// Difficulty is the per-card mastery bucket. Cards move along a three-rung
// ladder HARD -> GOOD -> EASY as they are answered.
type Difficulty string

// Difficulty ladder rungs, from least to most known.
const (
	DifficultyHard Difficulty = "HARD"
	DifficultyGood Difficulty = "GOOD"
	DifficultyEasy Difficulty = "EASY"
)

// Valid reports whether d is one of the three ladder rungs.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyHard, DifficultyGood, DifficultyEasy:
		return true
	default:
		return false
	}
}

// ParseDifficulty converts a stored string into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if !d.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
	}
	return d, nil
}

// NextDifficulty returns the rung a card moves to after an answer.
//
// A correct answer moves one rung towards EASY, an incorrect one moves one
// rung towards HARD. Both ends saturate. Values off the ladder are returned
// unchanged.
func NextDifficulty(current Difficulty, correct bool) Difficulty {
	if correct {
		switch current {
		case DifficultyHard:
			return DifficultyGood
		case DifficultyGood, DifficultyEasy:
			return DifficultyEasy
		}
		return current
	}

	switch current {
	case DifficultyEasy:
		return DifficultyGood
	case DifficultyGood, DifficultyHard:
		return DifficultyHard
	}
	return current
}
