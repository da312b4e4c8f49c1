package config

import (
	"strings"

	"github.com/vovakirdan/horse-jump/internal/core"
)

// Difficulty is the player's chosen level, 1 (easy) to 3 (hard).
type Difficulty int

const (
	DifficultyEasy   Difficulty = 1
	DifficultyNormal Difficulty = 2
	DifficultyHard   Difficulty = 3
)

// Valid reports whether d is one of the three levels.
func (d Difficulty) Valid() bool {
	return d >= DifficultyEasy && d <= DifficultyHard
}

// ParseDifficulty interprets the answer to the difficulty prompt.
// A single digit 1-3 selects that level; anything else picks one at random.
func ParseDifficulty(input string, rng core.Rand) Difficulty {
	input = strings.TrimSpace(input)
	if len(input) == 1 && input[0] >= '1' && input[0] <= '3' {
		return Difficulty(input[0] - '0')
	}
	return RandomDifficulty(rng)
}

// RandomDifficulty picks a level uniformly.
func RandomDifficulty(rng core.Rand) Difficulty {
	return Difficulty(core.RandRange(rng, int(DifficultyEasy), int(DifficultyHard)))
}

// GapRange returns the bounds of the random spawn threshold for difficulty d.
// Higher difficulty gives smaller gaps and denser obstacles.
func (o Obstacles) GapRange(d Difficulty) (lo, hi int) {
	steps := int(DifficultyHard) + 1 - int(d)
	return o.GapMinBase + o.GapMinStep*steps, o.GapMaxBase + o.GapMaxStep*steps
}
