package config

import "testing"

type scriptedRand struct {
	roll func(n int) int
}

func (s scriptedRand) Intn(n int) int { return s.roll(n) }

func TestParseDifficulty(t *testing.T) {
	// Random fallback always lands on the highest level
	rng := scriptedRand{roll: func(n int) int { return n - 1 }}

	tests := []struct {
		input    string
		expected Difficulty
	}{
		{"1", DifficultyEasy},
		{"2", DifficultyNormal},
		{"3", DifficultyHard},
		{" 1\n", DifficultyEasy},
		{"", DifficultyHard},
		{"0", DifficultyHard},
		{"4", DifficultyHard},
		{"12", DifficultyHard},
		{"x", DifficultyHard},
	}

	for _, tc := range tests {
		if got := ParseDifficulty(tc.input, rng); got != tc.expected {
			t.Errorf("ParseDifficulty(%q) = %d, expected %d", tc.input, got, tc.expected)
		}
	}
}

func TestRandomDifficultyRange(t *testing.T) {
	for roll := 0; roll < 3; roll++ {
		r := roll
		d := RandomDifficulty(scriptedRand{roll: func(n int) int {
			if n != 3 {
				t.Fatalf("RandomDifficulty drew from %d values, expected 3", n)
			}
			return r
		}})
		if !d.Valid() {
			t.Errorf("RandomDifficulty produced invalid level %d", d)
		}
		if int(d) != roll+1 {
			t.Errorf("roll %d gave level %d, expected %d", roll, d, roll+1)
		}
	}
}

func TestGapRange(t *testing.T) {
	o := DefaultConfig().Obstacles

	tests := []struct {
		d      Difficulty
		lo, hi int
	}{
		{DifficultyEasy, 22, 33},
		{DifficultyNormal, 18, 27},
		{DifficultyHard, 14, 21},
	}

	for _, tc := range tests {
		lo, hi := o.GapRange(tc.d)
		if lo != tc.lo || hi != tc.hi {
			t.Errorf("GapRange(%d) = [%d, %d], expected [%d, %d]", tc.d, lo, hi, tc.lo, tc.hi)
		}
	}
}
