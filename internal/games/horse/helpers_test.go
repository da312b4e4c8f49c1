package horse

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/horse-jump/internal/config"
)

// scriptedRand returns the scripted values in order, then defers to fallback.
type scriptedRand struct {
	script   []int
	fallback func(n int) int
}

func (s *scriptedRand) Intn(n int) int {
	if len(s.script) > 0 {
		v := s.script[0]
		s.script = s.script[1:]
		return v
	}
	return s.fallback(n)
}

// maxRoll always rolls the highest value, which keeps spawn gaps wide.
func maxRoll(n int) int { return n - 1 }

// fakeClock only moves when told to.
type fakeClock struct {
	now   time.Time
	slept []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	c.now = c.now.Add(d)
}

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

// newTestGame builds a game on a 40x9 terminal, the smallest allowed.
func newTestGame(rng *scriptedRand, clock *fakeClock) *Game {
	g := New(config.DefaultConfig(), config.DifficultyEasy, rng, clock, quietLogger())
	if err := g.Setup(40, 9); err != nil {
		panic(err)
	}
	return g
}
