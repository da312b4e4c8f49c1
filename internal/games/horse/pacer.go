package horse

import (
	"time"

	"github.com/vovakirdan/horse-jump/internal/config"
	"github.com/vovakirdan/horse-jump/internal/core"
)

// Pacer owns the frame interval and shrinks it at a fixed cadence.
type Pacer struct {
	clock    core.Clock
	interval float64 // seconds; kept as a float so repeated scaling never reaches zero
	every    time.Duration
	factor   float64
	mark     time.Time
}

// NewPacer creates a pacer whose first speed-up period starts now.
func NewPacer(clock core.Clock, cfg config.Pacing) *Pacer {
	return &Pacer{
		clock:    clock,
		interval: cfg.FrameInterval.Seconds(),
		every:    cfg.SpeedupEvery,
		factor:   cfg.SpeedupFactor,
		mark:     clock.Now(),
	}
}

// Interval returns the current frame sleep. It is never zero.
func (p *Pacer) Interval() time.Duration {
	d := time.Duration(p.interval * float64(time.Second))
	if d < time.Nanosecond {
		return time.Nanosecond
	}
	return d
}

// Check speeds the game up when a full period has elapsed since the last
// speed-up, and reports whether it did.
func (p *Pacer) Check() bool {
	now := p.clock.Now()
	if now.Sub(p.mark) < p.every {
		return false
	}
	p.mark = now
	p.interval *= p.factor
	return true
}
