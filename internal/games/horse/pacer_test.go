package horse

import (
	"testing"
	"time"

	"github.com/vovakirdan/horse-jump/internal/config"
)

func TestPacerSpeedsUpEveryPeriod(t *testing.T) {
	clock := newFakeClock()
	p := NewPacer(clock, config.DefaultConfig().Pacing)

	if p.Interval() != 100*time.Millisecond {
		t.Fatalf("initial interval = %s, expected 100ms", p.Interval())
	}

	clock.Advance(4999 * time.Millisecond)
	if p.Check() {
		t.Fatal("sped up before the period elapsed")
	}

	clock.Advance(time.Millisecond)
	if !p.Check() {
		t.Fatal("should speed up once the period has elapsed")
	}
	if got := p.Interval(); got < 89*time.Millisecond || got > 91*time.Millisecond {
		t.Errorf("interval after one speed-up = %s, expected ~90ms", got)
	}

	// The reference time was reset
	clock.Advance(time.Second)
	if p.Check() {
		t.Error("speed-up period should restart after each speed-up")
	}
}

func TestPacerIntervalNeverReachesZero(t *testing.T) {
	clock := newFakeClock()
	p := NewPacer(clock, config.DefaultConfig().Pacing)

	prev := p.Interval()
	for i := 0; i < 1000; i++ {
		clock.Advance(5 * time.Second)
		p.Check()
		cur := p.Interval()
		if cur <= 0 {
			t.Fatalf("interval reached %s after %d speed-ups", cur, i+1)
		}
		if cur > prev {
			t.Fatalf("interval grew from %s to %s", prev, cur)
		}
		prev = cur
	}
}
