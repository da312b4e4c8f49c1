package console

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/horse-jump/internal/config"
	"github.com/vovakirdan/horse-jump/internal/core"
	"github.com/vovakirdan/horse-jump/internal/games/horse"
	"github.com/vovakirdan/horse-jump/internal/registry"
)

// fakeTerminal draws into a core.Screen and replays scripted keys.
type fakeTerminal struct {
	*core.Screen
	keys          []core.Action
	presents      int
	cursorVisible bool
}

func newFakeTerminal(w, h int) *fakeTerminal {
	return &fakeTerminal{Screen: core.NewScreen(w, h), cursorVisible: true}
}

func (f *fakeTerminal) Size() (int, int) { return f.Width(), f.Height() }
func (f *fakeTerminal) HideCursor()      { f.cursorVisible = false }
func (f *fakeTerminal) ShowCursor()      { f.cursorVisible = true }
func (f *fakeTerminal) Present()         { f.presents++ }

func (f *fakeTerminal) PollKey() core.Action {
	if len(f.keys) == 0 {
		return core.ActionNone
	}
	a := f.keys[0]
	f.keys = f.keys[1:]
	return a
}

type fakeClock struct {
	now   time.Time
	slept []time.Duration
}

func (c *fakeClock) Now() time.Time { return c.now }
func (c *fakeClock) Sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	c.now = c.now.Add(d)
}

type scriptedRand struct {
	script []int
}

func (s *scriptedRand) Intn(n int) int {
	if len(s.script) > 0 {
		v := s.script[0]
		s.script = s.script[1:]
		return v
	}
	return n - 1
}

func newSession(t *testing.T, clock core.Clock, script ...int) *horse.Game {
	t.Helper()
	g := horse.New(config.DefaultConfig(), config.DifficultyEasy, &scriptedRand{script: script}, clock, log.New(io.Discard))
	if err := g.Setup(40, 9); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	return g
}

func TestLoopRunsUntilCollision(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	session := newSession(t, clock, 1)
	term := newFakeTerminal(40, 9)

	state := Loop(context.Background(), session, term, clock)

	if !state.Crashed || state.Score != 31 {
		t.Fatalf("state = %+v, expected crash with score 31", state)
	}
	if !term.cursorVisible {
		t.Error("cursor should be restored")
	}

	// 32 frame sleeps, then the crash pause
	if len(clock.slept) != 33 {
		t.Fatalf("slept %d times, expected 33", len(clock.slept))
	}
	if clock.slept[0] != 100*time.Millisecond {
		t.Errorf("first frame sleep = %s", clock.slept[0])
	}
	if last := clock.slept[len(clock.slept)-1]; last != time.Second {
		t.Errorf("crash pause = %s, expected 1s", last)
	}
	if term.Row(0)[27:39] != "Score = 0031" {
		t.Errorf("score row = %q", term.Row(0))
	}
}

func TestLoopQuitKey(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	session := newSession(t, clock, 1)
	term := newFakeTerminal(40, 9)
	term.keys = []core.Action{core.ActionNone, core.ActionNone, core.ActionQuit}

	state := Loop(context.Background(), session, term, clock)

	if state.Crashed {
		t.Error("quitting is not a crash")
	}
	if state.Score != 2 {
		t.Errorf("score = %d, expected 2", state.Score)
	}
	for _, d := range clock.slept {
		if d == time.Second {
			t.Error("no crash pause expected after quitting")
		}
	}
}

func TestLoopStopsOnCancel(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	session := newSession(t, clock, 1)
	term := newFakeTerminal(40, 9)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	state := Loop(ctx, session, term, clock)

	if session.Playable() {
		t.Error("session should be stopped")
	}
	if state.Score != 0 || state.Crashed {
		t.Errorf("state = %+v, expected an untouched stop", state)
	}
	if len(clock.slept) != 0 {
		t.Errorf("slept %v after cancellation", clock.slept)
	}
	if term.presents == 0 {
		t.Error("the first frame should still be presented")
	}
}

func TestBackendRegistered(t *testing.T) {
	if !registry.Exists(config.BackendTcell) {
		t.Fatalf("backend %q not registered", config.BackendTcell)
	}
}
