package console

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/horse-jump/internal/config"
	"github.com/vovakirdan/horse-jump/internal/core"
	"github.com/vovakirdan/horse-jump/internal/registry"
)

func init() {
	registry.Register(config.BackendTcell, func(opts registry.Options) registry.Backend {
		return &Backend{opts: opts}
	})
}

// Loop drives a session until it stops or ctx is cancelled.
// Each frame is render, sleep, poll one key, update. After a collision the
// last frame stays up for the session's crash pause.
func Loop(ctx context.Context, s registry.Session, term core.Terminal, clock core.Clock) core.GameState {
	term.HideCursor()
	defer term.ShowCursor()

	for s.Playable() {
		s.Flush(term)
		term.Present()

		if ctx.Err() != nil {
			s.Stop()
			break
		}
		clock.Sleep(s.Interval())

		s.HandleAction(term.PollKey())
		s.Update()
	}

	s.Flush(term)
	term.Present()

	state := s.State()
	if state.Crashed {
		clock.Sleep(s.CrashPause())
	}
	return state
}

// Backend runs sessions on a real tcell screen.
type Backend struct {
	opts registry.Options
}

// Run opens the screen, plays the session and restores the terminal.
func (b *Backend) Run(ctx context.Context, s registry.Session) (core.GameState, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return s.State(), fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return s.State(), fmt.Errorf("init screen: %w", err)
	}

	term := NewTerminal(screen)
	defer term.Close()
	screen.Clear()

	b.opts.Logger.Debug("tcell backend started")
	state := Loop(ctx, s, term, b.opts.Clock)
	b.opts.Logger.Debug("tcell backend finished", "score", state.Score, "crashed", state.Crashed)
	return state, nil
}
