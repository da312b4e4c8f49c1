// Package console runs the game on a tcell screen with an imperative
// render, sleep, poll and update loop.
package console

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/horse-jump/internal/core"
)

// Terminal implements core.Terminal over a tcell screen.
// Events are pumped from PollEvent into a buffered channel so that
// PollKey never blocks.
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event

	col   int
	row   int
	style tcell.Style

	closeOnce sync.Once
}

// NewTerminal wraps an initialized screen and starts the event pump.
// The pump exits when the screen is finalized. Events arriving while the
// buffer is full are dropped.
func NewTerminal(screen tcell.Screen) *Terminal {
	t := &Terminal{
		screen: screen,
		events: make(chan tcell.Event, 32),
		style:  tcell.StyleDefault,
	}
	go t.pump()
	return t
}

func (t *Terminal) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		default:
		}
	}
}

// Size returns the screen dimensions.
func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

// MoveCursor positions the write cursor.
func (t *Terminal) MoveCursor(col, row int) {
	t.col, t.row = col, row
}

// SetColor selects the foreground for subsequent writes.
func (t *Terminal) SetColor(c core.Color) {
	t.style = styleFor(c)
}

// WriteText puts text at the cursor one cell per rune.
// tcell drops cells outside the screen.
func (t *Terminal) WriteText(s string) {
	for _, r := range s {
		t.screen.SetContent(t.col, t.row, r, nil, t.style)
		t.col++
	}
}

// PollKey returns the oldest pending key action, or ActionNone.
// Events that are not bound keys are discarded.
func (t *Terminal) PollKey() core.Action {
	for {
		select {
		case ev := <-t.events:
			if k, ok := ev.(*tcell.EventKey); ok {
				if a := mapKey(k.Key(), k.Rune()); a != core.ActionNone {
					return a
				}
			}
		default:
			return core.ActionNone
		}
	}
}

// HideCursor hides the terminal cursor.
func (t *Terminal) HideCursor() {
	t.screen.HideCursor()
}

// ShowCursor parks the cursor on the bottom row and shows it.
func (t *Terminal) ShowCursor() {
	_, h := t.screen.Size()
	t.screen.ShowCursor(0, h-1)
}

// Present makes the pending cells visible.
func (t *Terminal) Present() {
	t.screen.Show()
}

// Close restores the terminal. Safe to call more than once.
func (t *Terminal) Close() {
	t.closeOnce.Do(t.screen.Fini)
}

// mapKey translates a tcell key to a game action.
// In raw mode ctrl+c arrives as a key rather than a signal.
func mapKey(key tcell.Key, r rune) core.Action {
	switch key {
	case tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyRune:
		switch r {
		case ' ':
			return core.ActionJump
		case 'q':
			return core.ActionQuit
		}
	}
	return core.ActionNone
}

// styleFor maps a game color onto the 256-color palette.
func styleFor(c core.Color) tcell.Style {
	code, ok := c.ANSI()
	if !ok {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.PaletteColor(code))
}
