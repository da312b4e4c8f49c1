package core

import "time"

// Surface is the positioned-text output side of a terminal.
// The render batch only needs this much of a terminal.
type Surface interface {
	// MoveCursor positions the draw cursor. Column and row are zero-based.
	MoveCursor(col, row int)
	// SetColor selects the color used by subsequent WriteText calls.
	SetColor(c Color)
	// WriteText emits text at the cursor and advances it.
	WriteText(s string)
}

// Terminal is everything the game loop requires from the console.
// One implementation exists per backend; the game never branches on which.
type Terminal interface {
	Surface

	// Size returns the viewport width and height in cells.
	Size() (width, height int)
	// PollKey returns the next pending action without blocking.
	// ActionNone means no key was pending or the key is not bound.
	PollKey() Action
	HideCursor()
	ShowCursor()
	// Present makes everything written since the last call visible.
	Present()
}

// Clock is a monotonic time source with a pacing sleep.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock is the real Clock. time.Now carries a monotonic reading,
// so differences between two Now values are immune to wall-clock jumps.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

// Sleep pauses the calling goroutine for d.
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }
