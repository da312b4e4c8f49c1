// Package tui provides the Bubble Tea integration for horse-jump.
// It runs the difficulty prompt and drives game sessions on the
// alternate screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// crashDoneMsg ends the pause that keeps the crash frame on screen.
type crashDoneMsg struct{}

// tickCmd returns a Bubble Tea command that fires one tick after interval.
// The interval shrinks as the game speeds up, so each tick schedules the next.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// crashPauseCmd waits d before ending the program.
func crashPauseCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return crashDoneMsg{}
	})
}
