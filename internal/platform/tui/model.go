package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/horse-jump/internal/config"
	"github.com/vovakirdan/horse-jump/internal/core"
	"github.com/vovakirdan/horse-jump/internal/registry"
)

func init() {
	registry.Register(config.BackendBubbleTea, func(opts registry.Options) registry.Backend {
		return &Backend{opts: opts}
	})
}

// Model is the Bubble Tea model for running a game session.
// Keys are queued as they arrive and one is consumed per tick, so input
// polling never blocks the simulation.
type Model struct {
	session  registry.Session
	screen   *core.Screen
	keys     GameKeyMap
	pending  []core.Action
	quitting bool
}

// NewModel creates a model drawing into a width x height buffer.
// The session's setup frame is flushed immediately.
func NewModel(session registry.Session, width, height int) Model {
	screen := core.NewScreen(width, height)
	session.Flush(screen)

	return Model{
		session: session,
		screen:  screen,
		keys:    DefaultGameKeyMap(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.session.Interval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		return m.handleTick()

	case crashDoneMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey queues bound keys. The interrupt key ends the session at once.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Interrupt) {
		m.session.Stop()
		m.quitting = true
		return m, tea.Quit
	}

	if a := m.keys.Action(msg); a != core.ActionNone {
		m.pending = append(m.pending, a)
	}
	return m, nil
}

// handleTick polls one queued key and advances the session.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.session.Playable() {
		return m, nil
	}

	action := core.ActionNone
	if len(m.pending) > 0 {
		action = m.pending[0]
		m.pending = m.pending[1:]
	}

	m.session.HandleAction(action)
	m.session.Update()
	m.session.Flush(m.screen)

	if m.session.Playable() {
		return m, tickCmd(m.session.Interval())
	}
	if m.session.State().Crashed {
		return m, crashPauseCmd(m.session.CrashPause())
	}
	m.quitting = true
	return m, tea.Quit
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen)
}

// Backend runs sessions as a Bubble Tea program on the alternate screen.
type Backend struct {
	opts registry.Options
}

// Run plays the session until it stops, the user interrupts or ctx is
// cancelled. Bubble Tea restores the terminal on every exit path.
func (b *Backend) Run(ctx context.Context, s registry.Session) (core.GameState, error) {
	model := NewModel(s, b.opts.Width, b.opts.Height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	b.opts.Logger.Debug("bubbletea backend started")
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
		s.Stop()
		err = nil
	}
	state := s.State()
	if err != nil {
		return state, fmt.Errorf("run game: %w", err)
	}

	b.opts.Logger.Debug("bubbletea backend finished", "score", state.Score, "crashed", state.Crashed)
	return state, nil
}
