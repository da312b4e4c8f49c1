package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrPromptCancelled is returned when the player leaves the prompt without answering.
var ErrPromptCancelled = errors.New("difficulty prompt cancelled")

var (
	promptColor = lipgloss.Color("11")
	promptStyle = lipgloss.NewStyle().Foreground(promptColor).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// PromptKeyMap defines the key bindings for the difficulty prompt.
type PromptKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PromptKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel}
}

// FullHelp returns key bindings for the full help view.
func (k PromptKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultPromptKeyMap returns default key bindings.
func DefaultPromptKeyMap() PromptKeyMap {
	return PromptKeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// PromptModel asks for a difficulty. Whatever is typed is returned as-is;
// interpreting it is left to config.ParseDifficulty.
type PromptModel struct {
	input     textinput.Model
	help      help.Model
	keys      PromptKeyMap
	submitted bool
	cancelled bool
}

// NewPromptModel creates a focused difficulty prompt.
func NewPromptModel() PromptModel {
	ti := textinput.New()
	ti.Placeholder = "1, 2 or 3"
	ti.Prompt = "> "
	ti.PromptStyle = promptStyle
	ti.Focus()

	return PromptModel{
		input: ti,
		help:  help.New(),
		keys:  DefaultPromptKeyMap(),
	}
}

// Init sends a command to start the cursor blinking.
func (m PromptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Submit):
			m.submitted = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Cancel):
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt.
func (m PromptModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(promptStyle.Render("Please enter a difficulty from 1 to 3"))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("Or game will assign a random difficulty"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

// Value returns the text typed so far.
func (m PromptModel) Value() string {
	return m.input.Value()
}

// Submitted reports whether the answer was confirmed.
func (m PromptModel) Submitted() bool {
	return m.submitted
}

// RunPrompt shows the difficulty prompt inline and returns the raw answer.
func RunPrompt(ctx context.Context) (string, error) {
	p := tea.NewProgram(NewPromptModel(), tea.WithContext(ctx))

	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
			return "", ErrPromptCancelled
		}
		return "", fmt.Errorf("run prompt: %w", err)
	}

	m, ok := final.(PromptModel)
	if !ok || !m.Submitted() {
		return "", ErrPromptCancelled
	}
	return m.Value(), nil
}
