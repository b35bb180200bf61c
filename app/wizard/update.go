package wizard

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Init fulfills the Bubble Tea Model interface.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update advances the walk on enter and cancels on esc or ctrl+c.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			return m.advance()
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// advance records the current answer and moves to the next prompt. At the
// confirmation step an empty answer counts as yes.
func (m Model) advance() (tea.Model, tea.Cmd) {
	if m.step == StepConfirm {
		answer := strings.ToLower(strings.TrimSpace(m.input.Value()))
		if answer == "" || answer == "y" || answer == "yes" {
			m.confirmed = true
		} else {
			m.cancelled = true
		}
		return m, tea.Quit
	}
	m.answers[m.step] = strings.TrimSpace(m.input.Value())
	m.step++
	m.input.SetValue("")
	if m.step == StepConfirm {
		m.config = m.buildConfig()
		m.input.Placeholder = "Y/n"
	} else {
		m.input.Placeholder = prompts[m.step].placeholder
	}
	return m, nil
}
