package numberfield

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/bookingkit/internal/numeric"
)

// Init satisfies tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Focus gives the text box focus and returns its cursor command.
func (m Model) Focus() (Model, tea.Cmd) {
	m.focused = true
	cmd := m.input.Focus()
	return m, cmd
}

// Blur removes focus and settles the committed value into range.
func (m Model) Blur() (Model, tea.Cmd) {
	m.focused = false
	m.touched = true
	m.input.Blur()

	next, outcome := m.field.Blur()
	m.field = next
	return m.finish(outcome)
}

// Step applies one step in dir, as a step button would.
func (m Model) Step(dir numeric.Direction) (Model, tea.Cmd) {
	next, outcome := m.field.Step(dir)
	m.field = next
	return m.finish(outcome)
}

// Update handles messages addressed to this field.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case StepMsg:
		if msg.ID != m.id {
			return m, nil
		}
		return m.Step(msg.Direction)
	case BlurMsg:
		if msg.ID != m.id {
			return m, nil
		}
		return m.Blur()
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Increment):
			return m.Step(numeric.Increment)
		case key.Matches(msg, m.keys.Decrement):
			return m.Step(numeric.Decrement)
		}
	}

	return m.forward(msg)
}

// forward lets the text box handle msg, then runs any text it produced
// through the field. Pastes arrive as their own message, so every message
// takes this path. Rejected edits put the previous text and cursor back.
func (m Model) forward(msg tea.Msg) (Model, tea.Cmd) {
	before := m.input.Value()
	cursor := m.input.Position()

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)

	raw := m.input.Value()
	if raw == before {
		return m, inputCmd
	}

	next, outcome := m.field.Edit(raw)
	if outcome.Result == numeric.ResultRejected {
		m.last = outcome
		m.log.WithFields(map[string]any{"raw": raw}).Debug("edit rejected")
		m.input.SetValue(before)
		m.input.SetCursor(cursor)
		return m, inputCmd
	}

	m.field = next
	m, cmd := m.finish(outcome)
	return m, tea.Batch(inputCmd, cmd)
}

func (m Model) finish(outcome numeric.Outcome) (Model, tea.Cmd) {
	m.record(outcome)
	m.syncInput()
	if !outcome.Changed() {
		return m, nil
	}
	return m, changedCmd(m.id, outcome.Value)
}
