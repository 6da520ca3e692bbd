package numberfield

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/bookingkit/internal/numeric"
)

// StepMsg asks the field with the matching ID to step once. Step buttons
// owned by a host send it instead of key presses.
type StepMsg struct {
	ID        string
	Direction numeric.Direction
}

// BlurMsg asks the field with the matching ID to lose focus and settle.
type BlurMsg struct {
	ID string
}

// ChangedMsg reports a new committed value.
type ChangedMsg struct {
	ID    string
	Value numeric.Value
}

func changedCmd(id string, value numeric.Value) tea.Cmd {
	return func() tea.Msg {
		return ChangedMsg{ID: id, Value: value}
	}
}

// StepCmd wraps StepMsg for hosts composing commands.
func StepCmd(id string, dir numeric.Direction) tea.Cmd {
	return func() tea.Msg {
		return StepMsg{ID: id, Direction: dir}
	}
}
