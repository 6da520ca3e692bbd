package components

import (
	"github.com/charmbracelet/lipgloss"
)

// NumberInput lays out a numeric control: a decrement button, the text box
// and an increment button, inside a Field shell. It draws whatever it is
// given; enabling the step buttons is the caller's decision.
type NumberInput struct {
	Field
	Input        string
	Width        int
	CanDecrement bool
	CanIncrement bool
}

const defaultNumberInputWidth = 12

func (n NumberInput) View() string {
	width := n.Width
	if width <= 0 {
		width = defaultNumberInputWidth
	}

	box := InputStyle(n.State()).Width(width).Render(n.Input)
	dec := StepButton("-", n.CanDecrement && !n.Disabled)
	inc := StepButton("+", n.CanIncrement && !n.Disabled)

	control := lipgloss.JoinHorizontal(lipgloss.Center, "  ", dec.View(), " ", box, " ", inc.View())
	return n.Field.Wrap(control)
}
