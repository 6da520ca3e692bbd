package numberfield

import "github.com/alexisbeaulieu97/bookingkit/internal/components"

// View renders the field with its label, step buttons and help line.
func (m Model) View() string {
	return components.NumberInput{
		Field: components.Field{
			Label:    m.label,
			Required: m.required,
			Help:     m.help,
			Error:    m.Error(),
			Focused:  m.focused,
		},
		Input:        m.input.View(),
		Width:        m.width,
		CanDecrement: m.field.CanDecrement(),
		CanIncrement: m.field.CanIncrement(),
	}.View()
}
