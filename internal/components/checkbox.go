package components

import "github.com/charmbracelet/lipgloss"

// Checkbox is a labelled boolean control.
type Checkbox struct {
	label    string
	checked  bool
	disabled bool
	focused  bool
}

func NewCheckbox(label string, checked bool) Checkbox {
	return Checkbox{label: label, checked: checked}
}

func (c Checkbox) Label() string  { return c.label }
func (c Checkbox) Checked() bool  { return c.checked }
func (c Checkbox) Disabled() bool { return c.disabled }
func (c Checkbox) Focused() bool  { return c.focused }

// Toggle flips the checked state. Disabled checkboxes are returned unchanged.
func (c Checkbox) Toggle() Checkbox {
	if c.disabled {
		return c
	}
	c.checked = !c.checked
	return c
}

func (c Checkbox) WithChecked(checked bool) Checkbox {
	c.checked = checked
	return c
}

func (c Checkbox) WithDisabled(disabled bool) Checkbox {
	c.disabled = disabled
	return c
}

func (c Checkbox) WithFocus(focused bool) Checkbox {
	c.focused = focused
	return c
}

func (c Checkbox) View() string {
	box := "[ ]"
	if c.checked {
		box = "[x]"
	}

	boxStyle := Style(lipgloss.NewStyle(), Foreground(PaletteNeutral))
	labelStyle := Style(lipgloss.NewStyle(), Typography(TypographyVariantBody))
	switch {
	case c.disabled:
		boxStyle = boxStyle.Faint(true)
		labelStyle = labelStyle.Faint(true)
	case c.focused:
		boxStyle = Style(lipgloss.NewStyle(), Foreground(PalettePrimary), Typography(TypographyVariantEmphasis))
		labelStyle = Style(labelStyle, Typography(TypographyVariantEmphasis)).Underline(true)
	case c.checked:
		boxStyle = Style(lipgloss.NewStyle(), Foreground(PaletteSuccess))
	}

	return boxStyle.Render(box) + " " + labelStyle.Render(c.label)
}
