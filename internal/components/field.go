package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Field is the form shell around a control: a label row with an optional
// required marker, the control itself, and a help or error line beneath.
type Field struct {
	Label    string
	Required bool
	Help     string
	Error    string
	Focused  bool
	Disabled bool
}

// State maps the shell's flags onto the input ring state. Errors win over
// focus, and disabled wins over both.
func (f Field) State() InputState {
	switch {
	case f.Disabled:
		return InputStateDisabled
	case f.Error != "":
		return InputStateInvalid
	case f.Focused:
		return InputStateFocus
	default:
		return InputStateDefault
	}
}

// Wrap renders the shell around already rendered control content.
func (f Field) Wrap(content string) string {
	var rows []string

	if f.Label != "" {
		rows = append(rows, f.labelRow())
	}
	rows = append(rows, content)

	switch {
	case f.Error != "":
		rows = append(rows, ErrorText(f.Error).View())
	case f.Help != "":
		rows = append(rows, Caption(f.Help).View())
	}

	return strings.Join(rows, "\n")
}

func (f Field) labelRow() string {
	marker := "  "
	style := Style(lipgloss.NewStyle(), Typography(TypographyVariantLabel))
	switch {
	case f.Disabled:
		style = style.Faint(true)
	case f.Focused:
		marker = Style(lipgloss.NewStyle(), Foreground(PalettePrimary)).Render("›") + " "
		style = Style(style, Foreground(PalettePrimary))
	}

	row := marker + style.Render(f.Label)
	if f.Required {
		row += Style(lipgloss.NewStyle(), Foreground(PaletteDanger)).Render(" *")
	}
	return row
}
