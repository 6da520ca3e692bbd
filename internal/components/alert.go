package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// AlertVariant selects the severity treatment of an alert.
type AlertVariant int

const (
	AlertVariantInfo AlertVariant = iota
	AlertVariantSuccess
	AlertVariantWarning
	AlertVariantError
)

func (v AlertVariant) String() string {
	switch v {
	case AlertVariantSuccess:
		return "success"
	case AlertVariantWarning:
		return "warning"
	case AlertVariantError:
		return "error"
	default:
		return "info"
	}
}

// AlertOptions defines the configuration options for an alert.
type AlertOptions struct {
	Variant     AlertVariant
	Title       string
	Dismissible bool
	Width       int
}

// Alert is a bordered message block.
type Alert struct {
	message string
	options AlertOptions
}

func NewAlert(message string, opts AlertOptions) Alert {
	return Alert{message: message, options: opts}
}

func (a Alert) Message() string { return a.message }

func (a Alert) Options() AlertOptions { return a.options }

func (a Alert) WithVariant(variant AlertVariant) Alert {
	a.options.Variant = variant
	return a
}

func (a Alert) WithTitle(title string) Alert {
	a.options.Title = title
	return a
}

func (a Alert) WithDismissible(dismissible bool) Alert {
	a.options.Dismissible = dismissible
	return a
}

func (a Alert) WithWidth(width int) Alert {
	a.options.Width = width
	return a
}

// View renders the alert. The title row carries the severity icon and, when
// dismissible, a close marker.
func (a Alert) View() string {
	slot := alertSlot(a.options.Variant)
	accent := Style(lipgloss.NewStyle(), Foreground(slot), Typography(TypographyVariantEmphasis))

	header := accent.Render(alertIcon(a.options.Variant))
	if a.options.Title != "" {
		header += " " + accent.Render(a.options.Title)
	}
	if a.options.Dismissible {
		header += "  " + Style(lipgloss.NewStyle(), Typography(TypographyVariantCaption)).Render("[x]")
	}

	lines := []string{header}
	if a.message != "" {
		lines = append(lines, Style(lipgloss.NewStyle(), Typography(TypographyVariantBody)).Render(a.message))
	}

	style := Style(lipgloss.NewStyle(), Border(BorderVariantNormal), BorderColour(slot), PaddingX(SpacingSizeSmall))
	if a.options.Width > 0 {
		style = style.Width(a.options.Width)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func alertSlot(variant AlertVariant) PaletteSlot {
	switch variant {
	case AlertVariantSuccess:
		return PaletteSuccess
	case AlertVariantWarning:
		return PaletteWarning
	case AlertVariantError:
		return PaletteDanger
	default:
		return PaletteInfo
	}
}

func alertIcon(variant AlertVariant) string {
	switch variant {
	case AlertVariantSuccess:
		return "✓"
	case AlertVariantWarning:
		return "!"
	case AlertVariantError:
		return "✗"
	default:
		return "i"
	}
}

// SuccessAlert creates a titled, dismissible success alert.
func SuccessAlert(message string) Alert {
	return NewAlert(message, AlertOptions{Variant: AlertVariantSuccess, Title: "Success", Dismissible: true})
}

func ErrorAlert(message string) Alert {
	return NewAlert(message, AlertOptions{Variant: AlertVariantError, Title: "Error", Dismissible: true})
}

func WarningAlert(message string) Alert {
	return NewAlert(message, AlertOptions{Variant: AlertVariantWarning, Title: "Warning", Dismissible: true})
}

func InfoAlert(message string) Alert {
	return NewAlert(message, AlertOptions{Variant: AlertVariantInfo, Title: "Info", Dismissible: true})
}
