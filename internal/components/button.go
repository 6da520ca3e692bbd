package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ButtonVariant selects the colour treatment of a button.
type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantSecondary
	ButtonVariantDanger
	ButtonVariantOutline
	ButtonVariantGhost
)

// ButtonSize represents different button sizes.
type ButtonSize int

const (
	ButtonSizeSmall ButtonSize = iota
	ButtonSizeMedium
	ButtonSizeLarge
)

// ButtonOptions defines the configuration options for a button.
type ButtonOptions struct {
	Variant  ButtonVariant
	Size     ButtonSize
	Disabled bool
	Focus    bool
}

// Button is an activatable label. Buttons are values; the With* methods
// return modified copies.
type Button struct {
	label   string
	options ButtonOptions
}

func NewButton(label string, opts ButtonOptions) Button {
	return Button{label: label, options: opts}
}

// PrimaryButton creates a medium primary button.
func PrimaryButton(label string) Button {
	return NewButton(label, ButtonOptions{Variant: ButtonVariantPrimary, Size: ButtonSizeMedium})
}

// StepButton creates the compact outline button drawn beside numeric inputs.
func StepButton(label string, enabled bool) Button {
	return NewButton(label, ButtonOptions{
		Variant:  ButtonVariantOutline,
		Size:     ButtonSizeSmall,
		Disabled: !enabled,
	})
}

func (b Button) Label() string { return b.label }

func (b Button) Options() ButtonOptions { return b.options }

func (b Button) WithVariant(variant ButtonVariant) Button {
	b.options.Variant = variant
	return b
}

func (b Button) WithSize(size ButtonSize) Button {
	b.options.Size = size
	return b
}

func (b Button) WithDisabled(disabled bool) Button {
	b.options.Disabled = disabled
	return b
}

func (b Button) WithFocus(focus bool) Button {
	b.options.Focus = focus
	return b
}

// Activatable reports whether pressing the button should have any effect.
func (b Button) Activatable() bool {
	return !b.options.Disabled
}

// View renders the button.
func (b Button) View() string {
	return b.buildStyle().Render(b.label)
}

func (b Button) buildStyle() lipgloss.Style {
	appliers := cloneAppliers(buttonVariantAppliers(b.options.Variant), buttonSizeAppliers(b.options.Size)...)
	style := Style(lipgloss.NewStyle(), appliers...)

	theme := GetTheme()
	switch {
	case b.options.Disabled:
		style = style.
			UnsetBackground().
			Foreground(theme.Palette.Neutral.Base).
			BorderForeground(theme.Palette.Neutral.Muted).
			Faint(true)
	case b.options.Focus:
		style = Style(style, Border(BorderVariantThick)).BorderForeground(theme.Palette.Primary.Contrast)
	}

	return style
}

func buttonVariantAppliers(variant ButtonVariant) []StyleApplier {
	switch variant {
	case ButtonVariantSecondary:
		return cloneAppliers(solidStyle(PaletteSecondary, BorderVariantRounded), Typography(TypographyVariantEmphasis))
	case ButtonVariantDanger:
		return cloneAppliers(solidStyle(PaletteDanger, BorderVariantRounded), Typography(TypographyVariantEmphasis))
	case ButtonVariantOutline:
		return []StyleApplier{
			Border(BorderVariantRounded),
			BorderColour(PalettePrimary),
			Foreground(PalettePrimary),
			Typography(TypographyVariantEmphasis),
		}
	case ButtonVariantGhost:
		return []StyleApplier{
			Foreground(PalettePrimary),
			Typography(TypographyVariantBody),
		}
	default:
		return cloneAppliers(solidStyle(PalettePrimary, BorderVariantRounded), Typography(TypographyVariantEmphasis))
	}
}

func buttonSizeAppliers(size ButtonSize) []StyleApplier {
	switch size {
	case ButtonSizeSmall:
		return []StyleApplier{PaddingX(SpacingSizeExtraSmall), PaddingY(SpacingSizeNone)}
	case ButtonSizeLarge:
		return []StyleApplier{PaddingX(SpacingSizeLarge), PaddingY(SpacingSizeSmall)}
	default:
		return []StyleApplier{PaddingX(SpacingSizeMedium), PaddingY(SpacingSizeNone)}
	}
}

// ButtonGroup lays buttons out horizontally.
type ButtonGroup struct {
	buttons []Button
	spacing int
}

func NewButtonGroup(buttons ...Button) ButtonGroup {
	return ButtonGroup{
		buttons: buttons,
		spacing: MarginValue(SpacingSizeSmall),
	}
}

func (bg ButtonGroup) WithSpacing(spacing int) ButtonGroup {
	if spacing < 0 {
		spacing = 0
	}
	bg.spacing = spacing
	return bg
}

func (bg ButtonGroup) Add(button Button) ButtonGroup {
	bg.buttons = append(append([]Button(nil), bg.buttons...), button)
	return bg
}

func (bg ButtonGroup) Len() int { return len(bg.buttons) }

// View renders the group with buttons aligned on their top edge.
func (bg ButtonGroup) View() string {
	if len(bg.buttons) == 0 {
		return ""
	}

	parts := make([]string, 0, len(bg.buttons)*2-1)
	spacer := strings.Repeat(" ", bg.spacing)
	for i, button := range bg.buttons {
		if i > 0 && spacer != "" {
			parts = append(parts, spacer)
		}
		parts = append(parts, button.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
