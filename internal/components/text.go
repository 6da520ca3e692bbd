package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Text is a run of content rendered with a typography preset and optional
// extra modifiers.
type Text struct {
	content  string
	variant  TypographyVariant
	appliers []StyleApplier
}

func NewText(content string, variant TypographyVariant) Text {
	return Text{content: content, variant: variant}
}

func (t Text) Content() string { return t.content }

func (t Text) Variant() TypographyVariant { return t.variant }

// With returns a copy with additional modifiers applied after the preset.
func (t Text) With(appliers ...StyleApplier) Text {
	t.appliers = cloneAppliers(t.appliers, appliers...)
	return t
}

func (t Text) View() string {
	base := Style(lipgloss.NewStyle(), t.appliers...)
	return Style(base, Typography(t.variant)).Render(t.content)
}

func Body(content string) Text       { return NewText(content, TypographyVariantBody) }
func Display(content string) Text    { return NewText(content, TypographyVariantDisplay) }
func Heading(content string) Text    { return NewText(content, TypographyVariantHeading) }
func Subheading(content string) Text { return NewText(content, TypographyVariantSubheading) }
func Caption(content string) Text    { return NewText(content, TypographyVariantCaption) }
func Label(content string) Text      { return NewText(content, TypographyVariantLabel) }
func Code(content string) Text       { return NewText(content, TypographyVariantCode) }
func Emphasis(content string) Text   { return NewText(content, TypographyVariantEmphasis) }

// ErrorText renders content in the danger colour.
func ErrorText(content string) Text {
	return Caption(content).With(Foreground(PaletteDanger))
}

// Divider renders a horizontal rule in the neutral muted colour.
func Divider(width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(GetTheme().Palette.Neutral.Muted).
		Render(strings.Repeat("─", width))
}
