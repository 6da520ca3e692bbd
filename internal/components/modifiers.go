package components

import "github.com/charmbracelet/lipgloss"

// StyleApplier layers one theme-aware modification onto a style.
type StyleApplier interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc adapts a plain function to StyleApplier.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

func (fn StyleFunc) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	return fn(base, theme)
}

// Style applies appliers in order against the current global theme.
func Style(base lipgloss.Style, appliers ...StyleApplier) lipgloss.Style {
	return StyleWith(GetTheme(), base, appliers...)
}

// StyleWith applies appliers in order against an explicit theme.
func StyleWith(theme Theme, base lipgloss.Style, appliers ...StyleApplier) lipgloss.Style {
	for _, applier := range appliers {
		if applier == nil {
			continue
		}
		base = applier.Apply(base, theme)
	}
	return base
}

func cloneAppliers(base []StyleApplier, extras ...StyleApplier) []StyleApplier {
	cloned := make([]StyleApplier, len(base)+len(extras))
	copy(cloned, base)
	copy(cloned[len(base):], extras)
	return cloned
}

// Background paints the slot's base colour with its on-base text colour.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// BorderColour tints an existing border with the slot's base colour.
func BorderColour(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(slot(theme.Palette).Base)
	}
}

func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if variant == BorderVariantNone {
			return base.UnsetBorderStyle()
		}
		return base.Border(theme.Borders.For(variant))
	}
}

func Padding(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Padding(spacingLookup(theme.Spacing.Padding, size))
	}
}

func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

func PaddingY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.PaddingTop(value).PaddingBottom(value)
	}
}

// MarginX spaces a block away from its horizontal neighbours.
func MarginX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Margin, size)
		return base.MarginLeft(value).MarginRight(value)
	}
}

// Typography inherits the variant's text preset without overriding what base sets.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(theme.Typography.For(variant))
	}
}

// Style bundles shared by several components.

// panelStyle frames neutral content such as option lists.
func panelStyle() []StyleApplier {
	return []StyleApplier{
		Border(BorderVariantRounded),
		BorderColour(PaletteNeutral),
		PaddingX(SpacingSizeSmall),
	}
}

func solidStyle(slot PaletteSlot, border BorderVariant) []StyleApplier {
	return []StyleApplier{
		Background(slot),
		Border(border),
		BorderColour(slot),
		PaddingX(SpacingSizeMedium),
	}
}

// TextPalette returns a style coloured with a raw palette shade, for text
// that should not follow a semantic slot.
func TextPalette(family PaletteFamily, shade PaletteShade) lipgloss.Style {
	if color, ok := PaletteColor(family, shade); ok {
		return lipgloss.NewStyle().Foreground(color)
	}
	return lipgloss.NewStyle()
}
