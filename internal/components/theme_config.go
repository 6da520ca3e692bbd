package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/bookingkit/internal/config"
	kiterrors "github.com/alexisbeaulieu97/bookingkit/pkg/errors"
)

// config tables and theme tables must agree on the number of spacing tokens.
var _ [config.SpacingScaleLength - spacingSizeCount]struct{}
var _ [spacingSizeCount - config.SpacingScaleLength]struct{}

// ThemeFromConfig builds a theme from the configured base and applies
// spacing and palette overrides on top of it.
func ThemeFromConfig(cfg config.ThemeConfig) (Theme, error) {
	var theme Theme
	switch cfg.Base {
	case "", "light":
		theme = DefaultTheme()
	case "dark":
		theme = DarkTheme()
	default:
		return Theme{}, kiterrors.NewThemeError("base", fmt.Errorf("unknown base theme %q", cfg.Base))
	}

	if len(cfg.Spacing.Padding) > 0 {
		table, err := spacingFromConfig(cfg.Spacing.Padding)
		if err != nil {
			return Theme{}, kiterrors.NewThemeError("spacing.padding", err)
		}
		theme.Spacing.Padding = table
	}
	if len(cfg.Spacing.Margin) > 0 {
		table, err := spacingFromConfig(cfg.Spacing.Margin)
		if err != nil {
			return Theme{}, kiterrors.NewThemeError("spacing.margin", err)
		}
		theme.Spacing.Margin = table
	}

	for name, override := range cfg.Palette {
		slot, ok := slotByName(&theme.Palette, name)
		if !ok {
			return Theme{}, kiterrors.NewThemeError("palette."+name, fmt.Errorf("unknown palette slot"))
		}
		applyColour(&slot.Base, override.Base)
		applyColour(&slot.OnBase, override.OnBase)
		applyColour(&slot.Muted, override.Muted)
		applyColour(&slot.Contrast, override.Contrast)
	}

	return rebuildDerived(theme), nil
}

func spacingFromConfig(values []int) (spacingTable, error) {
	var table spacingTable
	if len(values) != len(table) {
		return table, fmt.Errorf("expected %d values, got %d", len(table), len(values))
	}
	for i, v := range values {
		if v < 0 {
			return table, fmt.Errorf("value %d is negative", i)
		}
		table[i] = v
	}
	return table, nil
}

func applyColour(dst *lipgloss.AdaptiveColor, src config.ColourConfig) {
	if src.Light != "" {
		dst.Light = src.Light
	}
	if src.Dark != "" {
		dst.Dark = src.Dark
	}
}
