package components

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles every design token the components read.
type Theme struct {
	Palette    Palette
	Colors     ColorFamilies
	Borders    BorderSet
	Spacing    SpacingConfig
	Typography TypographyScale
	Input      InputStyles
}

// ThemeManager coordinates access to a Theme instance.
type ThemeManager struct {
	mu    sync.RWMutex
	theme Theme
}

// NewThemeManager allocates a ThemeManager with the provided theme.
func NewThemeManager(theme Theme) *ThemeManager {
	return &ThemeManager{theme: normalizeTheme(theme)}
}

// SetTheme replaces the managed theme.
func (m *ThemeManager) SetTheme(theme Theme) {
	theme = normalizeTheme(theme)
	m.mu.Lock()
	m.theme = theme
	m.mu.Unlock()
}

// Theme returns a copy of the managed theme. Spacing tables are arrays, so
// the copy shares nothing with the managed value.
func (m *ThemeManager) Theme() Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.theme
}

// normalizeTheme restores zeroed spacing tables and rebuilds derived styles.
func normalizeTheme(theme Theme) Theme {
	if spacingTableIsZero(theme.Spacing.Padding) {
		theme.Spacing.Padding = defaultSpacingTable()
	}
	if spacingTableIsZero(theme.Spacing.Margin) {
		theme.Spacing.Margin = defaultSpacingTable()
	}
	return theme
}

func spacingTableIsZero(table spacingTable) bool {
	for _, value := range table {
		if value != 0 {
			return false
		}
	}
	return true
}

func defaultSpacingTable() spacingTable {
	return spacingTable{
		SpacingSizeNone:             0,
		SpacingSizeExtraSmall:       1,
		SpacingSizeSmall:            1,
		SpacingSizeMedium:           2,
		SpacingSizeLarge:            3,
		SpacingSizeExtraLarge:       4,
		SpacingSizeDoubleExtraLarge: 6,
		SpacingSizeTripleExtraLarge: 8,
		SpacingSizeQuadExtraLarge:   10,
	}
}

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// DefaultTheme returns the light booking theme: teal brand, amber accents.
func DefaultTheme() Theme {
	palette := Palette{
		Primary: ColourSet{
			Base:     ac("#0d9488", "#2dd4bf"),
			OnBase:   ac("#f0fdfa", "#042f2e"),
			Muted:    ac("#0f766e", "#115e59"),
			Contrast: ac("#f59e0b", "#fbbf24"),
		},
		Secondary: ColourSet{
			Base:     ac("#4f46e5", "#818cf8"),
			OnBase:   ac("#eef2ff", "#1e1b4b"),
			Muted:    ac("#4338ca", "#3730a3"),
			Contrast: ac("#f59e0b", "#fbbf24"),
		},
		Surface: ColourSet{
			Base:     ac("#ffffff", "#0f172a"),
			OnBase:   ac("#0f172a", "#f1f5f9"),
			Muted:    ac("#f1f5f9", "#1e293b"),
			Contrast: ac("#0d9488", "#2dd4bf"),
		},
		Success: ColourSet{
			Base:     ac("#16a34a", "#4ade80"),
			OnBase:   ac("#f0fdf4", "#052e16"),
			Muted:    ac("#15803d", "#166534"),
			Contrast: ac("#ffffff", "#ffffff"),
		},
		Warning: ColourSet{
			Base:     ac("#d97706", "#fbbf24"),
			OnBase:   ac("#fffbeb", "#451a03"),
			Muted:    ac("#b45309", "#92400e"),
			Contrast: ac("#0f172a", "#0f172a"),
		},
		Danger: ColourSet{
			Base:     ac("#dc2626", "#f87171"),
			OnBase:   ac("#fef2f2", "#450a0a"),
			Muted:    ac("#b91c1c", "#991b1b"),
			Contrast: ac("#ffffff", "#ffffff"),
		},
		Info: ColourSet{
			Base:     ac("#0284c7", "#38bdf8"),
			OnBase:   ac("#f0f9ff", "#082f49"),
			Muted:    ac("#0369a1", "#075985"),
			Contrast: ac("#ffffff", "#ffffff"),
		},
		Neutral: ColourSet{
			Base:     ac("#64748b", "#94a3b8"),
			OnBase:   ac("#f8fafc", "#0f172a"),
			Muted:    ac("#cbd5e1", "#334155"),
			Contrast: ac("#0f172a", "#f8fafc"),
		},
	}

	families := ColorFamilies{
		Slate: NewPaletteShades(
			"#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8",
			"#64748b", "#475569", "#334155", "#1e293b", "#0f172a",
		),
		Teal: NewPaletteShades(
			"#f0fdfa", "#ccfbf1", "#99f6e4", "#5eead4", "#2dd4bf",
			"#14b8a6", "#0d9488", "#0f766e", "#115e59", "#134e4a",
		),
		Green: NewPaletteShades(
			"#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80",
			"#22c55e", "#16a34a", "#15803d", "#166534", "#14532d",
		),
		Red: NewPaletteShades(
			"#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171",
			"#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d",
		),
		Amber: NewPaletteShades(
			"#fffbeb", "#fef3c7", "#fde68a", "#fcd34d", "#fbbf24",
			"#f59e0b", "#d97706", "#b45309", "#92400e", "#78350f",
		),
		Indigo: NewPaletteShades(
			"#eef2ff", "#e0e7ff", "#c7d2fe", "#a5b4fc", "#818cf8",
			"#6366f1", "#4f46e5", "#4338ca", "#3730a3", "#312e81",
		),
		Sky: NewPaletteShades(
			"#f0f9ff", "#e0f2fe", "#bae6fd", "#7dd3fc", "#38bdf8",
			"#0ea5e9", "#0284c7", "#0369a1", "#075985", "#0c4a6e",
		),
	}

	borders := BorderSet{
		None:    lipgloss.Border{},
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
		Double:  lipgloss.DoubleBorder(),
	}

	return normalizeTheme(Theme{
		Palette:    palette,
		Colors:     families,
		Borders:    borders,
		Typography: buildTypography(palette),
		Input:      buildInputStyles(palette, borders),
	})
}

// DarkTheme swaps the surface and neutral slots for dark backgrounds.
func DarkTheme() Theme {
	theme := DefaultTheme()

	theme.Palette.Surface = ColourSet{
		Base:     ac("#0f172a", "#020617"),
		OnBase:   ac("#f1f5f9", "#e2e8f0"),
		Muted:    ac("#1e293b", "#0f172a"),
		Contrast: ac("#2dd4bf", "#5eead4"),
	}
	theme.Palette.Neutral = ColourSet{
		Base:     ac("#475569", "#64748b"),
		OnBase:   ac("#e2e8f0", "#f1f5f9"),
		Muted:    ac("#334155", "#1e293b"),
		Contrast: ac("#f8fafc", "#f8fafc"),
	}

	return rebuildDerived(theme)
}

// rebuildDerived recomputes styles that embed palette colours.
func rebuildDerived(theme Theme) Theme {
	theme.Typography = buildTypography(theme.Palette)
	theme.Input = buildInputStyles(theme.Palette, theme.Borders)
	return normalizeTheme(theme)
}

func buildTypography(p Palette) TypographyScale {
	body := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Body:       body,
		Display:    body.Bold(true).Foreground(p.Primary.Base).MarginBottom(1),
		Heading:    body.Bold(true).Foreground(p.Primary.Base),
		Subheading: body.Foreground(p.Secondary.Base).Italic(true),
		Caption:    body.Foreground(p.Neutral.Base).Faint(true),
		Label:      body.Bold(true),
		Code:       body.Foreground(p.Secondary.Base).Background(p.Surface.Muted).Padding(0, 1),
		Emphasis:   body.Bold(true),
	}
}

func buildInputStyles(p Palette, b BorderSet) InputStyles {
	base := lipgloss.NewStyle().
		BorderStyle(b.Rounded).
		Padding(0, 1).
		Foreground(p.Surface.OnBase)

	return InputStyles{
		Default:  base.BorderForeground(p.Neutral.Muted),
		Focus:    base.BorderStyle(b.Thick).BorderForeground(p.Primary.Base),
		Invalid:  base.BorderForeground(p.Danger.Base),
		Disabled: base.BorderForeground(p.Neutral.Muted).Faint(true),
	}
}

var defaultThemeManager = NewThemeManager(DefaultTheme())

// SetTheme sets the global theme.
func SetTheme(theme Theme) {
	defaultThemeManager.SetTheme(theme)
}

// GetTheme returns the current global theme.
func GetTheme() Theme {
	return defaultThemeManager.Theme()
}

func PaletteColor(family PaletteFamily, shade PaletteShade) (lipgloss.Color, bool) {
	color := GetTheme().Colors.Shades(family).Color(shade)
	return color, color != ""
}

func BorderStyle(variant BorderVariant) lipgloss.Border {
	return GetTheme().Borders.For(variant)
}

func PaddingValue(size SpacingSize) int {
	return spacingLookup(GetTheme().Spacing.Padding, size)
}

func MarginValue(size SpacingSize) int {
	return spacingLookup(GetTheme().Spacing.Margin, size)
}

func spacingLookup(table spacingTable, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(table) {
		index = int(SpacingSizeMedium)
	}
	return table[index]
}

// TypographyStyle returns the specified typography style from the current theme.
func TypographyStyle(variant TypographyVariant) lipgloss.Style {
	return GetTheme().Typography.For(variant)
}

func InputStyle(state InputState) lipgloss.Style {
	return GetTheme().Input.For(state)
}
