package components

import "github.com/charmbracelet/lipgloss"

const paletteShadeCount = 10

// PaletteShades is a Tailwind-style scale of ten shades, 50 (lightest) to 900 (darkest).
type PaletteShades struct {
	colors [paletteShadeCount]lipgloss.Color
}

// NewPaletteShades builds a scale from up to ten colours ordered lightest first.
func NewPaletteShades(colors ...lipgloss.Color) PaletteShades {
	var shades PaletteShades
	for i := 0; i < paletteShadeCount && i < len(colors); i++ {
		shades.colors[i] = colors[i]
	}
	return shades
}

// Color returns the colour at shade, or "" when shade is out of range.
func (ps PaletteShades) Color(shade PaletteShade) lipgloss.Color {
	index := int(shade)
	if index < 0 || index >= paletteShadeCount {
		return ""
	}
	return ps.colors[index]
}

// ColorFamilies holds the raw colour scales the semantic palette is drawn from.
type ColorFamilies struct {
	Slate  PaletteShades
	Teal   PaletteShades
	Green  PaletteShades
	Red    PaletteShades
	Amber  PaletteShades
	Indigo PaletteShades
	Sky    PaletteShades
}

func (cf ColorFamilies) Shades(family PaletteFamily) PaletteShades {
	switch family {
	case PaletteTeal:
		return cf.Teal
	case PaletteGreen:
		return cf.Green
	case PaletteRed:
		return cf.Red
	case PaletteAmber:
		return cf.Amber
	case PaletteIndigo:
		return cf.Indigo
	case PaletteSky:
		return cf.Sky
	default:
		return cf.Slate
	}
}

type PaletteFamily int

const (
	PaletteSlate PaletteFamily = iota
	PaletteTeal
	PaletteGreen
	PaletteRed
	PaletteAmber
	PaletteIndigo
	PaletteSky
)

type PaletteShade int

const (
	PaletteShade50 PaletteShade = iota
	PaletteShade100
	PaletteShade200
	PaletteShade300
	PaletteShade400
	PaletteShade500
	PaletteShade600
	PaletteShade700
	PaletteShade800
	PaletteShade900
)

// SpacingSize enumerates spacing tokens, measured in terminal cells.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
	SpacingSizeExtraLarge
	SpacingSizeDoubleExtraLarge
	SpacingSizeTripleExtraLarge
	SpacingSizeQuadExtraLarge
)

const spacingSizeCount = int(SpacingSizeQuadExtraLarge) + 1

type spacingTable [spacingSizeCount]int

// SpacingConfig stores distinct spacing scales for padding and margin.
type SpacingConfig struct {
	Margin  spacingTable
	Padding spacingTable
}

// TypographyVariant names a text preset.
type TypographyVariant int

const (
	TypographyVariantBody TypographyVariant = iota
	TypographyVariantDisplay
	TypographyVariantHeading
	TypographyVariantSubheading
	TypographyVariantCaption
	TypographyVariantLabel
	TypographyVariantCode
	TypographyVariantEmphasis
)

type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantThick
	BorderVariantRounded
	BorderVariantDouble
)

// ColourSet is one semantic slot: a base colour, text drawn on it, a muted
// tone and an accent that contrasts with the base.
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Info      ColourSet
	Neutral   ColourSet
}

// PaletteSlot selects a semantic colour slot.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess   PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning   PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteInfo      PaletteSlot = func(p Palette) ColourSet { return p.Info }
	PaletteNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// slotByName resolves a configuration key to a pointer into p.
func slotByName(p *Palette, name string) (*ColourSet, bool) {
	switch name {
	case "primary":
		return &p.Primary, true
	case "secondary":
		return &p.Secondary, true
	case "surface":
		return &p.Surface, true
	case "success":
		return &p.Success, true
	case "warning":
		return &p.Warning, true
	case "danger":
		return &p.Danger, true
	case "info":
		return &p.Info, true
	case "neutral":
		return &p.Neutral, true
	default:
		return nil, false
	}
}

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

func (bs BorderSet) For(variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return bs.Normal
	case BorderVariantThick:
		return bs.Thick
	case BorderVariantRounded:
		return bs.Rounded
	case BorderVariantDouble:
		return bs.Double
	default:
		return bs.None
	}
}

// TypographyScale holds one style per TypographyVariant.
type TypographyScale struct {
	Body       lipgloss.Style
	Display    lipgloss.Style
	Heading    lipgloss.Style
	Subheading lipgloss.Style
	Caption    lipgloss.Style
	Label      lipgloss.Style
	Code       lipgloss.Style
	Emphasis   lipgloss.Style
}

func (ts TypographyScale) For(variant TypographyVariant) lipgloss.Style {
	switch variant {
	case TypographyVariantDisplay:
		return ts.Display
	case TypographyVariantHeading:
		return ts.Heading
	case TypographyVariantSubheading:
		return ts.Subheading
	case TypographyVariantCaption:
		return ts.Caption
	case TypographyVariantLabel:
		return ts.Label
	case TypographyVariantCode:
		return ts.Code
	case TypographyVariantEmphasis:
		return ts.Emphasis
	default:
		return ts.Body
	}
}

// InputState selects the ring drawn around an input control.
type InputState int

const (
	InputStateDefault InputState = iota
	InputStateFocus
	InputStateInvalid
	InputStateDisabled
)

// InputStyles describes the box styles of input controls per state.
type InputStyles struct {
	Default  lipgloss.Style
	Focus    lipgloss.Style
	Invalid  lipgloss.Style
	Disabled lipgloss.Style
}

func (is InputStyles) For(state InputState) lipgloss.Style {
	switch state {
	case InputStateFocus:
		return is.Focus
	case InputStateInvalid:
		return is.Invalid
	case InputStateDisabled:
		return is.Disabled
	default:
		return is.Default
	}
}
