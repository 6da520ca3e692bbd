package config

import (
	"github.com/alexisbeaulieu97/bookingkit/internal/numeric"
)

// SpacingScaleLength is the number of spacing tokens, from none to 4xl.
const SpacingScaleLength = 9

// Config represents the full bookingkit configuration document.
type Config struct {
	Theme    ThemeConfig     `yaml:"theme,omitempty"`
	Fields   []FieldConfig   `yaml:"fields" validate:"required,min=1,dive"`
	Vehicles []VehicleConfig `yaml:"vehicles,omitempty" validate:"omitempty,dive"`
}

// ThemeConfig carries design-token overrides applied on top of a base theme.
type ThemeConfig struct {
	Base    string                     `yaml:"base,omitempty" validate:"omitempty,oneof=light dark"`
	Spacing SpacingConfig              `yaml:"spacing,omitempty"`
	Palette map[string]ColourSetConfig `yaml:"palette,omitempty" validate:"omitempty,dive,keys,oneof=primary secondary surface success warning danger info neutral,endkeys"`
}

// SpacingConfig replaces whole spacing tables. Empty tables keep the defaults.
type SpacingConfig struct {
	Padding []int `yaml:"padding,omitempty" validate:"omitempty,spacing_scale"`
	Margin  []int `yaml:"margin,omitempty" validate:"omitempty,spacing_scale"`
}

// ColourSetConfig overrides the colours of one semantic palette slot.
type ColourSetConfig struct {
	Base     ColourConfig `yaml:"base,omitempty"`
	OnBase   ColourConfig `yaml:"on_base,omitempty"`
	Muted    ColourConfig `yaml:"muted,omitempty"`
	Contrast ColourConfig `yaml:"contrast,omitempty"`
}

// ColourConfig is an adaptive colour pair. Empty halves keep the base theme's value.
type ColourConfig struct {
	Light string `yaml:"light,omitempty" validate:"omitempty,hexcolor"`
	Dark  string `yaml:"dark,omitempty" validate:"omitempty,hexcolor"`
}

// IsZero reports whether neither half is set.
func (c ColourConfig) IsZero() bool {
	return c.Light == "" && c.Dark == ""
}

// FieldConfig declares one numeric field of the booking form.
type FieldConfig struct {
	ID            string   `yaml:"id" validate:"required,field_id"`
	Label         string   `yaml:"label" validate:"required,max=40"`
	Help          string   `yaml:"help,omitempty" validate:"max=120"`
	Min           *float64 `yaml:"min,omitempty"`
	Max           *float64 `yaml:"max,omitempty"`
	Step          float64  `yaml:"step,omitempty" validate:"gte=0"`
	AllowDecimals bool     `yaml:"allow_decimals,omitempty"`
	Initial       *float64 `yaml:"initial,omitempty"`
	Required      bool     `yaml:"required,omitempty"`
}

// Constraints converts the declaration into interpreter constraints.
func (f FieldConfig) Constraints() numeric.Constraints {
	c := numeric.Constraints{
		Step:          f.Step,
		AllowDecimals: f.AllowDecimals,
	}
	if f.Min != nil {
		c.Min = numeric.Bound(*f.Min)
	}
	if f.Max != nil {
		c.Max = numeric.Bound(*f.Max)
	}
	return c.Normalize()
}

// InitialValue returns the mount value, Unset when none was configured.
func (f FieldConfig) InitialValue() numeric.Value {
	if f.Initial == nil {
		return numeric.Unset
	}
	return numeric.Of(*f.Initial)
}

// VehicleConfig describes a bookable vehicle offered by the vehicle select.
type VehicleConfig struct {
	ID        string  `yaml:"id" validate:"required,field_id"`
	Name      string  `yaml:"name" validate:"required"`
	Seats     int     `yaml:"seats" validate:"required,min=1,max=9"`
	DailyRate float64 `yaml:"daily_rate" validate:"gt=0"`
}
