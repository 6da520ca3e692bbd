package numeric

import (
	"fmt"
	"math"

	kiterrors "github.com/alexisbeaulieu97/bookingkit/pkg/errors"
)

// DefaultStep is used when Constraints.Step is left at zero.
const DefaultStep = 1.0

// Constraints bound a numeric field. A nil bound is unconstrained.
type Constraints struct {
	Min           *float64
	Max           *float64
	Step          float64
	AllowDecimals bool
}

// Bound returns a pointer to n for use as Min or Max.
func Bound(n float64) *float64 {
	return &n
}

// Normalize fills defaults: a zero, negative or non-finite step becomes DefaultStep.
func (c Constraints) Normalize() Constraints {
	if c.Step <= 0 || !isFinite(c.Step) {
		c.Step = DefaultStep
	}
	return c
}

// NegativeAllowed reports whether a leading minus survives filtering.
func (c Constraints) NegativeAllowed() bool {
	return c.Min == nil || *c.Min < 0
}

// Validate reports constraint sets that cannot be satisfied.
func (c Constraints) Validate() error {
	if c.Min != nil && !isFinite(*c.Min) {
		return kiterrors.NewValidationError("min", "must be a finite number", nil)
	}
	if c.Max != nil && !isFinite(*c.Max) {
		return kiterrors.NewValidationError("max", "must be a finite number", nil)
	}
	if c.Min != nil && c.Max != nil && *c.Min > *c.Max {
		return kiterrors.NewValidationError("max", fmt.Sprintf("must not be below min (%v > %v)", *c.Min, *c.Max), nil)
	}
	if c.Step < 0 || math.IsNaN(c.Step) || math.IsInf(c.Step, 0) {
		return kiterrors.NewValidationError("step", "must be a positive finite number", nil)
	}
	if !c.AllowDecimals && c.Step != math.Trunc(c.Step) {
		return kiterrors.NewValidationError("step", "must be a whole number when decimals are not allowed", nil)
	}
	return nil
}

// clamp pulls n into the supplied bound(s).
func (c Constraints) clamp(n float64) float64 {
	if c.Min != nil && n < *c.Min {
		n = *c.Min
	}
	if c.Max != nil && n > *c.Max {
		n = *c.Max
	}
	return n
}
