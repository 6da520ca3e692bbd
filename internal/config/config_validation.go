package config

import (
	"errors"
	"fmt"
	"math"

	kiterrors "github.com/alexisbeaulieu97/bookingkit/pkg/errors"
)

// ValidateConfig performs structural and cross-field validation on an entire configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return kiterrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]struct{}, len(cfg.Fields))
	for i, field := range cfg.Fields {
		if _, exists := seen[field.ID]; exists {
			return kiterrors.NewValidationError(fieldForField(i, "id"), fmt.Sprintf("duplicate field id %q", field.ID), nil)
		}
		seen[field.ID] = struct{}{}

		if err := validateField(field, i); err != nil {
			return err
		}
	}

	vehicles := make(map[string]struct{}, len(cfg.Vehicles))
	for i, vehicle := range cfg.Vehicles {
		if _, exists := vehicles[vehicle.ID]; exists {
			return kiterrors.NewValidationError(fieldForVehicle(i, "id"), fmt.Sprintf("duplicate vehicle id %q", vehicle.ID), nil)
		}
		vehicles[vehicle.ID] = struct{}{}
	}

	return nil
}

// validateField checks that a field's constraints are satisfiable and its initial value fits them.
func validateField(field FieldConfig, index int) error {
	c := field.Constraints()
	raw := c
	raw.Step = field.Step

	if err := raw.Validate(); err != nil {
		var ve *kiterrors.ValidationError
		if errors.As(err, &ve) {
			return kiterrors.NewValidationError(fieldForField(index, ve.Field), ve.Message, err)
		}
		return kiterrors.NewValidationError(fieldForField(index, "constraints"), err.Error(), err)
	}

	if field.Initial == nil {
		return nil
	}

	initial := *field.Initial
	if c.Min != nil && initial < *c.Min {
		return kiterrors.NewValidationError(fieldForField(index, "initial"), fmt.Sprintf("%v is below min %v", initial, *c.Min), nil)
	}
	if c.Max != nil && initial > *c.Max {
		return kiterrors.NewValidationError(fieldForField(index, "initial"), fmt.Sprintf("%v is above max %v", initial, *c.Max), nil)
	}
	if !c.AllowDecimals && math.Trunc(initial) != initial {
		return kiterrors.NewValidationError(fieldForField(index, "initial"), "must be a whole number when decimals are not allowed", nil)
	}

	return nil
}
