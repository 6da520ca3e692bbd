package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	kiterrors "github.com/alexisbeaulieu97/bookingkit/pkg/errors"
)

// convertValidationError normalizes validator errors into bookingkit validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return kiterrors.NewValidationError(field, msg, err)
	}

	return kiterrors.NewValidationError("config", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForField(index int, field string) string {
	return fmt.Sprintf("fields[%d].%s", index, field)
}

func fieldForVehicle(index int, field string) string {
	return fmt.Sprintf("vehicles[%d].%s", index, field)
}
