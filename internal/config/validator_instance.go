package config

import (
	"reflect"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	fieldIDPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("field_id", func(fl validator.FieldLevel) bool {
			return fieldIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("spacing_scale", func(fl validator.FieldLevel) bool {
			return isSpacingScale(fl.Field())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// isSpacingScale accepts a full table of non-negative, non-decreasing cell counts.
func isSpacingScale(field reflect.Value) bool {
	if field.Kind() != reflect.Slice || field.Len() != SpacingScaleLength {
		return false
	}

	previous := int64(0)
	for i := 0; i < field.Len(); i++ {
		value := field.Index(i).Int()
		if value < 0 || value < previous {
			return false
		}
		previous = value
	}
	return true
}
