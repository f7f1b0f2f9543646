// Package validator wraps go-playground/validator so that configuration,
// registry inputs and stored records are checked through struct tags
// (e.g. `validate:"required"`) and reported with a uniform error chain.
package validator

import (
	"errors"
	"fmt"
	"regexp"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is the first error of the chain returned when a value
// breaks one of its validation rules. Use errors.Is to detect it.
var ErrValidationFailed = errors.New("struct validation failed")

// snowflakePattern matches Discord snowflake identifiers (channels, guilds).
var snowflakePattern = regexp.MustCompile(`^[0-9]{1,20}$`)

// validator is the shared go-playground instance, built once on package load.
var validator *gvalidator.Validate

// errStringFormat describes a single failed rule.
//
// Example: "'ChannelID': value 'abc' does not meet the requirements for the 'snowflake' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
	_ = validator.RegisterValidation("snowflake", func(fl gvalidator.FieldLevel) bool {
		return snowflakePattern.MatchString(fl.Field().String())
	})
}

// formatError turns validator.ValidationErrors into ErrValidationFailed
// joined with one message per field. Other errors are returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks v against its `validate` struct tags. Besides the built-in
// rules the tag "snowflake" accepts Discord numeric identifiers.
//
//	type Target struct {
//	    ChannelID string `validate:"required,snowflake"`
//	}
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
