package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate reports fields by their koanf keys, so messages name the exact
// YAML path or APP_ variable suffix to fix.
var validate = newValidator()

// ErrDefaultSecret is returned when prod runs with the built-in JWT secret.
var ErrDefaultSecret = errors.New("auth.jwt_secret must be set in prod")

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
		if name == "" || name == "-" {
			return f.Name
		}

		return name
	})

	return v
}

// Validate checks the configuration. The service refuses to start on any error.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationErrors(err)
	}

	if c.App.Environment == "prod" && c.Auth.JWTSecret == DefaultJWTSecret {
		return ErrDefaultSecret
	}

	return nil
}

// formatValidationErrors lists every failing key, one per line.
func formatValidationErrors(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	lines := make([]string, 0, len(fieldErrs))
	for _, e := range fieldErrs {
		lines = append(lines, formatFieldError(e))
	}

	return fmt.Errorf("config validation failed:\n  %s", strings.Join(lines, "\n  "))
}

func formatFieldError(e validator.FieldError) string {
	key := configKey(e.Namespace())

	switch e.Tag() {
	case "required":
		return key + " is required"
	case "required_if":
		return fmt.Sprintf("%s is required when %s", key, e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", key, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", key, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", key, e.Param())
	case "url":
		return key + " must be a valid URL"
	default:
		return fmt.Sprintf("%s failed %q", key, e.Tag())
	}
}

// configKey drops the root struct from a namespace: "Config.auth.jwt_secret"
// becomes "auth.jwt_secret".
func configKey(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}

	return namespace
}
