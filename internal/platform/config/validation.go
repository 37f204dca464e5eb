package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields by their koanf key so messages name the
// setting an operator would change.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
		if name == "-" {
			return ""
		}

		return name
	})
	v.RegisterStructValidation(validateRepository, Config{})

	return v
}

// validateRepository requires a database section for the sql-* variants.
func validateRepository(sl validator.StructLevel) {
	cfg, ok := sl.Current().Interface().(Config)
	if !ok || !cfg.Repository.UsesDatabase() {
		return
	}

	if cfg.Database.Driver == "" {
		sl.ReportError(cfg.Database.Driver, "database.driver", "Driver", "required_for_variant", cfg.Repository.Variant)
	}

	if cfg.Database.DSN == "" {
		sl.ReportError(cfg.Database.DSN, "database.dsn", "DSN", "required_for_variant", cfg.Repository.Variant)
	}
}

// Validate reports every invalid setting at once. The service refuses to
// start on error.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	problems := make([]string, len(fieldErrs))
	for i, fe := range fieldErrs {
		problems[i] = describe(fe)
	}

	return fmt.Errorf("invalid configuration:\n  %s", strings.Join(problems, "\n  "))
}

func describe(fe validator.FieldError) string {
	key := keyPath(fe.Namespace())

	switch fe.Tag() {
	case "required":
		return key + " is required"
	case "required_if":
		return fmt.Sprintf("%s is required when %s", key, fe.Param())
	case "required_for_variant":
		return fmt.Sprintf("%s is required by repository variant %s", key, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", key, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", key, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", key, fe.Param())
	case "url":
		return key + " must be a URL"
	default:
		return fmt.Sprintf("%s fails %q", key, fe.Tag())
	}
}

// keyPath drops the root type from a namespace: "Config.log.file.path"
// becomes "log.file.path".
func keyPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}

	return namespace
}
