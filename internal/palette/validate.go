package palette

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/yacobolo/contrast"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator with the color_ref rule
// registered. A color_ref is a token name ("--ui-text") or a parseable color.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("color_ref", func(fl validator.FieldLevel) bool {
			ref := strings.TrimSpace(fl.Field().String())
			if strings.HasPrefix(ref, "--") {
				return len(ref) > 2
			}
			_, err := contrast.ParseColor(ref)
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks the configuration before an audit runs
func (c Config) Validate() error {
	return ValidateStruct(c)
}

// ValidateStruct validates any tagged struct and reports the first failure
// as "field failed validation for tag 'x'"
func ValidateStruct(v any) error {
	err := validatorInstance().Struct(v)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		return fmt.Errorf("invalid config: %s failed validation for tag '%s'", fieldName(ve), ve.Tag())
	}
	return fmt.Errorf("invalid config: %w", err)
}

// fieldName lowercases the struct namespace without the root type:
// Config.Pairs[0].Foreground -> pairs[0].foreground
func fieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}
