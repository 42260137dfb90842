package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"cvapi/internal/model"
)

var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

// getValidator lazily builds the shared validator. Field names in messages use
// the json tag so they match what clients send.
func getValidator() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New(validator.WithRequiredStructEnabled())
		validatorInst.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validatorInst
}

// Customization validates styling options using their struct tags.
func Customization(c model.Customization) Result {
	err := getValidator().Struct(c)
	if err == nil {
		return newResult(nil)
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return newResult([]string{"Customization is invalid"})
	}

	errs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, formatFieldError(fe))
	}
	return newResult(errs)
}

func formatFieldError(fe validator.FieldError) string {
	field := strings.ReplaceAll(fe.Field(), "_", " ")
	switch fe.Tag() {
	case "hexcolor":
		return fmt.Sprintf("Customization: %s must be a hex color", field)
	case "oneof":
		return fmt.Sprintf("Customization: %s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("Customization: %s is invalid", field)
	}
}
