package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/vetcare/clinic-service/pkg/util"
)

// Validator validates request payloads against their declared shapes.
type Validator struct {
	v *validator.Validate
}

// New builds a Validator aware of the coercion types and json field names.
func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		switch val := field.Interface().(type) {
		case Number:
			return float64(val)
		case Integer:
			return int64(val)
		case DateTime:
			return string(val)
		}
		return nil
	}, Number(0), Integer(0), DateTime(""))

	return &Validator{v: v}
}

// Struct validates the payload, reporting every failing field at once. The
// returned error is a VALIDATION_FAILED DomainError whose details map field
// names to their messages.
func (val *Validator) Struct(payload any) error {
	err := val.v.Struct(payload)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return apperrors.NewValidationError("Datos inválidos", nil)
	}

	details := make(map[string]any, len(ve))
	for _, fe := range ve {
		field := fe.Field()
		msgs, _ := details[field].([]string)
		details[field] = append(msgs, fieldError(fe))
	}
	return apperrors.NewValidationError("Datos inválidos", details)
}

// fieldError converts a single failed rule into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or greater", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
