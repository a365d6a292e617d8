package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CustomValidator plugs go-playground/validator into echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func New() *CustomValidator {
	v := validator.New()

	// Field errors are reported under the form/json field name so the view can
	// attach them to the matching input.
	v.RegisterTagNameFunc(fieldName)

	registerNullTypes(v)

	if err := registerRules(v); err != nil {
		panic("validation: register rules: " + err.Error())
	}

	return &CustomValidator{validator: v}
}

func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"form", "json"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

// Translator is the part of the i18n translator the messages need.
type Translator interface {
	T(key string, args ...interface{}) string
}

// FieldErrors turns a validation failure into field name -> message. It
// returns nil when err is not a validation failure.
func FieldErrors(err error, tr Translator) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		out[fe.Field()] = message(fe, tr)
	}
	return out
}

func message(fe validator.FieldError, tr Translator) string {
	switch fe.Tag() {
	case "required":
		return tr.T("validation.required")
	case "min":
		return tr.T("validation.min", fe.Param())
	case "max":
		return tr.T("validation.max", fe.Param())
	case "email":
		return tr.T("validation.email")
	case "oneof", "equipment_type", "order_type":
		return tr.T("validation.oneof")
	case "gt":
		return tr.T("validation.gt")
	case "gte", "decimal":
		return tr.T("validation.gte", "0")
	case "datetime":
		return tr.T("validation.datetime")
	case "not_before":
		return tr.T("validation.not_before")
	default:
		return tr.T("validation.invalid")
	}
}
