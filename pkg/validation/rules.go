package validation

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"maintenance-console/pkg/constants"
)

var errNotFinite = errors.New("number is not finite")

// DateLayout is the value format of html date inputs.
const DateLayout = "2006-01-02"

func registerRules(v *validator.Validate) error {
	if err := v.RegisterValidation("equipment_type", oneOfList(constants.EquipmentTypes)); err != nil {
		return err
	}
	if err := v.RegisterValidation("order_type", oneOfList(constants.OrderTypes)); err != nil {
		return err
	}
	if err := v.RegisterValidation("not_before", notBefore); err != nil {
		return err
	}
	if err := v.RegisterValidation("decimal", isDecimal); err != nil {
		return err
	}
	return nil
}

func oneOfList(list []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		for _, item := range list {
			if s == item {
				return true
			}
		}
		return false
	}
}

// notBefore checks a date against the sibling field named by the param. An
// empty or unreadable sibling is left to that field's own rules.
func notBefore(fl validator.FieldLevel) bool {
	end, ok := asTime(fl.Field())
	if !ok {
		return true
	}
	start, ok := asTime(fl.Parent().FieldByName(fl.Param()))
	if !ok {
		return true
	}
	return !end.Before(start)
}

func asTime(v reflect.Value) (time.Time, bool) {
	if !v.IsValid() {
		return time.Time{}, false
	}
	switch val := v.Interface().(type) {
	case string:
		t, err := time.Parse(DateLayout, val)
		return t, err == nil
	case time.Time:
		return val, !val.IsZero()
	}
	return time.Time{}, false
}

func isDecimal(fl validator.FieldLevel) bool {
	n, err := ParseDecimal(fl.Field().String())
	return err == nil && n >= 0
}

// ParseDecimal reads a number typed with either a decimal comma or point.
// Infinities and NaN are refused since the backend payload cannot carry them.
func ParseDecimal(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(n, 0) || math.IsNaN(n) {
		return 0, errNotFinite
	}
	return n, nil
}
