package validator

import (
	"encoding/json"
	"net/mail"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/spf13/cast"
)

// Required fails for nil values, blank strings and empty slices or maps.
// It is implicit, so it also runs for absent attributes.
func Required() ValidationRule {
	return requiredRule{}
}

type requiredRule struct{}

func (requiredRule) Implicit() bool { return true }

func (requiredRule) Validate(_ string, value any, fail Failures) {
	if isEmpty(value) {
		fail.Fail("The %{attribute} field is required.").TranslateKey("validation.required")
	}
}

// Min checks numbers by value and strings, slices and maps by size.
func Min(min float64) ValidationRule {
	return sizeRule{name: "min", min: &min}
}

// Max checks numbers by value and strings, slices and maps by size.
func Max(max float64) ValidationRule {
	return sizeRule{name: "max", max: &max}
}

// Between checks that the size of the value lies within [min, max].
func Between(min, max float64) ValidationRule {
	return sizeRule{name: "between", min: &min, max: &max}
}

type sizeRule struct {
	name string
	min  *float64
	max  *float64
}

var sizeMessages = map[string]map[string]string{
	"min": {
		"numeric": "The %{attribute} field must be at least %{min}.",
		"string":  "The %{attribute} field must be at least %{min} characters.",
		"array":   "The %{attribute} field must have at least %{min} items.",
	},
	"max": {
		"numeric": "The %{attribute} field must not be greater than %{max}.",
		"string":  "The %{attribute} field must not be greater than %{max} characters.",
		"array":   "The %{attribute} field must not have more than %{max} items.",
	},
	"between": {
		"numeric": "The %{attribute} field must be between %{min} and %{max}.",
		"string":  "The %{attribute} field must be between %{min} and %{max} characters.",
		"array":   "The %{attribute} field must have between %{min} and %{max} items.",
	},
}

func (r sizeRule) Validate(_ string, value any, fail Failures) {
	size, kind, ok := measure(value)
	if ok && (r.min == nil || size >= *r.min) && (r.max == nil || size <= *r.max) {
		return
	}
	if !ok {
		kind = "numeric"
	}

	params := M{}
	if r.min != nil {
		params["min"] = *r.min
	}
	if r.max != nil {
		params["max"] = *r.max
	}
	fail.Fail(sizeMessages[r.name][kind]).TranslateKey("validation."+r.name+"."+kind, params)
}

// UUID validates the canonical 36 character UUID form.
func UUID() ValidationRule {
	return ValidateFunc(func(_ string, value any, fail Failures) {
		s, ok := value.(string)
		if ok && len(s) == 36 {
			if _, err := uuid.Parse(s); err == nil {
				return
			}
		}
		fail.Fail("The %{attribute} field must be a valid UUID.").TranslateKey("validation.uuid")
	})
}

// Email validates a bare RFC 5322 address without display name.
func Email() ValidationRule {
	return ValidateFunc(func(_ string, value any, fail Failures) {
		s, ok := value.(string)
		if ok {
			if addr, err := mail.ParseAddress(s); err == nil && addr.Address == s {
				return
			}
		}
		fail.Fail("The %{attribute} field must be a valid email address.").TranslateKey("validation.email")
	})
}

// measure returns the size of a value and the message variant it belongs to.
func measure(value any) (float64, string, bool) {
	switch v := value.(type) {
	case nil:
		return 0, "", false
	case string:
		return float64(utf8.RuneCountInString(v)), "string", true
	case json.Number:
		f, err := cast.ToFloat64E(v)
		return f, "numeric", err == nil
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return float64(rv.Len()), "array", true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		f, err := cast.ToFloat64E(value)
		return f, "numeric", err == nil
	default:
		return 0, "", false
	}
}

func isEmpty(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) == ""
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
