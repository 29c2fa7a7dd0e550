package validator

import (
	"reflect"
	"strings"
)

// Confirmed requires a matching "<attribute>_confirmation" entry in the data set.
func Confirmed() ValidationRule {
	return &confirmedRule{}
}

type confirmedRule struct {
	data map[string]any
}

func (r *confirmedRule) SetData(data map[string]any) {
	r.data = data
}

func (r *confirmedRule) Validate(attribute string, value any, fail Failures) {
	other, ok := lookup(r.data, attribute+"_confirmation")
	if ok && reflect.DeepEqual(value, other) {
		return
	}
	fail.Fail("The %{attribute} field confirmation does not match.").TranslateKey("validation.confirmed")
}

// Same requires the value to equal the value of another attribute.
func Same(other string) ValidationRule {
	return &sameRule{other: other}
}

type sameRule struct {
	other string
	data  map[string]any
}

func (r *sameRule) SetData(data map[string]any) {
	r.data = data
}

func (r *sameRule) Validate(_ string, value any, fail Failures) {
	other, ok := lookup(r.data, r.other)
	if ok && reflect.DeepEqual(value, other) {
		return
	}
	fail.Fail("The %{attribute} field must match %{other}.").
		TranslateKey("validation.same", M{"other": r.other})
}

// RequiredWith requires the attribute when any of the other attributes is filled.
// It is implicit, so it also runs for absent attributes.
func RequiredWith(others ...string) ValidationRule {
	return &requiredWithRule{others: others}
}

type requiredWithRule struct {
	others []string
	data   map[string]any
}

func (r *requiredWithRule) Implicit() bool { return true }

func (r *requiredWithRule) SetData(data map[string]any) {
	r.data = data
}

func (r *requiredWithRule) Validate(_ string, value any, fail Failures) {
	if !isEmpty(value) {
		return
	}
	for _, name := range r.others {
		if other, ok := lookup(r.data, name); ok && !isEmpty(other) {
			fail.Fail("The %{attribute} field is required when %{values} is present.").
				TranslateKey("validation.required_with", M{"values": strings.Join(r.others, " / ")})
			return
		}
	}
}
