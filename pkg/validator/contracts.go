package validator

// Failures is handed to a rule unit for the duration of one check.
// Every call records one failure and returns its pending message so the unit
// can keep customizing it (translation key, parameters, locale).
type Failures interface {
	// Fail records a failure for the attribute under validation.
	Fail(message string) *PendingMessage

	// FailFor records a failure keyed by an explicit attribute, e.g. "items.0".
	FailFor(attribute, message string) *PendingMessage
}

// ValidationRule is the typed validation shape of a rule unit.
type ValidationRule interface {
	Validate(attribute string, value any, fail Failures)
}

// InvokableRule is the generic invocation shape of a rule unit.
type InvokableRule interface {
	Invoke(attribute string, value any, fail Failures)
}

// DataAwareRule receives the full data set before every check.
type DataAwareRule interface {
	SetData(data map[string]any)
}

// ValidatorAwareRule receives the running validator before every check.
type ValidatorAwareRule interface {
	SetValidator(v *Validator)
}

// ImplicitUnit is implemented by units that must run for absent or empty attributes.
// It is read once, when the unit is adapted.
type ImplicitUnit interface {
	Implicit() bool
}

// ValidateFunc adapts a plain function to ValidationRule.
type ValidateFunc func(attribute string, value any, fail Failures)

func (f ValidateFunc) Validate(attribute string, value any, fail Failures) {
	f(attribute, value, fail)
}

// InvokeFunc adapts a plain function to InvokableRule.
type InvokeFunc func(attribute string, value any, fail Failures)

func (f InvokeFunc) Invoke(attribute string, value any, fail Failures) {
	f(attribute, value, fail)
}

// Implicit marks any unit as implicit without changing its shape or capabilities.
func Implicit(unit any) any {
	return implicitUnit{unit: unit}
}

type implicitUnit struct {
	unit any
}

func (u implicitUnit) Implicit() bool { return true }

func (u implicitUnit) Unwrap() any { return u.unit }

// unwrapUnit returns the unit that actually carries the rule shape.
func unwrapUnit(unit any) any {
	for {
		w, ok := unit.(interface{ Unwrap() any })
		if !ok {
			return unit
		}
		unit = w.Unwrap()
	}
}

func isImplicitUnit(unit any) bool {
	for {
		if u, ok := unit.(ImplicitUnit); ok && u.Implicit() {
			return true
		}
		w, ok := unit.(interface{ Unwrap() any })
		if !ok {
			return false
		}
		unit = w.Unwrap()
	}
}
