package validator

import "fmt"

// Rule is the contract the validator uses to run every adapted unit.
type Rule interface {
	Passes(attribute string, value any) bool
	Message() []*PendingMessage
	SetData(data map[string]any) Rule
	SetValidator(v *Validator) Rule
}

// ImplicitRule is a Rule that runs even when the attribute is absent or empty.
type ImplicitRule interface {
	Rule
	ImplicitRule()
}

// IsImplicit reports whether the validator must run the rule for absent or empty attributes.
func IsImplicit(rule Rule) bool {
	_, ok := rule.(ImplicitRule)
	return ok
}

// Adapter wraps a caller-supplied rule unit and exposes it as a Rule.
// An Adapter is meant for a single validation run and is not safe for concurrent use.
type Adapter struct {
	unit      any
	target    any
	failed    bool
	messages  PendingMessages
	data      map[string]any
	validator *Validator
}

// ImplicitAdapter is the Adapter variant produced for implicit units.
type ImplicitAdapter struct {
	Adapter
}

// Make adapts a rule unit. The unit must implement ValidationRule or InvokableRule.
// Units reporting Implicit() == true produce an *ImplicitAdapter, all others an *Adapter.
func Make(unit any) (Rule, error) {
	if unit == nil {
		return nil, ErrNilUnit
	}

	target := unwrapUnit(unit)
	switch target.(type) {
	case ValidationRule, InvokableRule:
	default:
		return nil, fmt.Errorf("%w: got %T", ErrUnsupportedUnit, target)
	}

	base := Adapter{unit: unit, target: target}
	if isImplicitUnit(unit) {
		return &ImplicitAdapter{Adapter: base}, nil
	}
	return &base, nil
}

// MustMake is like Make but panics when the unit cannot be adapted.
func MustMake(unit any) Rule {
	rule, err := Make(unit)
	if err != nil {
		panic(fmt.Sprintf("validator: %v", err))
	}
	return rule
}

// Passes runs the wrapped unit once and reports whether it recorded no failures.
// Panics raised by the unit are not recovered.
func (a *Adapter) Passes(attribute string, value any) bool {
	a.failed = false

	if r, ok := a.target.(DataAwareRule); ok {
		r.SetData(a.data)
	}
	if r, ok := a.target.(ValidatorAwareRule); ok {
		r.SetValidator(a.validator)
	}

	fail := &failures{adapter: a, attribute: attribute}
	switch r := a.target.(type) {
	case ValidationRule:
		r.Validate(attribute, value, fail)
	case InvokableRule:
		r.Invoke(attribute, value, fail)
	default:
		panic(fmt.Errorf("%w: got %T", ErrUnsupportedUnit, a.target))
	}

	a.failed = fail.count > 0
	return !a.failed
}

// Message returns every pending message recorded since the adapter was made.
func (a *Adapter) Message() []*PendingMessage {
	return a.messages.All()
}

// Unit returns the wrapped unit exactly as it was passed to Make.
func (a *Adapter) Unit() any {
	return a.unit
}

// SetData stores the data set handed to DataAwareRule units on the next Passes.
func (a *Adapter) SetData(data map[string]any) Rule {
	a.data = data
	return a
}

// SetValidator stores the validator handed to ValidatorAwareRule units on the next Passes.
func (a *Adapter) SetValidator(v *Validator) Rule {
	a.validator = v
	return a
}

// SetData is Adapter.SetData returning the implicit adapter itself.
func (a *ImplicitAdapter) SetData(data map[string]any) Rule {
	a.Adapter.SetData(data)
	return a
}

// SetValidator is Adapter.SetValidator returning the implicit adapter itself.
func (a *ImplicitAdapter) SetValidator(v *Validator) Rule {
	a.Adapter.SetValidator(v)
	return a
}

// ImplicitRule marks the adapter as implicit.
func (a *ImplicitAdapter) ImplicitRule() {}

// failures is the accumulator handed to the unit for one Passes call.
type failures struct {
	adapter   *Adapter
	attribute string
	count     int
}

func (f *failures) Fail(message string) *PendingMessage {
	return f.record("", message)
}

func (f *failures) FailFor(attribute, message string) *PendingMessage {
	return f.record(attribute, message)
}

func (f *failures) record(key, message string) *PendingMessage {
	f.count++
	f.adapter.failed = true

	v := f.adapter.validator
	if v != nil {
		f.adapter.messages.translator = v.Translator()
		f.adapter.messages.locale = v.Locale()
	}

	name := f.attribute
	if key != "" {
		name = key
	}
	msg := f.adapter.messages.Create(key, message)
	return msg.With("attribute", v.DisplayName(name))
}
