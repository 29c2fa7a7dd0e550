// Package validator adapts caller-supplied rule units to a single Rule contract
// and runs them over a data set.
//
// A rule unit is any value with one of two shapes:
//
//   - ValidationRule: Validate(attribute, value, fail)
//   - InvokableRule:  Invoke(attribute, value, fail)
//
// and, optionally, any of the capabilities DataAwareRule (receives the full
// data set), ValidatorAwareRule (receives the running *Validator) and
// ImplicitUnit (must run for absent or empty attributes).
//
// # Architecture
//
// Make wraps a unit in an *Adapter, or in an *ImplicitAdapter when the unit
// reports Implicit() == true. The choice is made once; the outer validator
// checks it with IsImplicit. Adapter.Passes injects data and validator into
// units that ask for them, dispatches to Validate or Invoke and hands the unit
// a Failures accumulator. Each Fail/FailFor call creates one PendingMessage,
// registers it on the adapter and returns it, so the unit may still switch it
// to a translation key or add parameters. Messages are resolved only when read.
//
// Validator is the minimal runner around adapters: it skips non-implicit rules
// for absent or blank attributes, expands "*" wildcards, resolves pending
// messages through a Translator and returns ValidationErrors.
//
// # Usage
//
//	uppercase := validator.ValidateFunc(func(attr string, value any, fail validator.Failures) {
//	    if s, _ := value.(string); s != strings.ToUpper(s) {
//	        fail.Fail("The %{attribute} must be uppercase.").TranslateKey("validation.uppercase")
//	    }
//	})
//
//	v, err := validator.New(ctx, data, map[string][]any{
//	    "code":  {validator.Required(), uppercase},
//	    "email": {validator.Required(), validator.Email()},
//	}, validator.WithTranslator(translator))
//	if err != nil {
//	    return err // a unit without Validate or Invoke
//	}
//	if err := v.Validate(); err != nil {
//	    for field, messages := range validator.ExtractValidationErrors(err).Bag() {
//	        // ...
//	    }
//	}
//
// # Error Handling
//
// Validation failures are only ever reported through Failures and surface as
// ValidationErrors. Panics raised by a unit are not recovered and reach the
// caller of Passes or Validate unchanged.
//
// Adapters and validators keep per-run state and are not safe for concurrent use.
package validator
