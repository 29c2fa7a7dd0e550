package validator

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrymomot/validation/pkg/i18n"
	"github.com/dmitrymomot/validation/pkg/logger"
)

// Validator runs adapted rules over a data set.
// It is not safe for concurrent use; build one validator per data set.
type Validator struct {
	ctx        context.Context
	data       map[string]any
	rules      map[string][]any
	translator Translator
	locale     string
	pinned     bool
	names      map[string]string
	logger     *slog.Logger
	errors     ValidationErrors
}

// languageMatcher is implemented by translators that can map a locale such
// as "de-AT" onto a loaded language. *i18n.Translator satisfies it.
type languageMatcher interface {
	Match(preferred ...string) string
}

// Option configures a Validator.
type Option func(*Validator)

// WithTranslator sets the translator used to resolve pending messages.
func WithTranslator(t Translator) Option {
	return func(v *Validator) {
		if t != nil {
			v.translator = t
		}
	}
}

// WithLocale overrides the locale taken from the context. The value is used as is.
func WithLocale(lang string) Option {
	return func(v *Validator) {
		if lang != "" {
			v.locale = lang
			v.pinned = true
		}
	}
}

// WithAttributeNames sets display names substituted for %{attribute} in messages.
func WithAttributeNames(names map[string]string) Option {
	return func(v *Validator) {
		maps.Copy(v.names, names)
	}
}

// WithLogger sets the logger. A discard logger is used by default.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// New creates a validator for data. Each rules entry maps an attribute, optionally
// containing "*" wildcards, to units accepted by Make or to ready-made Rule values.
// Every unit is checked up front so misconfiguration fails here, not mid-run.
func New(ctx context.Context, data map[string]any, rules map[string][]any, opts ...Option) (*Validator, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if data == nil {
		data = map[string]any{}
	}

	v := &Validator{
		ctx:    ctx,
		data:   data,
		rules:  make(map[string][]any, len(rules)),
		locale: i18n.GetLocale(ctx),
		names:  map[string]string{},
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(v)
	}
	if m, ok := v.translator.(languageMatcher); ok && !v.pinned {
		v.locale = m.Match(v.locale)
	}

	for attribute, units := range rules {
		if len(units) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoRules, attribute)
		}
		for _, unit := range units {
			if _, ok := unit.(Rule); ok {
				continue
			}
			if _, err := Make(unit); err != nil {
				return nil, fmt.Errorf("attribute %q: %w", attribute, err)
			}
		}
		v.rules[attribute] = slices.Clone(units)
	}

	return v, nil
}

// Validate runs every rule and returns ValidationErrors when at least one fails.
// Non-implicit rules are skipped for absent, nil or blank attributes.
// Every run adapts the units afresh, so messages never leak between runs.
func (v *Validator) Validate() error {
	var errs ValidationErrors

	patterns := slices.Sorted(maps.Keys(v.rules))
	for _, pattern := range patterns {
		for _, attribute := range v.expand(pattern) {
			value, present := v.Value(attribute)
			for _, unit := range v.rules[pattern] {
				rule := v.adapt(unit)
				if !IsImplicit(rule) && !validatable(value, present) {
					continue
				}

				before := len(rule.Message())
				if rule.SetData(v.data).SetValidator(v).Passes(attribute, value) {
					continue
				}

				for _, msg := range rule.Message()[before:] {
					errs.Add(v.toError(attribute, msg))
				}
				v.logger.DebugContext(v.ctx, "validation rule failed",
					logger.Attribute(attribute),
					logger.Rule(ruleName(rule)),
					logger.Locale(v.locale),
				)
			}
		}
	}

	v.errors = errs
	v.logger.DebugContext(v.ctx, "validation finished", logger.FailureCount(len(errs)))
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// Passes runs Validate and reports whether every rule passed.
func (v *Validator) Passes() bool {
	return v.Validate() == nil
}

// Fails runs Validate and reports whether any rule failed.
func (v *Validator) Fails() bool {
	return !v.Passes()
}

// Errors returns the failures of the last run.
func (v *Validator) Errors() ValidationErrors {
	return v.errors
}

// Data returns the full data set under validation.
func (v *Validator) Data() map[string]any {
	return v.data
}

// Context returns the context the validator was created with.
func (v *Validator) Context() context.Context {
	return v.ctx
}

// Locale returns the language pending messages are rendered in.
func (v *Validator) Locale() string {
	return v.locale
}

// Translator returns the configured translator, or nil.
func (v *Validator) Translator() Translator {
	return v.translator
}

// Logger returns the validator's logger.
func (v *Validator) Logger() *slog.Logger {
	return v.logger
}

// Value looks up a dot-separated attribute path in the data set.
func (v *Validator) Value(attribute string) (any, bool) {
	return lookup(v.data, attribute)
}

// DisplayName returns the configured display name for an attribute,
// falling back to the last path segment with underscores replaced by spaces.
// Paths ending in a list index ("items.1") keep the whole path.
// It is safe to call on a nil Validator.
func (v *Validator) DisplayName(attribute string) string {
	if v != nil {
		if name, ok := v.names[attribute]; ok {
			return name
		}
	}
	if idx := strings.LastIndex(attribute, "."); idx >= 0 {
		if _, err := strconv.Atoi(attribute[idx+1:]); err != nil {
			attribute = attribute[idx+1:]
		}
	}
	return strings.ReplaceAll(attribute, "_", " ")
}

func (v *Validator) adapt(unit any) Rule {
	if rule, ok := unit.(Rule); ok {
		return rule
	}
	return MustMake(unit)
}

func (v *Validator) toError(attribute string, msg *PendingMessage) ValidationError {
	field := msg.Attribute()
	if field == "" {
		field = attribute
	}
	return ValidationError{
		Field:             field,
		Message:           msg.String(),
		TranslationKey:    msg.Key(),
		TranslationValues: msg.Params(),
	}
}

// expand resolves "*" segments against the data set. Patterns without
// wildcards are returned as is, whether present or not.
func (v *Validator) expand(pattern string) []string {
	if !strings.Contains(pattern, "*") {
		return []string{pattern}
	}

	paths := []string{""}
	for segment := range strings.SplitSeq(pattern, ".") {
		next := make([]string, 0, len(paths))
		for _, prefix := range paths {
			if segment != "*" {
				next = append(next, join(prefix, segment))
				continue
			}
			value, ok := lookup(v.data, prefix)
			if prefix == "" {
				value, ok = v.data, true
			}
			if !ok {
				continue
			}
			for _, key := range childKeys(value) {
				next = append(next, join(prefix, key))
			}
		}
		paths = next
	}
	return paths
}

func join(prefix, segment string) string {
	if prefix == "" {
		return segment
	}
	return prefix + "." + segment
}

func ruleName(rule Rule) string {
	if a, ok := rule.(interface{ Unit() any }); ok {
		return fmt.Sprintf("%T", unwrapUnit(a.Unit()))
	}
	return fmt.Sprintf("%T", rule)
}

// lookup walks nested maps and slices using a dot-separated path.
func lookup(data map[string]any, path string) (any, bool) {
	if path == "" {
		return nil, false
	}

	var current any = data
	for part := range strings.SplitSeq(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			val, ok := node[part]
			if !ok {
				return nil, false
			}
			current = val
		default:
			rv := reflect.ValueOf(current)
			switch rv.Kind() {
			case reflect.Slice, reflect.Array:
				idx, err := strconv.Atoi(part)
				if err != nil || idx < 0 || idx >= rv.Len() {
					return nil, false
				}
				current = rv.Index(idx).Interface()
			case reflect.Map:
				if rv.Type().Key().Kind() != reflect.String {
					return nil, false
				}
				val := rv.MapIndex(reflect.ValueOf(part).Convert(rv.Type().Key()))
				if !val.IsValid() {
					return nil, false
				}
				current = val.Interface()
			default:
				return nil, false
			}
		}
	}
	return current, true
}

// childKeys lists the keys a "*" segment expands to, in a stable order.
func childKeys(value any) []string {
	if m, ok := value.(map[string]any); ok {
		return slices.Sorted(maps.Keys(m))
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		keys := make([]string, rv.Len())
		for i := range keys {
			keys[i] = strconv.Itoa(i)
		}
		return keys
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		slices.Sort(keys)
		return keys
	default:
		return nil
	}
}

// validatable reports whether a non-implicit rule should run for the value.
func validatable(value any, present bool) bool {
	if !present || value == nil {
		return false
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) != ""
	}
	return true
}
