package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/dmitrymomot/validation/pkg/logger"
)

// Translator resolves translation keys for the loaded languages.
// It is safe for concurrent use.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
	adapter        TranslationAdapter
}

// NewTranslator loads translations through adapter and applies options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        logger.Discard(),
		adapter:       adapter,
	}
	for _, option := range options {
		option(t)
	}

	translations, err := t.load(ctx)
	if err != nil {
		return nil, err
	}

	t.translations = translations
	t.logger.InfoContext(ctx, "translations loaded", "languages", t.supportedLanguages())
	return t, nil
}

// Reload fetches translations from the adapter again and swaps them in atomically.
func (t *Translator) Reload(ctx context.Context) error {
	translations, err := t.load(ctx)
	if err != nil {
		return err
	}

	t.mu.Lock()
	t.translations = translations
	t.mu.Unlock()

	t.logger.InfoContext(ctx, "translations reloaded", "languages", t.SupportedLanguages())
	return nil
}

func (t *Translator) load(ctx context.Context) (map[string]map[string]any, error) {
	translations, err := t.adapter.Load(ctx)
	if err != nil {
		return nil, err
	}

	if len(translations) == 0 {
		t.logger.WarnContext(ctx, "no translations provided")
	}
	for lang, trans := range translations {
		if lang == "" {
			return nil, fmt.Errorf("%w: empty language code", ErrInvalidStructure)
		}
		if trans == nil {
			return nil, fmt.Errorf("%w: nil translations for language %s", ErrInvalidStructure, lang)
		}
	}
	return translations, nil
}

// DefaultLanguage returns the configured default language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// SupportedLanguages returns the loaded language codes, sorted.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}

// Match returns the loaded language closest to the preferred ones,
// or the default language when none fits.
func (t *Translator) Match(preferred ...string) string {
	return MatchLanguage(preferred, t.SupportedLanguages(), t.defaultLang)
}

// HasTranslation reports whether key exists for lang. Keys pointing to a
// plural group count as present.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		return false
	}
	_, ok = lookupKey(langMap, key)
	return ok
}

// T translates key for lang, substituting %{name} placeholders from args
// given as key/value pairs:
//
//	translator.T("en", "welcome", "name", "John") // "Welcome, John!"
//
// Missing translations return the key (or "" with WithFallbackToKey(false)).
func (t *Translator) T(lang, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if s, ok := t.lookupString(lang, key); ok {
		return sprintf(s, args)
	}
	return t.missing(lang, key, args)
}

// Td translates key for lang, using defaultValue when the key is missing.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if s, ok := t.lookupString(lang, key); ok {
		return sprintf(s, args)
	}
	return sprintf(defaultValue, args)
}

// N translates a plural key. For n == 0 "zero" is tried before "other",
// n == 1 uses "one" and everything else "other"; a plain string under key is
// the last resort. A "count" argument is added when args do not carry one.
//
//	// items: {zero: "No items", one: "%{count} item", other: "%{count} items"}
//	translator.N("en", "items", 5) // "5 items"
func (t *Translator) N(lang, key string, n int, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if !hasArg(args, "count") {
		args = append(slices.Clone(args), "count", strconv.Itoa(n))
	}

	for _, form := range pluralForms(n) {
		if s, ok := t.lookupString(lang, key+"."+form); ok {
			return sprintf(s, args)
		}
	}
	if s, ok := t.lookupString(lang, key); ok {
		return sprintf(s, args)
	}
	return t.missing(lang, key, args)
}

// Tc translates key in the locale stored in ctx.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

// Nc translates a plural key in the locale stored in ctx.
func (t *Translator) Nc(ctx context.Context, key string, n int, args ...string) string {
	return t.N(GetLocale(ctx), key, n, args...)
}

// Translations returns a copy of the top-level translations for lang.
func (t *Translator) Translations(lang string) (map[string]any, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	translations, ok := t.translations[lang]
	if !ok {
		return nil, &ErrLanguageNotSupported{Lang: lang}
	}
	return maps.Clone(translations), nil
}

func (t *Translator) lookupString(lang, key string) (string, bool) {
	langMap, ok := t.translations[lang]
	if !ok {
		return "", false
	}
	val, ok := lookupKey(langMap, key)
	if !ok {
		return "", false
	}
	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}

func (t *Translator) missing(lang, key string, args []string) string {
	if t.missingLogMode {
		t.logger.Warn("translation not found", logger.Locale(lang), logger.TranslationKey(key))
	}
	if t.fallbackToKey {
		return sprintf(key, args)
	}
	return ""
}

func pluralForms(n int) []string {
	switch n {
	case 0:
		return []string{"zero", "other"}
	case 1:
		return []string{"one"}
	default:
		return []string{"other"}
	}
}

// lookupKey walks nested maps using a dot-separated key.
func lookupKey(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}
		current, ok = val.(map[string]any)
		if !ok {
			return nil, false
		}
	}
	return nil, false
}

func hasArg(args []string, name string) bool {
	for i := 0; i < len(args)-1; i += 2 {
		if args[i] == name {
			return true
		}
	}
	return false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// sprintf substitutes %{name} placeholders from key/value pairs; an odd
// trailing argument is ignored and unknown placeholders are kept.
func sprintf(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
