package validator

import (
	"maps"
	"regexp"
	"slices"

	"github.com/spf13/cast"
)

// M is a shorthand for message parameter maps.
type M map[string]any

// Translator resolves translation keys. *i18n.Translator satisfies it.
type Translator interface {
	T(lang, key string, args ...string) string
	N(lang, key string, n int, args ...string) string
	HasTranslation(lang, key string) bool
}

// PendingMessage is a failure message whose final text is resolved only when read.
// Until then the rule unit that created it may switch it to a translation key,
// add parameters or pin a locale.
type PendingMessage struct {
	attribute  string
	text       string
	key        string
	params     M
	translate  bool
	count      *int
	locale     string
	translator Translator
}

// Attribute returns the explicit attribute key, or "" for messages recorded with Fail.
func (m *PendingMessage) Attribute() string {
	return m.attribute
}

// Text returns the raw message as reported by the unit.
func (m *PendingMessage) Text() string {
	return m.text
}

// Key returns the translation key, or "" when the message is not translated.
func (m *PendingMessage) Key() string {
	if !m.translate {
		return ""
	}
	if m.key != "" {
		return m.key
	}
	return m.text
}

// Params returns a copy of the message parameters.
func (m *PendingMessage) Params() map[string]any {
	return maps.Clone(map[string]any(m.params))
}

// Translate resolves the raw text as a translation key.
func (m *PendingMessage) Translate(params ...M) *PendingMessage {
	m.translate = true
	m.merge(params)
	return m
}

// TranslateKey resolves the message through key instead of the raw text.
// The raw text stays the fallback when no translation exists.
func (m *PendingMessage) TranslateKey(key string, params ...M) *PendingMessage {
	m.translate = true
	m.key = key
	m.merge(params)
	return m
}

// TranslateChoice resolves the message through the plural form selected by n.
func (m *PendingMessage) TranslateChoice(n int, params ...M) *PendingMessage {
	m.translate = true
	m.count = &n
	m.merge(params)
	return m
}

// With sets a single parameter.
func (m *PendingMessage) With(name string, value any) *PendingMessage {
	if m.params == nil {
		m.params = M{}
	}
	m.params[name] = value
	return m
}

// WithLocale pins the language used to resolve the message.
func (m *PendingMessage) WithLocale(lang string) *PendingMessage {
	m.locale = lang
	return m
}

// String resolves the message in its own locale.
func (m *PendingMessage) String() string {
	return m.In(m.locale)
}

// In resolves the message in the given language.
func (m *PendingMessage) In(lang string) string {
	if !m.translate || m.translator == nil {
		return m.fallback()
	}

	key := m.Key()
	if !m.translator.HasTranslation(lang, key) {
		return m.fallback()
	}

	args := m.args()
	if m.count != nil {
		return m.translator.N(lang, key, *m.count, args...)
	}
	return m.translator.T(lang, key, args...)
}

func (m *PendingMessage) fallback() string {
	if m.text == "" {
		return m.Key()
	}
	return interpolate(m.text, m.params)
}

func (m *PendingMessage) merge(params []M) {
	for _, p := range params {
		for k, v := range p {
			m.With(k, v)
		}
	}
}

// args flattens params into the key/value pairs the translator expects.
func (m *PendingMessage) args() []string {
	keys := slices.Sorted(maps.Keys(m.params))

	args := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		args = append(args, k, cast.ToString(m.params[k]))
	}
	return args
}

var placeholderRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// interpolate substitutes %{name} placeholders, keeping unknown ones untouched.
func interpolate(text string, params M) string {
	if len(params) == 0 {
		return text
	}
	return placeholderRegex.ReplaceAllStringFunc(text, func(match string) string {
		if v, ok := params[match[2:len(match)-1]]; ok {
			return cast.ToString(v)
		}
		return match
	})
}

// PendingMessages is the ordered sequence of messages owned by one adapter.
type PendingMessages struct {
	items      []*PendingMessage
	translator Translator
	locale     string
}

// Create builds a pending message and appends it to the sequence before returning it,
// so the sequence always reflects every message handed out.
func (p *PendingMessages) Create(attribute, message string) *PendingMessage {
	msg := &PendingMessage{
		attribute:  attribute,
		text:       message,
		params:     M{},
		locale:     p.locale,
		translator: p.translator,
	}
	p.items = append(p.items, msg)
	return msg
}

// All returns the messages in creation order.
func (p *PendingMessages) All() []*PendingMessage {
	return slices.Clone(p.items)
}

func (p *PendingMessages) Len() int {
	return len(p.items)
}

// Strings resolves every message in its own locale.
func (p *PendingMessages) Strings() []string {
	out := make([]string, 0, len(p.items))
	for _, msg := range p.items {
		out = append(out, msg.String())
	}
	return out
}
