package validator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validation/pkg/i18n"
	"github.com/dmitrymomot/validation/pkg/validator"
)

func newTranslator(t *testing.T) *i18n.Translator {
	t.Helper()

	translator, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{
		Data: map[string]map[string]any{
			"en": {
				"validation": map[string]any{
					"uppercase": "The %{attribute} must be uppercase.",
					"items": map[string]any{
						"one":   "Only %{count} item allowed for %{attribute}.",
						"other": "Only %{count} items allowed for %{attribute}.",
					},
				},
			},
			"de": {
				"validation": map[string]any{
					"uppercase": "%{attribute} muss in Großbuchstaben sein.",
				},
			},
		},
	}, i18n.WithNoLogging())
	require.NoError(t, err)
	return translator
}

func failingRule(t *testing.T, v *validator.Validator, customize func(*validator.PendingMessage)) *validator.PendingMessage {
	t.Helper()

	rule := validator.MustMake(validator.ValidateFunc(func(_ string, _ any, fail validator.Failures) {
		customize(fail.Fail("The %{attribute} is invalid."))
	}))
	rule.SetValidator(v)
	require.False(t, rule.Passes("code", "abc"))
	require.Len(t, rule.Message(), 1)
	return rule.Message()[0]
}

func TestPendingMessage_Resolution(t *testing.T) {
	ctx := i18n.SetLocale(context.Background(), "en")
	v, err := validator.New(ctx, nil, nil, validator.WithTranslator(newTranslator(t)))
	require.NoError(t, err)

	t.Run("untranslated messages interpolate raw text", func(t *testing.T) {
		msg := failingRule(t, v, func(*validator.PendingMessage) {})
		assert.Equal(t, "The code is invalid.", msg.String())
		assert.Empty(t, msg.Key())
	})

	t.Run("translation key override resolves through translator", func(t *testing.T) {
		msg := failingRule(t, v, func(m *validator.PendingMessage) {
			m.TranslateKey("validation.uppercase")
		})
		assert.Equal(t, "The code must be uppercase.", msg.String())
		assert.Equal(t, "validation.uppercase", msg.Key())
	})

	t.Run("resolves in another language on demand", func(t *testing.T) {
		msg := failingRule(t, v, func(m *validator.PendingMessage) {
			m.TranslateKey("validation.uppercase")
		})
		assert.Equal(t, "code muss in Großbuchstaben sein.", msg.In("de"))
	})

	t.Run("pinned locale is used by String", func(t *testing.T) {
		msg := failingRule(t, v, func(m *validator.PendingMessage) {
			m.TranslateKey("validation.uppercase").WithLocale("de")
		})
		assert.Equal(t, "code muss in Großbuchstaben sein.", msg.String())
	})

	t.Run("missing translation falls back to raw text", func(t *testing.T) {
		msg := failingRule(t, v, func(m *validator.PendingMessage) {
			m.TranslateKey("validation.unknown")
		})
		assert.Equal(t, "The code is invalid.", msg.String())
	})

	t.Run("plural choice selects the form and adds the count", func(t *testing.T) {
		one := failingRule(t, v, func(m *validator.PendingMessage) {
			m.TranslateKey("validation.items").TranslateChoice(1)
		})
		many := failingRule(t, v, func(m *validator.PendingMessage) {
			m.TranslateKey("validation.items").TranslateChoice(3)
		})
		assert.Equal(t, "Only 1 item allowed for code.", one.String())
		assert.Equal(t, "Only 3 items allowed for code.", many.String())
	})

	t.Run("customization after passes is reflected when read", func(t *testing.T) {
		msg := failingRule(t, v, func(*validator.PendingMessage) {})
		msg.TranslateKey("validation.uppercase")
		assert.Equal(t, "The code must be uppercase.", msg.String())
	})

	t.Run("params are exposed as a copy", func(t *testing.T) {
		msg := failingRule(t, v, func(m *validator.PendingMessage) {
			m.With("min", 3)
		})
		params := msg.Params()
		assert.Equal(t, map[string]any{"attribute": "code", "min": 3}, params)

		params["min"] = 10
		assert.Equal(t, 3, msg.Params()["min"])
	})
}

func TestPendingMessage_WithoutTranslator(t *testing.T) {
	t.Run("translate without translator keeps raw text", func(t *testing.T) {
		msg := failingRule(t, nil, func(m *validator.PendingMessage) {
			m.Translate(validator.M{"extra": "x"})
		})
		assert.Equal(t, "The code is invalid.", msg.String())
		assert.Equal(t, "The %{attribute} is invalid.", msg.Key())
	})

	t.Run("unknown placeholders are kept", func(t *testing.T) {
		rule := validator.MustMake(validator.ValidateFunc(func(_ string, _ any, fail validator.Failures) {
			fail.Fail("%{attribute} needs %{missing}")
		}))
		rule.Passes("name", "")
		assert.Equal(t, "name needs %{missing}", rule.Message()[0].String())
	})

	t.Run("empty text falls back to the key", func(t *testing.T) {
		rule := validator.MustMake(validator.ValidateFunc(func(_ string, _ any, fail validator.Failures) {
			fail.Fail("").TranslateKey("validation.required")
		}))
		rule.Passes("name", "")
		assert.Equal(t, "validation.required", rule.Message()[0].String())
	})
}

func TestPendingMessages(t *testing.T) {
	var messages validator.PendingMessages

	first := messages.Create("", "first")
	second := messages.Create("items.0", "second")

	all := messages.All()
	require.Len(t, all, 2)
	assert.Same(t, first, all[0])
	assert.Same(t, second, all[1])
	assert.Equal(t, 2, messages.Len())
	assert.Equal(t, []string{"first", "second"}, messages.Strings())
	assert.Equal(t, "items.0", second.Attribute())
}
