package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/validation/pkg/i18n"
)

func TestMatchLanguage(t *testing.T) {
	supported := []string{"en", "de", "pt-BR"}

	tests := []struct {
		name      string
		preferred []string
		want      string
	}{
		{"exact match", []string{"de"}, "de"},
		{"region falls back to base", []string{"de-CH"}, "de"},
		{"priority order", []string{"fr", "de", "en"}, "de"},
		{"regional supported tag", []string{"pt-BR"}, "pt-BR"},
		{"no match uses fallback", []string{"ja"}, "en"},
		{"invalid tags are skipped", []string{"not a tag!", "de"}, "de"},
		{"only invalid tags", []string{"???"}, "en"},
		{"no preference", nil, "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, i18n.MatchLanguage(tt.preferred, supported, "en"))
		})
	}

	t.Run("nothing supported", func(t *testing.T) {
		assert.Equal(t, "fr", i18n.MatchLanguage([]string{"de"}, nil, "fr"))
	})
}

func TestLocaleContext(t *testing.T) {
	assert.Equal(t, i18n.DefaultLanguage, i18n.GetLocale(context.Background()))

	_, ok := i18n.LookupLocale(context.Background())
	assert.False(t, ok)

	ctx := i18n.SetLocale(context.Background(), "de")
	assert.Equal(t, "de", i18n.GetLocale(ctx))
	locale, ok := i18n.LookupLocale(ctx)
	assert.True(t, ok)
	assert.Equal(t, "de", locale)

	ctx = i18n.SetLocale(ctx, "")
	assert.Equal(t, i18n.DefaultLanguage, i18n.GetLocale(ctx))
}
