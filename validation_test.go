package validation_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validation"
	"github.com/dmitrymomot/validation/pkg/i18n"
	"github.com/dmitrymomot/validation/pkg/logger"
	"github.com/dmitrymomot/validation/pkg/validator"
)

func newEngine(t *testing.T, cfg validation.Config, opts ...validation.Option) *validation.Engine {
	t.Helper()
	opts = append([]validation.Option{validation.WithLogger(logger.Discard())}, opts...)
	engine, err := validation.New(context.Background(), cfg, opts...)
	require.NoError(t, err)
	return engine
}

func signupRules() map[string][]any {
	return map[string][]any{
		"email":    {validator.Required(), validator.Email()},
		"password": {validator.Required(), validator.Min(8), validator.Confirmed()},
	}
}

func TestNew(t *testing.T) {
	t.Run("loads embedded messages", func(t *testing.T) {
		engine := newEngine(t, validation.DefaultConfig())

		assert.Equal(t, []string{"de", "en"}, engine.Translator().SupportedLanguages())
		assert.True(t, engine.Translator().HasTranslation("en", "validation.min.string"))
		assert.True(t, engine.Translator().HasTranslation("de", "validation.required_with"))
	})

	t.Run("empty default locale falls back to en", func(t *testing.T) {
		engine := newEngine(t, validation.Config{})
		assert.Equal(t, "en", engine.Config().DefaultLocale)
	})

	t.Run("rejects invalid log settings", func(t *testing.T) {
		_, err := validation.New(context.Background(), validation.Config{LogLevel: "loud"})
		assert.ErrorIs(t, err, validation.ErrInvalidConfig)

		_, err = validation.New(context.Background(), validation.Config{LogFormat: "xml"})
		assert.ErrorIs(t, err, validation.ErrInvalidConfig)
	})

	t.Run("builds logger from config", func(t *testing.T) {
		engine, err := validation.New(context.Background(), validation.Config{LogLevel: "warn", LogFormat: "text"})
		require.NoError(t, err)
		assert.False(t, engine.Logger().Enabled(context.Background(), slog.LevelInfo))
		assert.True(t, engine.Logger().Enabled(context.Background(), slog.LevelWarn))
	})

	t.Run("missing translations dir fails", func(t *testing.T) {
		cfg := validation.DefaultConfig()
		cfg.TranslationsDir = filepath.Join(t.TempDir(), "missing")

		_, err := validation.New(context.Background(), cfg, validation.WithLogger(logger.Discard()))
		assert.ErrorIs(t, err, validation.ErrLoadingTranslations)
		assert.ErrorIs(t, err, i18n.ErrFailedToReadDir)
	})
}

func TestEngine_Validate(t *testing.T) {
	engine := newEngine(t, validation.DefaultConfig())

	t.Run("valid input", func(t *testing.T) {
		err := engine.Validate(context.Background(), map[string]any{
			"email":                 "jane@example.com",
			"password":              "s3cret-pass",
			"password_confirmation": "s3cret-pass",
		}, signupRules())
		assert.NoError(t, err)
	})

	t.Run("english messages by default", func(t *testing.T) {
		err := engine.Validate(context.Background(), map[string]any{
			"email":    "not-an-email",
			"password": "short",
		}, signupRules())

		errs := validator.ExtractValidationErrors(err)
		require.NotNil(t, errs)
		assert.Equal(t, []string{"The email field must be a valid email address."}, errs.Get("email"))
		assert.Equal(t, []string{
			"The password field must be at least 8 characters.",
			"The password field confirmation does not match.",
		}, errs.Get("password"))
	})

	t.Run("german messages from context locale", func(t *testing.T) {
		ctx := i18n.SetLocale(context.Background(), "de-AT")
		err := engine.Validate(ctx, map[string]any{}, signupRules())

		errs := validator.ExtractValidationErrors(err)
		require.NotNil(t, errs)
		assert.Equal(t, []string{"Das Feld email ist erforderlich."}, errs.Get("email"))
		assert.Equal(t, []string{"Das Feld password ist erforderlich."}, errs.Get("password"))
	})

	t.Run("unknown locale uses default", func(t *testing.T) {
		ctx := i18n.SetLocale(context.Background(), "ja")
		assert.Equal(t, "en", engine.Locale(ctx))
	})

	t.Run("caller options apply after defaults", func(t *testing.T) {
		ctx := i18n.SetLocale(context.Background(), "de")
		err := engine.Validate(ctx, map[string]any{}, map[string][]any{
			"email": {validator.Required()},
		}, validator.WithLocale("en"), validator.WithAttributeNames(map[string]string{"email": "e-mail address"}))

		errs := validator.ExtractValidationErrors(err)
		require.NotNil(t, errs)
		assert.Equal(t, []string{"The e-mail address field is required."}, errs.Get("email"))
	})

	t.Run("misconfigured unit", func(t *testing.T) {
		_, err := engine.Validator(context.Background(), nil, map[string][]any{"name": {42}})
		assert.ErrorIs(t, err, validator.ErrUnsupportedUnit)
	})
}

func TestEngine_TranslationOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.toml"), []byte(`
[en.validation]
required = "Please fill in %{attribute}."
`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fr.json"), []byte(`{
		"fr": {"validation": {"required": "Le champ %{attribute} est obligatoire."}}
	}`), 0o600))

	cfg := validation.DefaultConfig()
	cfg.TranslationsDir = dir
	engine := newEngine(t, cfg, validation.WithTranslations(&i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {"validation": map[string]any{"email": "Bad email: %{attribute}."}},
	}}))

	rules := map[string][]any{"name": {validator.Required()}, "email": {validator.Email()}}
	data := map[string]any{"email": "nope"}

	errs := validator.ExtractValidationErrors(engine.Validate(context.Background(), data, rules))
	require.NotNil(t, errs)
	assert.Equal(t, []string{"Please fill in name."}, errs.Get("name"))
	assert.Equal(t, []string{"Bad email: email."}, errs.Get("email"))

	t.Run("untouched keys keep embedded text", func(t *testing.T) {
		assert.Equal(t, "The name field must be a valid UUID.",
			engine.Translator().T("en", "validation.uuid", "attribute", "name"))
	})

	t.Run("directory adds languages", func(t *testing.T) {
		ctx := i18n.SetLocale(context.Background(), "fr")
		errs := validator.ExtractValidationErrors(engine.Validate(ctx, data, rules))
		require.NotNil(t, errs)
		assert.Equal(t, []string{"Le champ name est obligatoire."}, errs.Get("name"))
		assert.Equal(t, []string{"The email field must be a valid email address."}, errs.Get("email"),
			"keys missing in fr fall back to the raw message")
	})

	t.Run("reload picks up changes", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "fr.json"), []byte(`{
			"fr": {"validation": {"required": "Champ %{attribute} requis."}}
		}`), 0o600))
		require.NoError(t, engine.Reload(context.Background()))

		ctx := i18n.SetLocale(context.Background(), "fr")
		errs := validator.ExtractValidationErrors(engine.Validate(ctx, map[string]any{}, rules))
		require.NotNil(t, errs)
		assert.Equal(t, []string{"Champ name requis."}, errs.Get("name"))
	})
}

func TestEngine_Logging(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithLevel(slog.LevelDebug),
		logger.WithTextFormatter(),
	)
	engine := newEngine(t, validation.DefaultConfig(), validation.WithLogger(log))

	ctx := i18n.SetLocale(context.Background(), "de")
	require.Error(t, engine.Validate(ctx, map[string]any{}, map[string][]any{"email": {validator.Required()}}))

	assert.Contains(t, buf.String(), "validation rule failed")
	assert.Contains(t, buf.String(), "attribute=email")
	assert.Contains(t, buf.String(), "locale=de")
}
