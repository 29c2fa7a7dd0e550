package validation

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/validation/pkg/i18n"
	"github.com/dmitrymomot/validation/pkg/logger"
	"github.com/dmitrymomot/validation/pkg/validator"
)

//go:embed lang/*.yaml
var defaultMessages embed.FS

// Engine wires configuration, logging and translations together and hands
// out validators that render messages in the caller's locale.
// It is safe for concurrent use; the validators it creates are not.
type Engine struct {
	cfg        Config
	logger     *slog.Logger
	translator *i18n.Translator
}

// Option configures an Engine.
type Option func(*engineOptions)

type engineOptions struct {
	logger   *slog.Logger
	adapters []i18n.TranslationAdapter
}

// WithLogger replaces the logger built from Config.
func WithLogger(l *slog.Logger) Option {
	return func(o *engineOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithTranslations merges extra translation sources over the defaults and
// the configured directory, in the given order.
func WithTranslations(adapters ...i18n.TranslationAdapter) Option {
	return func(o *engineOptions) {
		o.adapters = append(o.adapters, adapters...)
	}
}

// New builds an Engine from cfg.
func New(ctx context.Context, cfg Config, opts ...Option) (*Engine, error) {
	var o engineOptions
	for _, opt := range opts {
		opt(&o)
	}

	if cfg.DefaultLocale == "" {
		cfg.DefaultLocale = i18n.DefaultLanguage
	}

	log := o.logger
	if log == nil {
		var err error
		if log, err = newLogger(cfg); err != nil {
			return nil, err
		}
	}

	adapters := []i18n.TranslationAdapter{
		i18n.NewFSAdapter(i18n.NewYAMLParser(), defaultMessages, "lang"),
	}
	if cfg.TranslationsDir != "" {
		adapters = append(adapters, i18n.NewDirectoryAdapter(nil, cfg.TranslationsDir))
	}
	adapters = append(adapters, o.adapters...)

	translator, err := i18n.NewTranslator(ctx, i18n.NewMultiAdapter(adapters...),
		i18n.WithDefaultLanguage(cfg.DefaultLocale),
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(cfg.LogMissingTranslations),
	)
	if err != nil {
		log.ErrorContext(ctx, "loading translations", logger.Error(err))
		return nil, errors.Join(ErrLoadingTranslations, err)
	}

	return &Engine{cfg: cfg, logger: log, translator: translator}, nil
}

// NewFromEnv builds an Engine from the environment configuration.
func NewFromEnv(ctx context.Context, opts ...Option) (*Engine, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	return New(ctx, cfg, opts...)
}

func newLogger(cfg Config) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	return logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithAttr(logger.Component("validation")),
		logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
			if locale, ok := i18n.LookupLocale(ctx); ok {
				return logger.Locale(locale), true
			}
			return slog.Attr{}, false
		}),
	), nil
}

// Locale returns the loaded language that best fits the locale stored in
// ctx, or the configured default.
func (e *Engine) Locale(ctx context.Context) string {
	if locale, ok := i18n.LookupLocale(ctx); ok {
		return e.translator.Match(locale)
	}
	return e.cfg.DefaultLocale
}

// Validator creates a validator for data that renders messages in the
// locale of ctx. Extra options are applied after the engine defaults.
func (e *Engine) Validator(ctx context.Context, data map[string]any, rules map[string][]any, opts ...validator.Option) (*validator.Validator, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	base := []validator.Option{
		validator.WithTranslator(e.translator),
		validator.WithLocale(e.Locale(ctx)),
		validator.WithLogger(e.logger),
	}
	v, err := validator.New(ctx, data, rules, append(base, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("building validator: %w", err)
	}
	return v, nil
}

// Validate is a shorthand for Validator followed by Validate. A nil error
// means every rule passed; failures come back as validator.ValidationErrors.
func (e *Engine) Validate(ctx context.Context, data map[string]any, rules map[string][]any, opts ...validator.Option) error {
	v, err := e.Validator(ctx, data, rules, opts...)
	if err != nil {
		return err
	}
	return v.Validate()
}

// Reload re-reads every translation source.
func (e *Engine) Reload(ctx context.Context) error {
	if err := e.translator.Reload(ctx); err != nil {
		return errors.Join(ErrLoadingTranslations, err)
	}
	return nil
}

func (e *Engine) Config() Config               { return e.cfg }
func (e *Engine) Logger() *slog.Logger         { return e.logger }
func (e *Engine) Translator() *i18n.Translator { return e.translator }
