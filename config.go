package validation

import (
	"github.com/dmitrymomot/validation/pkg/config"
)

// Config holds the environment-driven settings of an Engine.
type Config struct {
	// DefaultLocale is used when the context carries no locale or none of
	// the loaded languages matches it.
	DefaultLocale string `env:"VALIDATION_DEFAULT_LOCALE" envDefault:"en"`

	// TranslationsDir is an optional directory of JSON, YAML or TOML files
	// merged over the embedded default messages.
	TranslationsDir string `env:"VALIDATION_TRANSLATIONS_DIR"`

	LogMissingTranslations bool   `env:"VALIDATION_LOG_MISSING_TRANSLATIONS" envDefault:"false"`
	LogLevel               string `env:"VALIDATION_LOG_LEVEL" envDefault:"info"`
	LogFormat              string `env:"VALIDATION_LOG_FORMAT" envDefault:"json"`
}

// DefaultConfig returns the configuration used when no environment is set.
func DefaultConfig() Config {
	return Config{
		DefaultLocale: "en",
		LogLevel:      "info",
		LogFormat:     "json",
	}
}

// LoadConfig reads Config from the environment (and a .env file, if present).
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
