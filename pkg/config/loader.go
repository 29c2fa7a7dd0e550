package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache keeps one parsed value per configuration type.
type cache struct {
	mu     sync.Mutex
	values map[reflect.Type]any
}

var (
	global = &cache{values: make(map[reflect.Type]any)}

	dotenvOnce sync.Once
)

// Load populates v from the environment and caches the result per type:
// the first successful call parses, later calls copy the cached value.
// A .env file in the working directory is read once, if present; variables
// already set in the process take precedence.
//
//	type Config struct {
//		DefaultLocale string `env:"VALIDATION_DEFAULT_LOCALE" envDefault:"en"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()

	global.mu.Lock()
	defer global.mu.Unlock()

	if cached, ok := global.values[key]; ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := parse(&parsed); err != nil {
		return err
	}
	global.values[key] = parsed
	*v = parsed
	return nil
}

// MustLoad is Load that panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: failed to load %s: %v", reflect.TypeFor[T](), err))
	}
}

// LoadFresh parses the environment into v, bypassing and refreshing the cache.
func LoadFresh[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	var parsed T
	if err := parse(&parsed); err != nil {
		return err
	}

	global.mu.Lock()
	global.values[reflect.TypeFor[T]()] = parsed
	global.mu.Unlock()

	*v = parsed
	return nil
}

// LoadEnv reads the given .env files into the process environment without
// overriding variables that are already set. With no arguments it reads ./.env.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// ResetCache drops every cached configuration.
func ResetCache() {
	global.mu.Lock()
	global.values = make(map[reflect.Type]any)
	global.mu.Unlock()
}

func parse[T any](v *T) error {
	if reflect.TypeFor[T]().Kind() != reflect.Struct {
		return fmt.Errorf("%w: %s", ErrInvalidConfigType, reflect.TypeFor[T]())
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}
