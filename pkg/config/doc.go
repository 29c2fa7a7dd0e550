// Package config loads typed configuration from environment variables.
//
// Structs are described with `env` and `envDefault` tags understood by
// github.com/caarlos0/env/v11. Load parses a struct type once per process and
// serves later calls from an in-memory cache; LoadFresh re-parses and replaces
// the cached copy, which is what tests that call t.Setenv need. A .env file in
// the working directory is picked up through github.com/joho/godotenv on first
// use, and LoadEnv reads additional files explicitly.
//
//	var cfg validation.Config
//	config.MustLoad(&cfg)
//
// Failures wrap ErrParsingConfig, ErrInvalidConfigType, ErrNilPointer or
// ErrLoadingEnvFile and can be matched with errors.Is.
package config
