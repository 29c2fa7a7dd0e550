package validation

import "errors"

var (
	ErrInvalidConfig       = errors.New("invalid validation config")
	ErrLoadingTranslations = errors.New("failed to load validation translations")
)
