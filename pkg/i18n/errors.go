package i18n

import (
	"errors"
	"fmt"
)

var (
	ErrNilAdapter = errors.New("translation adapter is nil")

	ErrParsingCancelled  = errors.New("translation parsing cancelled")
	ErrFailedToParseJSON = errors.New("failed to parse JSON content")
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")
	ErrFailedToParseTOML = errors.New("failed to parse TOML content")
	ErrInvalidStructure  = errors.New("invalid translation structure")

	ErrLoadingCancelled   = errors.New("loading translations cancelled")
	ErrFailedToReadFile   = errors.New("failed to read translation file")
	ErrFailedToParseFile  = errors.New("failed to parse translation file")
	ErrUnsupportedFile    = errors.New("unsupported translation file")
	ErrFailedToReadDir    = errors.New("failed to read translation directory")
	ErrNoTranslationFiles = errors.New("no translation files found")
)

// ErrLanguageNotSupported indicates that the requested language is not loaded.
type ErrLanguageNotSupported struct {
	Lang string
}

func (e *ErrLanguageNotSupported) Error() string {
	return fmt.Sprintf("language not supported: %s", e.Lang)
}
