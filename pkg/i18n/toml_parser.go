package i18n

import (
	"context"
	"errors"
	"strings"

	"github.com/BurntSushi/toml"
)

// TOMLParser parses translation files in TOML format, one table per language.
type TOMLParser struct{}

func NewTOMLParser() *TOMLParser {
	return &TOMLParser{}
}

func (p *TOMLParser) Parse(ctx context.Context, content string) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var data map[string]any
	if _, err := toml.Decode(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseTOML, err)
	}
	return toTranslations(data)
}

func (p *TOMLParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "toml")
}
