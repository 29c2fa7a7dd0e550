package i18n

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Parser turns the content of a translation file into per-language translations.
type Parser interface {
	// Parse returns translations keyed by language code.
	Parse(ctx context.Context, content string) (map[string]map[string]any, error)

	// SupportsFileExtension reports whether the parser handles ext, with or without leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser matching the file extension, or nil.
func NewParserForFile(filename string) Parser {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	for _, p := range []Parser{NewJSONParser(), NewYAMLParser(), NewTOMLParser()} {
		if p.SupportsFileExtension(ext) {
			return p
		}
	}
	return nil
}

// parserFor returns p, or the parser matching filename when p is nil.
func parserFor(p Parser, filename string) Parser {
	if p != nil {
		return p
	}
	return NewParserForFile(filename)
}

// toTranslations validates the decoded document: every top-level key is a
// language holding a map of translations.
func toTranslations(data map[string]any) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		translations, ok := normalize(val).(map[string]any)
		if !ok {
			return nil, errors.Join(ErrInvalidStructure,
				fmt.Errorf("language %q: expected map, got %T", lang, val))
		}
		result[lang] = translations
	}
	if len(result) == 0 {
		return nil, errors.Join(ErrInvalidStructure, errors.New("no languages found"))
	}
	return result, nil
}

// normalize converts nested map[any]any values into map[string]any.
func normalize(val any) any {
	switch v := val.(type) {
	case map[string]any:
		for k, nested := range v {
			v[k] = normalize(nested)
		}
		return v
	case map[any]any:
		m := make(map[string]any, len(v))
		for k, nested := range v {
			m[fmt.Sprint(k)] = normalize(nested)
		}
		return m
	default:
		return val
	}
}
