package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups the non-nil errors under "errors", or returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under "error". A nil error yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Attribute records the attribute (field path) being validated.
func Attribute(name string) slog.Attr {
	return slog.String("attribute", name)
}

// Rule records the validation rule name.
func Rule(name string) slog.Attr {
	return slog.String("rule", name)
}

// Locale records the locale messages are rendered in.
func Locale(lang string) slog.Attr {
	return slog.String("locale", lang)
}

// TranslationKey records a translation key.
func TranslationKey(key string) slog.Attr {
	return slog.String("translation_key", key)
}

// FailureCount records how many failures a run produced.
func FailureCount(n int) slog.Attr {
	return slog.Int("failures", n)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}
