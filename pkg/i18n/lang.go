package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no language is configured or detected.
const DefaultLanguage = "en"

// MatchLanguage returns the supported language that best fits the preferred ones.
// Preferences are BCP 47 tags in priority order; region variants fall back to
// their base language ("en-GB" matches "en"). fallback is returned when nothing
// matches or nothing is supported.
func MatchLanguage(preferred, supported []string, fallback string) string {
	if len(supported) == 0 || len(preferred) == 0 {
		return fallback
	}

	tags := make([]language.Tag, 0, len(supported))
	names := make([]string, 0, len(supported))
	for _, s := range supported {
		tag, err := language.Parse(s)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		names = append(names, s)
	}
	if len(tags) == 0 {
		return fallback
	}

	wanted := make([]language.Tag, 0, len(preferred))
	for _, p := range preferred {
		if tag, err := language.Parse(strings.TrimSpace(p)); err == nil {
			wanted = append(wanted, tag)
		}
	}
	if len(wanted) == 0 {
		return fallback
	}

	_, idx, confidence := language.NewMatcher(tags).Match(wanted...)
	if confidence == language.No {
		return fallback
	}
	return names[idx]
}
