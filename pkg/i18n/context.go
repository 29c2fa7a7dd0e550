package i18n

import "context"

type localeContextKey struct{}

// SetLocale stores the locale used by Tc, Nc and the validator in the context.
func SetLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// LookupLocale returns the locale stored in the context and whether one was set.
func LookupLocale(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	locale, _ := ctx.Value(localeContextKey{}).(string)
	return locale, locale != ""
}

// GetLocale returns the locale stored in the context, or DefaultLanguage.
func GetLocale(ctx context.Context) string {
	if locale, ok := LookupLocale(ctx); ok {
		return locale
	}
	return DefaultLanguage
}
