// Package i18n loads translations and resolves translation keys for the
// validation messages produced by the validator package.
//
// Translations are nested maps keyed by language; keys are addressed with dot
// notation ("validation.min.string") and may contain named placeholders in the
// form %{name}. Plural forms live under "zero", "one" and "other" sub-keys.
//
// # Architecture
//
// Translator holds the loaded translations and is safe for concurrent use.
// Loading is delegated to a TranslationAdapter:
//
//   - MapAdapter: in-memory map, handy for tests
//   - FileAdapter: a single JSON, YAML or TOML file
//   - DirectoryAdapter: every supported file in a directory
//   - FSAdapter: every supported file in an fs.FS (embed.FS included)
//   - MultiAdapter: several adapters merged, later ones win
//
// Parsers are chosen by file extension (NewParserForFile).
//
// # Usage
//
//	translator, err := i18n.NewTranslator(ctx,
//	    i18n.NewDirectoryAdapter(i18n.NewYAMLParser(), "./lang"),
//	    i18n.WithDefaultLanguage("en"),
//	)
//	if err != nil {
//	    return err
//	}
//
//	translator.T("en", "validation.required", "attribute", "email")
//	translator.N("en", "items", 3)
//	translator.Tc(i18n.SetLocale(ctx, "de"), "validation.required")
//
// Match picks the best supported language for a user preference, e.g. "de-AT"
// resolves to "de" when only "de" is loaded.
//
// # Error Handling
//
// Loading errors wrap the sentinel errors in errors.go with errors.Join, so
// callers can test them with errors.Is. Missing keys never produce errors: the
// translator falls back to the key (configurable) and logs when asked to.
package i18n
