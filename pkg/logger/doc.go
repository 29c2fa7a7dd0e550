// Package logger builds slog loggers for the validation packages.
//
// New returns a *slog.Logger configured through functional options: output
// format (JSON or text), minimum level, static attributes and context
// extractors. The handler is wrapped in LogHandlerDecorator, which runs the
// extractors for each record so that request-scoped values such as the
// active locale end up in the output.
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithTextFormatter(),
//	    logger.WithAttr(logger.Component("validation")),
//	)
//	log.DebugContext(ctx, "validation rule failed",
//	    logger.Attribute("email"),
//	    logger.Rule("email"),
//	)
//
// ParseLevel and ParseFormat convert configuration strings, and Discard
// returns the silent logger every package falls back to when none is given.
//
// Error and Errors return an empty slog.Attr for nil errors, so they can be
// passed unconditionally.
package logger
