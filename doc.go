// Package validation bootstraps rule validation with translated messages.
//
// The rule adapter itself lives in pkg/validator: it accepts validation units
// with either a typed Validate or a generic Invoke method, injects the data set
// and the running validator into units that ask for them, and collects the
// failures as pending messages that are only rendered when read. This package
// adds the surrounding setup: an Engine reads Config from the environment,
// builds a structured logger, loads the default English and German messages
// (embedded from lang/) merged with an optional translations directory, and
// creates validators that render messages in the locale stored in the request
// context.
//
// # Usage
//
//	engine, err := validation.NewFromEnv(ctx)
//	if err != nil {
//	    return err
//	}
//
//	ctx = i18n.SetLocale(ctx, "de")
//	err = engine.Validate(ctx, input, map[string][]any{
//	    "email":    {validator.Required(), validator.Email()},
//	    "password": {validator.Required(), validator.Min(8), validator.Confirmed()},
//	})
//	if errs := validator.ExtractValidationErrors(err); errs != nil {
//	    return errs.Bag() // field => messages, in German
//	}
//
// # Configuration
//
//	VALIDATION_DEFAULT_LOCALE            default "en"
//	VALIDATION_TRANSLATIONS_DIR          directory merged over the embedded messages
//	VALIDATION_LOG_MISSING_TRANSLATIONS  log unknown translation keys, default false
//	VALIDATION_LOG_LEVEL                 debug, info, warn or error; default info
//	VALIDATION_LOG_FORMAT                json or text; default json
package validation
