// Package validation checks provider options and descriptors against the
// contract an authorization engine relies on.
//
// Struct tag validation uses go-playground/validator; programmatic checks
// collect field errors. Both render a single *errors.AppError.
//
//	if err := validation.Validate(info); err != nil {
//	    return err
//	}
//
//	v := validation.New()
//	v.Required("client_id", opts.ClientID).URL("issuer", opts.Issuer)
//	if appErr := v.Validate(); appErr != nil {
//	    return appErr
//	}
package validation
