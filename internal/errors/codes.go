package errors

// Error code constants. Codes are stable identifiers; message text is
// resolved by the caller (see internal/i18n).
const (
	// Validation errors, reported in this order.
	ErrSSIDRequired     = "SSID_REQUIRED"
	ErrSSIDTooLong      = "SSID_TOO_LONG"
	ErrPasswordRequired = "PASSWORD_REQUIRED"
	ErrPasswordTooShort = "PASSWORD_TOO_SHORT"

	// Input errors
	ErrInvalidSecurityType = "INVALID_SECURITY_TYPE"

	// Encoding and export errors
	ErrEncodingFailed = "ENCODING_FAILED"
	ErrExportFailed   = "EXPORT_FAILED"

	// General
	ErrValidation = "VALIDATION_ERROR"
	ErrInternal   = "INTERNAL_ERROR"
)
