package wifi

import (
	"strings"
	"unicode/utf8"

	apperr "github.com/itsChris/wifiqr/internal/errors"
)

const (
	// MaxSSIDLength is the longest SSID accepted, in characters.
	MaxSSIDLength = 32
	// MinPasswordLength applies to WPA and WEP networks.
	MinPasswordLength = 8
)

// ErrorCode identifies a violated validation rule.
type ErrorCode string

const (
	SSIDRequired     ErrorCode = apperr.ErrSSIDRequired
	SSIDTooLong      ErrorCode = apperr.ErrSSIDTooLong
	PasswordRequired ErrorCode = apperr.ErrPasswordRequired
	PasswordTooShort ErrorCode = apperr.ErrPasswordTooShort
)

// ValidationResult lists every violated rule in evaluation order.
type ValidationResult struct {
	Errors []ErrorCode `json:"errors"`
}

// IsValid reports whether no rule was violated.
func (r ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// Has reports whether code is among the violations.
func (r ValidationResult) Has(code ErrorCode) bool {
	for _, c := range r.Errors {
		if c == code {
			return true
		}
	}
	return false
}

// Validate checks ssid and password against the format rules. All rules
// are evaluated; violations are returned in a fixed order:
// SSID_REQUIRED, SSID_TOO_LONG, PASSWORD_REQUIRED, PASSWORD_TOO_SHORT.
// Lengths are counted in characters before escaping. Password rules are
// skipped for open networks. PASSWORD_TOO_SHORT only applies to a
// non-empty password; an empty one is reported as PASSWORD_REQUIRED.
func Validate(ssid, password string, security SecurityType) ValidationResult {
	var errs []ErrorCode

	if strings.TrimSpace(ssid) == "" {
		errs = append(errs, SSIDRequired)
	}
	if utf8.RuneCountInString(ssid) > MaxSSIDLength {
		errs = append(errs, SSIDTooLong)
	}

	if security.RequiresPassword() {
		if strings.TrimSpace(password) == "" {
			errs = append(errs, PasswordRequired)
		}
		if password != "" && utf8.RuneCountInString(password) < MinPasswordLength {
			errs = append(errs, PasswordTooShort)
		}
	}

	return ValidationResult{Errors: errs}
}
