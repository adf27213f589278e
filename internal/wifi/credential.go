package wifi

import (
	"fmt"
	"strings"

	apperr "github.com/itsChris/wifiqr/internal/errors"
)

// SecurityType is the encryption token written into the T: field.
type SecurityType string

const (
	WPA  SecurityType = "WPA"
	WEP  SecurityType = "WEP"
	Open SecurityType = "nopass"
)

// String returns the wire-format token. The zero value reads as WPA.
func (s SecurityType) String() string {
	if s == "" {
		return string(WPA)
	}
	return string(s)
}

// RequiresPassword reports whether networks of this type need a password.
func (s SecurityType) RequiresPassword() bool {
	return s.String() != string(Open)
}

// ParseSecurityType accepts the wire tokens and a few common aliases.
// An empty string yields WPA.
func ParseSecurityType(s string) (SecurityType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "wpa", "wpa2", "wpa/wpa2", "wpa3":
		return WPA, nil
	case "wep":
		return WEP, nil
	case "nopass", "open", "none":
		return Open, nil
	default:
		return "", &InvalidSecurityTypeError{Value: s}
	}
}

// InvalidSecurityTypeError is returned by ParseSecurityType for unknown tokens.
type InvalidSecurityTypeError struct {
	Value string
}

func (e *InvalidSecurityTypeError) Error() string {
	return fmt.Sprintf("invalid security type %q (want WPA, WEP or nopass)", e.Value)
}

// Code returns the stable error code.
func (e *InvalidSecurityTypeError) Code() string {
	return apperr.ErrInvalidSecurityType
}

// Credential is the set of fields encoded into a WiFi QR code.
// It is passed by value; build a new Credential instead of mutating one.
type Credential struct {
	SSID     string
	Password string
	Security SecurityType
	Hidden   bool
}

// Validate checks the credential against the format rules.
func (c Credential) Validate() ValidationResult {
	return Validate(c.SSID, c.Password, c.Security)
}

// Config returns the escaped WIFI: configuration string.
func (c Credential) Config() string {
	return FormatConfig(c.SSID, c.Password, c.Security, c.Hidden)
}

// MaskedPassword returns one bullet per password character, for display.
func (c Credential) MaskedPassword() string {
	return strings.Repeat("•", len([]rune(c.Password)))
}
