// Package i18n resolves message keys to user-facing text. Every locale has
// a table indexed by Key; a missing entry is caught by the package tests.
package i18n

import (
	"strings"

	"golang.org/x/text/language"

	apperr "github.com/itsChris/wifiqr/internal/errors"
)

// Locale is a supported message language.
type Locale int

const (
	English Locale = iota
	Spanish
	numLocales
)

// supported is ordered like the Locale constants; Match relies on that.
var supported = []language.Tag{
	language.English,
	language.Spanish,
}

var matcher = language.NewMatcher(supported)

// String returns the BCP 47 tag of the locale.
func (l Locale) String() string {
	if l < 0 || l >= numLocales {
		return "invalid"
	}
	return supported[l].String()
}

// Locales returns every supported locale.
func Locales() []Locale {
	out := make([]Locale, 0, numLocales)
	for l := Locale(0); l < numLocales; l++ {
		out = append(out, l)
	}
	return out
}

// Match picks the closest supported locale for a language preference such
// as "es", "es-MX", "en_US.UTF-8" or an Accept-Language list. Unknown or
// empty input yields English.
func Match(pref string) Locale {
	pref = strings.TrimSpace(pref)
	// POSIX locale names carry a charset suffix ("es_ES.UTF-8").
	if !strings.ContainsAny(pref, ",;") {
		if i := strings.IndexByte(pref, '.'); i >= 0 {
			pref = pref[:i]
		}
	}
	pref = strings.ReplaceAll(pref, "_", "-")
	if pref == "" || pref == "C" || pref == "POSIX" {
		return English
	}

	tags, _, err := language.ParseAcceptLanguage(pref)
	if err != nil || len(tags) == 0 {
		return English
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return English
	}
	return Locale(idx)
}

// Message returns the text for key in locale l.
func Message(l Locale, key Key) string {
	if l < 0 || l >= numLocales {
		l = English
	}
	if key < 0 || key >= numKeys {
		return ""
	}
	return tables[l][key]
}

var codeKeys = map[string]Key{
	apperr.ErrSSIDRequired:        KeySSIDRequired,
	apperr.ErrSSIDTooLong:         KeySSIDTooLong,
	apperr.ErrPasswordRequired:    KeyPasswordRequired,
	apperr.ErrPasswordTooShort:    KeyPasswordTooShort,
	apperr.ErrInvalidSecurityType: KeyInvalidSecurityType,
	apperr.ErrEncodingFailed:      KeyEncodingFailed,
	apperr.ErrExportFailed:        KeyExportFailed,
	apperr.ErrValidation:          KeyValidationFailed,
	apperr.ErrInternal:            KeyInternal,
}

// CodeMessage returns the text for an error code. Unknown codes are
// returned unchanged.
func CodeMessage(l Locale, code string) string {
	key, ok := codeKeys[code]
	if !ok {
		return code
	}
	return Message(l, key)
}

// SecurityLabel returns the display label for a security wire token.
func SecurityLabel(l Locale, token string) string {
	switch token {
	case "", "WPA":
		return Message(l, KeySecurityWPA)
	case "WEP":
		return Message(l, KeySecurityWEP)
	case "nopass":
		return Message(l, KeySecurityOpen)
	default:
		return token
	}
}
