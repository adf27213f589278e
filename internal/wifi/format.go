package wifi

import "strings"

// Escape prefixes each of " ; , \ : with a backslash.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '"', ';', ',', '\\', ':':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Unescape reverses Escape: every backslash-prefixed character is
// replaced by the character itself.
func Unescape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	escaped := false
	for _, r := range s {
		if r == '\\' && !escaped {
			escaped = true
			continue
		}
		escaped = false
		b.WriteRune(r)
	}
	return b.String()
}

// FormatConfig builds the WiFi configuration string scanners expect:
//
//	WIFI:T:<security>;S:<ssid>;P:<password>;H:<true|false>;;
//
// ssid and password are escaped independently. The P: field is always
// present, so open networks produce "P:;". An empty security type is
// written as WPA.
func FormatConfig(ssid, password string, security SecurityType, hidden bool) string {
	h := "false"
	if hidden {
		h = "true"
	}

	var b strings.Builder
	b.WriteString("WIFI:T:")
	b.WriteString(security.String())
	b.WriteString(";S:")
	b.WriteString(Escape(ssid))
	b.WriteString(";P:")
	b.WriteString(Escape(password))
	b.WriteString(";H:")
	b.WriteString(h)
	b.WriteString(";;")
	return b.String()
}
