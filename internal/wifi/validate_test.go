package wifi

import (
	"reflect"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		ssid     string
		password string
		security SecurityType
		want     []ErrorCode
	}{
		{"valid wpa", "MyWiFi", "password123", WPA, nil},
		{"valid wep", "MyWiFi", "12345678", WEP, nil},
		{"empty ssid", "", "password123", WPA, []ErrorCode{SSIDRequired}},
		{"whitespace ssid", "   ", "password123", WPA, []ErrorCode{SSIDRequired}},
		{"ssid at limit", strings.Repeat("a", 32), "password123", WPA, nil},
		{"ssid too long", strings.Repeat("a", 33), "password123", WPA, []ErrorCode{SSIDTooLong}},
		{"whitespace ssid too long", strings.Repeat(" ", 33), "password123", WPA, []ErrorCode{SSIDRequired, SSIDTooLong}},
		{"multibyte ssid counted in characters", strings.Repeat("é", 32), "password123", WPA, nil},
		{"empty password", "MyWiFi", "", WPA, []ErrorCode{PasswordRequired}},
		{"whitespace password", "MyWiFi", "   ", WPA, []ErrorCode{PasswordRequired, PasswordTooShort}},
		{"short password", "MyWiFi", "1234567", WPA, []ErrorCode{PasswordTooShort}},
		{"short wep password", "MyWiFi", "abc", WEP, []ErrorCode{PasswordTooShort}},
		{"empty ssid and short password", "", "123", WPA, []ErrorCode{SSIDRequired, PasswordTooShort}},
		{"open ignores password", "Cafe", "", Open, nil},
		{"open ignores short password", "Cafe", "123", Open, nil},
		{"zero security requires password", "MyWiFi", "", "", []ErrorCode{PasswordRequired}},
		{
			"everything wrong",
			strings.Repeat("x", 40), " ", WPA,
			[]ErrorCode{SSIDTooLong, PasswordRequired, PasswordTooShort},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.ssid, tt.password, tt.security)
			if !reflect.DeepEqual(got.Errors, tt.want) {
				t.Errorf("Validate() errors = %v, want %v", got.Errors, tt.want)
			}
			if got.IsValid() != (len(tt.want) == 0) {
				t.Errorf("IsValid() = %v with errors %v", got.IsValid(), got.Errors)
			}
		})
	}
}

func TestValidate_Has(t *testing.T) {
	r := Validate("", "123", WPA)
	if len(r.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %v", r.Errors)
	}
	if !r.Has(SSIDRequired) || !r.Has(PasswordTooShort) {
		t.Errorf("expected SSID_REQUIRED and PASSWORD_TOO_SHORT, got %v", r.Errors)
	}
	if r.Has(PasswordRequired) {
		t.Error("non-empty short password must not trigger PASSWORD_REQUIRED")
	}
}

func TestErrorCode_Strings(t *testing.T) {
	codes := map[ErrorCode]string{
		SSIDRequired:     "SSID_REQUIRED",
		SSIDTooLong:      "SSID_TOO_LONG",
		PasswordRequired: "PASSWORD_REQUIRED",
		PasswordTooShort: "PASSWORD_TOO_SHORT",
	}
	for code, want := range codes {
		if string(code) != want {
			t.Errorf("code %q, want %q", code, want)
		}
	}
}

func TestCredential_Validate(t *testing.T) {
	c := Credential{SSID: "MyWiFi", Password: "1234567", Security: WPA}
	r := c.Validate()
	if r.IsValid() {
		t.Fatal("expected invalid credential")
	}
	if !r.Has(PasswordTooShort) {
		t.Errorf("expected PASSWORD_TOO_SHORT, got %v", r.Errors)
	}
}
