package wifi

import (
	"github.com/itsChris/wifiqr/internal/qr"
)

// Result is a rendered WiFi QR code together with what went into it.
type Result struct {
	Image      qr.Image
	Payload    string
	Credential Credential
}

// Encode formats the credential and renders it as a QR image. It does not
// validate; run Validate first. On failure the error is a *qr.EncodingError
// and no partial result is returned.
func Encode(ssid, password string, security SecurityType, hidden bool) (*Result, error) {
	return EncodeCredential(Credential{
		SSID:     ssid,
		Password: password,
		Security: security,
		Hidden:   hidden,
	})
}

// EncodeCredential is Encode for an already assembled Credential.
func EncodeCredential(c Credential) (*Result, error) {
	payload := c.Config()

	img, err := qr.Encode(payload)
	if err != nil {
		return nil, err
	}

	if c.Security == "" {
		c.Security = WPA
	}
	return &Result{
		Image:      img,
		Payload:    payload,
		Credential: c,
	}, nil
}
