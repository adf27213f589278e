package qr

import (
	"fmt"
	"io"

	qrcode "github.com/skip2/go-qrcode"
)

// Fprint draws payload on w using half-block characters, two module rows
// per line. The standard 4-module border is kept so that phones can scan
// it straight off a dark terminal.
func Fprint(w io.Writer, payload string) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = &EncodingError{Reason: fmt.Sprintf("%v", rec)}
		}
	}()

	code, err := qrcode.New(payload, level)
	if err != nil {
		return &EncodingError{Reason: err.Error()}
	}

	if _, err := io.WriteString(w, code.ToSmallString(false)); err != nil {
		return fmt.Errorf("write terminal qr code: %w", err)
	}
	return nil
}
