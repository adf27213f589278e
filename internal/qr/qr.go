package qr

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"

	qrcode "github.com/skip2/go-qrcode"

	apperr "github.com/itsChris/wifiqr/internal/errors"
)

const (
	// Size is the width and height of every generated image, in pixels.
	Size = 256
	// QuietZone is the border around the symbol, in modules.
	QuietZone = 1
)

// Level M: roughly 15% of the symbol can be damaged and still scan.
const level = qrcode.Medium

// Index 0 is the background so a fresh paletted image starts white.
var palette = color.Palette{color.White, color.Black}

// Image is a rendered QR code.
type Image struct {
	// PNG holds the encoded 256x256 two-colour PNG.
	PNG []byte
	// Modules is the symbol width in modules, quiet zone included.
	Modules int
}

// Base64 returns the PNG as standard base64.
func (i Image) Base64() string {
	return base64.StdEncoding.EncodeToString(i.PNG)
}

// DataURL returns the PNG as a data URL usable in an <img> src.
func (i Image) DataURL() string {
	return "data:image/png;base64," + i.Base64()
}

// EncodingError reports that a payload could not be turned into an image.
// The QR library's own error is reduced to a message and not wrapped.
type EncodingError struct {
	Reason string
}

func (e *EncodingError) Error() string {
	return "encode qr code: " + e.Reason
}

// Code returns the stable error code.
func (e *EncodingError) Code() string {
	return apperr.ErrEncodingFailed
}

// Encode renders payload as a 256x256 PNG at error-correction level M,
// black on white, with a 1-module quiet zone. Each call builds its own
// symbol; nothing is shared between calls.
func Encode(payload string) (img Image, err error) {
	if payload == "" {
		return Image{}, &EncodingError{Reason: "payload is empty"}
	}

	// go-qrcode panics on internal inconsistencies instead of returning.
	defer func() {
		if rec := recover(); rec != nil {
			img = Image{}
			err = &EncodingError{Reason: fmt.Sprintf("%v", rec)}
		}
	}()

	code, err := qrcode.New(payload, level)
	if err != nil {
		return Image{}, &EncodingError{Reason: err.Error()}
	}
	code.DisableBorder = true

	bitmap := code.Bitmap()
	if len(bitmap) == 0 {
		return Image{}, &EncodingError{Reason: "empty symbol"}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, rasterize(bitmap)); err != nil {
		return Image{}, &EncodingError{Reason: err.Error()}
	}

	return Image{
		PNG:     buf.Bytes(),
		Modules: len(bitmap) + 2*QuietZone,
	}, nil
}

// rasterize draws the module matrix into a Size x Size paletted image.
// Modules are whole pixels; leftover space is split evenly around the
// symbol and left as background.
func rasterize(bitmap [][]bool) *image.Paletted {
	modules := len(bitmap) + 2*QuietZone
	scale := Size / modules
	if scale < 1 {
		scale = 1
	}
	offset := (Size - modules*scale) / 2

	img := image.NewPaletted(image.Rect(0, 0, Size, Size), palette)
	for y, row := range bitmap {
		for x, dark := range row {
			if !dark {
				continue
			}
			x0 := offset + (x+QuietZone)*scale
			y0 := offset + (y+QuietZone)*scale
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.SetColorIndex(x0+dx, y0+dy, 1)
				}
			}
		}
	}
	return img
}
