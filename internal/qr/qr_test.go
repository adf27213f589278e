package qr

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"sync"
	"testing"

	apperr "github.com/itsChris/wifiqr/internal/errors"
)

const samplePayload = "WIFI:T:WPA;S:MyWiFi;P:password123;H:false;;"

func decode(t *testing.T, img Image) image.Image {
	t.Helper()
	decoded, err := png.Decode(bytes.NewReader(img.PNG))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	return decoded
}

func isDark(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0 && g == 0 && b == 0
}

func isLight(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0xffff && g == 0xffff && b == 0xffff
}

func TestEncode_FixedSizePNG(t *testing.T) {
	img, err := Encode(samplePayload)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(img.PNG) == 0 {
		t.Fatal("expected non-empty PNG")
	}

	decoded := decode(t, img)
	bounds := decoded.Bounds()
	if bounds.Dx() != Size || bounds.Dy() != Size {
		t.Errorf("expected %dx%d image, got %dx%d", Size, Size, bounds.Dx(), bounds.Dy())
	}
}

func TestEncode_TwoColourPalette(t *testing.T) {
	img, err := Encode(samplePayload)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	decoded := decode(t, img)
	bounds := decoded.Bounds()
	var dark, light int
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := decoded.At(x, y)
			switch {
			case isDark(c):
				dark++
			case isLight(c):
				light++
			default:
				t.Fatalf("pixel (%d,%d) is neither black nor white: %v", x, y, c)
			}
		}
	}
	if dark == 0 || light == 0 {
		t.Errorf("expected both colours, got dark=%d light=%d", dark, light)
	}
}

func TestEncode_OneModuleQuietZone(t *testing.T) {
	img, err := Encode(samplePayload)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded := decode(t, img)

	scale := Size / img.Modules
	offset := (Size - img.Modules*scale) / 2

	// The quiet zone is one module of background.
	if c := decoded.At(offset, offset); !isLight(c) {
		t.Errorf("quiet zone pixel at (%d,%d) should be white", offset, offset)
	}
	// The finder pattern's top-left corner starts right after it.
	corner := offset + QuietZone*scale
	if c := decoded.At(corner, corner); !isDark(c) {
		t.Errorf("finder corner at (%d,%d) should be black", corner, corner)
	}
	if c := decoded.At(corner-1, corner-1); !isLight(c) {
		t.Errorf("pixel before finder corner should be white")
	}
}

func TestEncode_Deterministic(t *testing.T) {
	a, err := Encode(samplePayload)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	b, err := Encode(samplePayload)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(a.PNG, b.PNG) {
		t.Error("expected identical PNG bytes for identical payloads")
	}
}

func TestEncode_ConcurrentCallsIndependent(t *testing.T) {
	want, err := Encode(samplePayload)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			payload := samplePayload
			if i%2 == 1 {
				payload = "WIFI:T:nopass;S:Other;P:;H:true;;"
			}
			got, err := Encode(payload)
			if err != nil {
				errs <- err
				return
			}
			if i%2 == 0 && !bytes.Equal(got.PNG, want.PNG) {
				errs <- errors.New("concurrent encode produced different bytes")
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestEncode_EmptyPayload(t *testing.T) {
	_, err := Encode("")
	var encErr *EncodingError
	if !errors.As(err, &encErr) {
		t.Fatalf("expected *EncodingError, got %T (%v)", err, err)
	}
}

func TestEncode_PayloadTooLarge(t *testing.T) {
	img, err := Encode(strings.Repeat("a", 3000))
	if err == nil {
		t.Fatal("expected error for payload beyond symbol capacity")
	}
	var encErr *EncodingError
	if !errors.As(err, &encErr) {
		t.Fatalf("expected *EncodingError, got %T", err)
	}
	if encErr.Code() != apperr.ErrEncodingFailed {
		t.Errorf("expected code %q, got %q", apperr.ErrEncodingFailed, encErr.Code())
	}
	if errors.Unwrap(err) != nil {
		t.Error("EncodingError should not expose the library error")
	}
	if len(img.PNG) != 0 {
		t.Error("expected no image on failure")
	}
}

func TestImage_DataURL(t *testing.T) {
	img := Image{PNG: []byte{0x89, 'P', 'N', 'G'}}
	if got, want := img.Base64(), "iVBORw=="; got != want {
		t.Errorf("Base64() = %q, want %q", got, want)
	}
	if got, want := img.DataURL(), "data:image/png;base64,iVBORw=="; got != want {
		t.Errorf("DataURL() = %q, want %q", got, want)
	}
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	if err := Fprint(&buf, samplePayload); err != nil {
		t.Fatalf("Fprint: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "█") {
		t.Error("expected block characters in terminal output")
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("expected trailing newline")
	}
}

func TestFprint_TooLarge(t *testing.T) {
	var buf bytes.Buffer
	err := Fprint(&buf, strings.Repeat("a", 3000))
	var encErr *EncodingError
	if !errors.As(err, &encErr) {
		t.Fatalf("expected *EncodingError, got %T (%v)", err, err)
	}
	if buf.Len() != 0 {
		t.Error("expected nothing written on failure")
	}
}
