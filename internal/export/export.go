package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	apperr "github.com/itsChris/wifiqr/internal/errors"
	"github.com/itsChris/wifiqr/internal/qr"
)

// DefaultName is used when the caller gives no file name.
const DefaultName = "wifi-qr"

const pngExt = ".png"

// FileName returns the name a QR image is saved under: the given base
// name (or DefaultName when blank) with exactly one ".png" suffix.
func FileName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimSuffix(name, pngExt)
	if name == "" {
		name = DefaultName
	}
	return name + pngExt
}

// ExportError reports that an image could not be written.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export qr image %s: %v", e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// Code returns the stable error code.
func (e *ExportError) Code() string {
	return apperr.ErrExportFailed
}

// Exporter saves QR images as PNG files in a directory.
type Exporter struct {
	dir    string
	logger *slog.Logger
}

// NewExporter creates an Exporter writing into dir. An empty dir means
// the working directory.
func NewExporter(dir string, logger *slog.Logger) *Exporter {
	if dir == "" {
		dir = "."
	}
	return &Exporter{dir: dir, logger: logger}
}

// Export writes img to <dir>/<FileName(name)> and returns the path.
// The file is written next to its destination and renamed into place,
// so a failed export never leaves a truncated PNG behind.
func (e *Exporter) Export(img qr.Image, name string) (string, error) {
	fileName := FileName(name)
	path := filepath.Join(e.dir, fileName)

	if strings.ContainsAny(fileName, `/\`) {
		return "", &ExportError{Path: path, Err: fmt.Errorf("file name %q must not contain path separators", name)}
	}
	if len(img.PNG) == 0 {
		return "", &ExportError{Path: path, Err: fmt.Errorf("image is empty")}
	}

	tmp, err := os.CreateTemp(e.dir, "."+strings.TrimSuffix(fileName, pngExt)+"-*.tmp")
	if err != nil {
		return "", e.fail(path, fmt.Errorf("create temp file: %w", err))
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(img.PNG); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", e.fail(path, fmt.Errorf("write png: %w", err))
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", e.fail(path, fmt.Errorf("close temp file: %w", err))
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return "", e.fail(path, fmt.Errorf("chmod: %w", err))
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return "", e.fail(path, fmt.Errorf("rename: %w", err))
	}

	e.logger.Debug("qr_exported",
		"path", path,
		"bytes", len(img.PNG),
		"component", "export",
	)
	return path, nil
}

func (e *Exporter) fail(path string, err error) error {
	e.logger.Error("qr_export_failed",
		"path", path,
		"error", err,
		"component", "export",
	)
	return &ExportError{Path: path, Err: err}
}
