// Package extract reads the text layer of statement files.
package extract

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupported is returned by ForPath for file types it cannot read.
var ErrUnsupported = errors.New("unsupported file type")

// Extractor produces the newline-joined text blob of one document.
type Extractor interface {
	Extract(path string) (string, error)
}

// ForPath returns the extractor for path's extension.
func ForPath(path string) (Extractor, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return &PDFExtractor{}, nil
	case ".txt":
		return &TextExtractor{}, nil
	default:
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), ErrUnsupported)
	}
}

// IsSupported reports whether ForPath can handle path.
func IsSupported(path string) bool {
	_, err := ForPath(path)
	return err == nil
}

// TextExtractor reads a previously extracted blob verbatim.
type TextExtractor struct{}

// Extract returns the file contents.
func (e *TextExtractor) Extract(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
