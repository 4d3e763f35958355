package document

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Loader reads the catalog document. PDFs go through the text extractor,
// anything else is read as UTF-8 text. The file is read on every call so
// catalog edits are picked up without a restart.
type Loader struct {
	path string
}

func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

func (l *Loader) Path() string {
	return l.path
}

func (l *Loader) Load() (string, error) {
	if l.path == "" {
		return "", fmt.Errorf("catalog path not configured")
	}
	if _, err := os.Stat(l.path); err != nil {
		return "", fmt.Errorf("catalog file %s: %w", l.path, err)
	}

	if strings.EqualFold(filepath.Ext(l.path), ".pdf") {
		return extractPDF(l.path)
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		return "", fmt.Errorf("failed to read catalog: %w", err)
	}
	return string(data), nil
}

func extractPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}
	defer f.Close()

	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("failed to read pdf text: %w", err)
	}
	return buf.String(), nil
}
