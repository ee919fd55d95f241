// Package extract pulls plain text out of resume and job-description
// source files. It sits in front of the match engine: extraction
// failures surface here, while the engine itself treats any resulting
// empty string as valid, low-information input.
package extract

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

// Extractor reads supported document files into plain UTF-8 text.
type Extractor struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{logger: logger}
}

// Text returns the extracted text of the file. PDF files go through the
// pdf reader; anything else is read as plain text. A PDF with no
// extractable text (a scanned image, for instance) yields an empty
// string without an error, which downstream scoring handles as a
// zero-signal document.
func (e *Extractor) Text(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return e.pdfText(path)
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading %q: %w", path, err)
		}
		return string(data), nil
	}
}

func (e *Extractor) pdfText(path string) (string, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening pdf %q: %w", path, err)
	}
	defer file.Close()

	plain, err := reader.GetPlainText()
	if err != nil {
		// Still a readable PDF, just nothing to extract from it.
		e.logger.Warn("no extractable text in pdf",
			zap.String("path", path),
			zap.Error(err),
		)
		return "", nil
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("reading pdf text %q: %w", path, err)
	}

	e.logger.Debug("extracted pdf text",
		zap.String("path", path),
		zap.Int("bytes", buf.Len()),
	)

	return buf.String(), nil
}
