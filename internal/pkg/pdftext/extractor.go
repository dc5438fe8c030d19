// Package pdftext pulls the plain text layer out of PDF documents.
// Scanned pages without a text layer yield nothing; there is no OCR.
package pdftext

import (
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Extractor reads PDF pages sequentially.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText returns the text of every page that has any, joined with single
// spaces. Pages that yield no extractable text are skipped.
func (e *Extractor) ExtractText(r io.ReaderAt, size int64) (text string, err error) {
	// the parser panics on some malformed inputs
	defer func() {
		if rec := recover(); rec != nil {
			text, err = "", fmt.Errorf("malformed pdf: %v", rec)
		}
	}()

	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("extract page %d: %w", i, err)
		}
		if strings.TrimSpace(pageText) == "" {
			continue
		}

		pages = append(pages, pageText)
	}

	return strings.Join(pages, " "), nil
}
