package formatter

import (
	"bytes"
	"os"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfContentType   = "application/pdf"
	pdfFileExtension = ".pdf"

	// pdfFontName is the internal name used by gofpdf for the UTF-8 font.
	pdfFontName = "TutorSans"
	// pdfFallbackFont covers Latin-1 only; Devanagari needs a TTF font.
	pdfFallbackFont = "Helvetica"
)

type PDFFormatter struct {
	fontPath string
}

func NewPDFFormatter(fontPath string) *PDFFormatter {
	return &PDFFormatter{fontPath: fontPath}
}

func (pf *PDFFormatter) Format(title, text string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	fontName := pdfFallbackFont
	if pf.fontPath != "" {
		if _, err := os.Stat(pf.fontPath); err == nil {
			pdf.AddUTF8Font(pdfFontName, "", pf.fontPath)
			pdf.AddUTF8Font(pdfFontName, "B", pf.fontPath)
			fontName = pdfFontName
		}
	}

	pdf.SetFont(fontName, "B", 20)
	pdf.Cell(0, 10, titleOrDefault(title))
	pdf.Ln(12)

	pdf.SetFont(fontName, "", 12)
	_, lineHeight := pdf.GetFontSize()
	pdf.MultiCell(0, lineHeight*1.5, text, "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (pf *PDFFormatter) ContentType() string {
	return pdfContentType
}

func (pf *PDFFormatter) FileExtension() string {
	return pdfFileExtension
}
