package formatter

import (
	"fmt"

	"github.com/futig/edututor/internal/entity"
)

// DefaultTitle heads exported documents when the caller gives none.
const DefaultTitle = "EduTutor"

type Formatter interface {
	Format(title, plainText string) ([]byte, error)
	ContentType() string
	FileExtension() string
}

type Factory struct {
	fontPath string
}

// NewFactory creates formatters. fontPath optionally points to a UTF-8 TTF
// font for PDF output; without it PDF falls back to a core font.
func NewFactory(fontPath string) *Factory {
	return &Factory{fontPath: fontPath}
}

func (f *Factory) Create(format entity.ResultFormat) (Formatter, error) {
	switch format {
	case entity.FormatMarkdown:
		return NewMarkdownFormatter(), nil
	case entity.FormatDOCX:
		return NewDOCXFormatter(), nil
	case entity.FormatPDF:
		return NewPDFFormatter(f.fontPath), nil
	default:
		return nil, fmt.Errorf("%w: unsupported format %s", entity.ErrInvalidFormat, format)
	}
}

func titleOrDefault(title string) string {
	if title == "" {
		return DefaultTitle
	}
	return title
}
