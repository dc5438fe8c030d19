package entity

type ResultFormat string

const (
	FormatMarkdown ResultFormat = "markdown"
	FormatDOCX     ResultFormat = "docx"
	FormatPDF      ResultFormat = "pdf"
)

func (f ResultFormat) IsValid() bool {
	switch f {
	case FormatMarkdown, FormatDOCX, FormatPDF:
		return true
	default:
		return false
	}
}
