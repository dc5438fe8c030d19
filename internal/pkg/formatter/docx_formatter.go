package formatter

import (
	"bytes"
	"strings"

	"github.com/unidoc/unioffice/common/license"
	"github.com/unidoc/unioffice/document"
)

const (
	docxContentType   = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	docxFileExtension = ".docx"
)

type DOCXFormatter struct{}

func NewDOCXFormatter() *DOCXFormatter {
	return &DOCXFormatter{}
}

// Format writes one paragraph per line so quiz options stay on their own rows.
func (df *DOCXFormatter) Format(title, text string) ([]byte, error) {
	doc := document.New()
	defer doc.Close()

	titlePar := doc.AddParagraph()
	titlePar.SetStyle("Heading1")
	titlePar.AddRun().AddText(titleOrDefault(title))

	for _, line := range strings.Split(text, "\n") {
		doc.AddParagraph().AddRun().AddText(line)
	}

	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (df *DOCXFormatter) ContentType() string {
	return docxContentType
}

func (df *DOCXFormatter) FileExtension() string {
	return docxFileExtension
}

// SetLicenseKey registers a metered unioffice key; DOCX output needs one.
func SetLicenseKey(key string) error {
	if key == "" {
		return nil
	}
	return license.SetMeteredKey(key)
}
