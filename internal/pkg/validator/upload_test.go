package validator

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/futig/edututor/internal/config"
	"github.com/futig/edututor/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(name, contentType string, size int64) *multipart.FileHeader {
	h := textproto.MIMEHeader{}
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	return &multipart.FileHeader{Filename: name, Header: h, Size: size}
}

func TestValidatePDF(t *testing.T) {
	v := NewFileValidator(config.FileUploadConfig{MaxFileSize: 100, MaxUploadSize: 200})

	tests := []struct {
		name    string
		fh      *multipart.FileHeader
		wantErr error
	}{
		{name: "pdf", fh: fileHeader("notes.pdf", "application/pdf", 10)},
		{name: "upper case extension", fh: fileHeader("NOTES.PDF", "application/pdf", 10)},
		{name: "octet stream", fh: fileHeader("notes.pdf", "application/octet-stream", 10)},
		{name: "no content type", fh: fileHeader("notes.pdf", "", 10)},
		{name: "at limit", fh: fileHeader("notes.pdf", "application/pdf", 100)},
		{name: "missing", fh: nil, wantErr: entity.ErrMissingField},
		{name: "wrong extension", fh: fileHeader("notes.docx", "application/pdf", 10), wantErr: entity.ErrInvalidExtension},
		{name: "wrong content type", fh: fileHeader("notes.pdf", "image/png", 10), wantErr: entity.ErrInvalidFile},
		{name: "too large", fh: fileHeader("notes.pdf", "application/pdf", 101), wantErr: entity.ErrFileTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidatePDF(tt.fh)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateExplain(t *testing.T) {
	v := NewFileValidator(config.FileUploadConfig{})

	lang, err := v.ValidateExplain(&entity.ExplainRequest{Concept: "Gravity", Language: "hindi"})
	require.NoError(t, err)
	assert.Equal(t, entity.LanguageHindi, lang)

	lang, err = v.ValidateExplain(&entity.ExplainRequest{Concept: "Gravity"})
	require.NoError(t, err)
	assert.Equal(t, entity.LanguageEnglish, lang)

	_, err = v.ValidateExplain(&entity.ExplainRequest{Language: "Klingon"})
	assert.ErrorIs(t, err, entity.ErrUnknownLanguage)
}

func TestValidateExport(t *testing.T) {
	v := NewFileValidator(config.FileUploadConfig{})

	assert.NoError(t, v.ValidateExport(&entity.ExportRequest{Text: "Q1"}, entity.FormatPDF))
	assert.ErrorIs(t, v.ValidateExport(&entity.ExportRequest{Text: "Q1"}, "html"), entity.ErrInvalidFormat)
	assert.ErrorIs(t, v.ValidateExport(&entity.ExportRequest{Text: "  "}, entity.FormatDOCX), entity.ErrMissingField)
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "my_quiz.pdf", SanitizeFilename("../my quiz.pdf"))
	assert.Equal(t, "quiz.md", SanitizeFilename(`qu"iz.md`))
}
