package validator

import (
	"fmt"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/futig/edututor/internal/config"
	"github.com/futig/edututor/internal/entity"
)

var AllowedExtensions = map[string]bool{
	".pdf": true,
}

var AllowedContentTypes = map[string]bool{
	"application/pdf":          true,
	"application/octet-stream": true,
}

// Validator validates file uploads and request payloads
type Validator struct {
	cfg config.FileUploadConfig
}

func NewFileValidator(cfg config.FileUploadConfig) *Validator {
	return &Validator{cfg: cfg}
}

// ValidatePDF checks the extension, declared content type and size of an
// uploaded PDF. A missing Content-Type header is accepted.
func (v *Validator) ValidatePDF(fh *multipart.FileHeader) error {
	if fh == nil {
		return fmt.Errorf("%w: pdf", entity.ErrMissingField)
	}

	return v.ValidateDocument(fh.Filename, fh.Header.Get("Content-Type"), fh.Size)
}

// ValidateDocument is ValidatePDF for files that did not arrive as multipart
// parts (Telegram documents, CLI arguments).
func (v *Validator) ValidateDocument(filename, contentType string, size int64) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !AllowedExtensions[ext] {
		return fmt.Errorf("%w: %q (allowed: pdf)", entity.ErrInvalidExtension, ext)
	}

	if contentType != "" {
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || !AllowedContentTypes[mediaType] {
			return fmt.Errorf("%w: content type %q", entity.ErrInvalidFile, contentType)
		}
	}

	if size > v.cfg.MaxFileSize {
		return fmt.Errorf("%w: file '%s' is %d bytes (max %d)", entity.ErrFileTooLarge, filename, size, v.cfg.MaxFileSize)
	}

	return nil
}

func (v *Validator) ValidateExplain(req *entity.ExplainRequest) (entity.Language, error) {
	lang, err := entity.ParseLanguage(req.Language)
	if err != nil {
		return "", fmt.Errorf("%w: language", err)
	}

	return lang, nil
}

func (v *Validator) ValidateExport(req *entity.ExportRequest, format entity.ResultFormat) error {
	if !format.IsValid() {
		return fmt.Errorf("%w: format %q (allowed: markdown, docx, pdf)", entity.ErrInvalidFormat, format)
	}

	if strings.TrimSpace(req.Text) == "" {
		return fmt.Errorf("%w: text", entity.ErrMissingField)
	}

	return nil
}

// SanitizeFilename sanitizes a filename for Content-Disposition headers
func SanitizeFilename(filename string) string {
	filename = filepath.Base(filename)
	replacer := strings.NewReplacer(
		" ", "_",
		"\"", "",
		"/", "",
		"\\", "",
		"(", "",
		")", "",
		"[", "",
		"]", "",
	)
	return replacer.Replace(filename)
}
