package entity

import (
	"errors"
	"strings"
)

// Domain errors
var (
	// Model errors
	ErrModelNotLoaded  = errors.New("model not loaded")
	ErrEmptyCompletion = errors.New("model returned no completion")

	// Translation errors
	ErrTranslatorNotConfigured = errors.New("translator is not configured")
	ErrEmptyTranslation        = errors.New("translation service returned no text")

	// File errors
	ErrInvalidFile      = errors.New("invalid file")
	ErrFileTooLarge     = errors.New("file too large")
	ErrInvalidExtension = errors.New("invalid file extension")

	// Access errors
	ErrUnauthorized = errors.New("invalid credentials")

	// Validation errors
	ErrMissingField    = errors.New("required field is missing")
	ErrInvalidFormat   = errors.New("invalid format")
	ErrUnknownLanguage = errors.New("unknown language")
)

// User-facing markers. Handlers return these in place of the expected output
// instead of failing the request.
const (
	MsgModelNotLoaded     = "❌ Model not loaded"
	PrefixGenerationError = "❌ Generation error: "
	PrefixTranslationFail = "⚠ Translation failed: "
	MsgNoTextInPDF        = "❌ No text found in PDF."
	PrefixPDFError        = "❌ PDF error: "

	MsgLoginSuccess = "✅ Login successful! Please continue below."
	MsgLoginFailed  = "❌ Invalid credentials. Try again."
)

// IsFailureOutput reports whether a handler output is one of the marker strings
// produced instead of model text.
func IsFailureOutput(out string) bool {
	return strings.HasPrefix(out, "❌") || strings.HasPrefix(out, PrefixTranslationFail)
}
