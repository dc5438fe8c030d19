package tutor

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/futig/edututor/internal/config"
	"github.com/futig/edututor/internal/entity"
	"github.com/futig/edututor/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockExplainer struct {
	mock.Mock
}

func (m *mockExplainer) Explain(ctx context.Context, concept string, lang entity.Language) string {
	return m.Called(ctx, concept, lang).String(0)
}

type mockQuiz struct {
	mock.Mock
}

func (m *mockQuiz) FromPDF(ctx context.Context, file io.ReaderAt, size int64) string {
	return m.Called(ctx, file, size).String(0)
}

var uploadCfg = config.FileUploadConfig{MaxFileSize: 1024, MaxUploadSize: 4096}

func newRouter(e Explainer, q QuizGenerator) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(e, q, uploadCfg, validator.NewFileValidator(uploadCfg)))
	return r
}

type part struct {
	field, filename, contentType, content string
}

func multipartBody(t *testing.T, fields map[string]string, files ...part) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, f := range files {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", `form-data; name="`+f.field+`"; filename="`+f.filename+`"`)
		h.Set("Content-Type", f.contentType)
		w, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = w.Write([]byte(f.content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func TestExplain(t *testing.T) {
	e := new(mockExplainer)
	e.On("Explain", mock.Anything, "Gravity", entity.LanguageHindi).Return("translated").Once()

	rec := httptest.NewRecorder()
	newRouter(e, new(mockQuiz)).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/explain",
		strings.NewReader(`{"concept":"Gravity","language":"Hindi"}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"concept_explanation":"translated"}`, rec.Body.String())
	e.AssertExpectations(t)
}

func TestExplain_UnknownLanguage(t *testing.T) {
	e := new(mockExplainer)

	rec := httptest.NewRecorder()
	newRouter(e, new(mockQuiz)).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/explain",
		strings.NewReader(`{"concept":"Gravity","language":"French"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	e.AssertNotCalled(t, "Explain", mock.Anything, mock.Anything, mock.Anything)
}

func TestQuiz(t *testing.T) {
	q := new(mockQuiz)
	q.On("FromPDF", mock.Anything, mock.Anything, int64(len("%PDF-1.4 fake"))).Return("Q1: ...").Once()

	body, contentType := multipartBody(t, nil, part{"pdf", "notes.pdf", "application/pdf", "%PDF-1.4 fake"})
	req := httptest.NewRequest(http.MethodPost, "/quiz", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	newRouter(new(mockExplainer), q).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"quiz":"Q1: ..."}`, rec.Body.String())
	q.AssertExpectations(t)
}

func TestQuiz_RejectsUploads(t *testing.T) {
	tests := []struct {
		name     string
		file     *part
		expected int
	}{
		{name: "missing file", expected: http.StatusBadRequest},
		{name: "wrong extension", file: &part{"pdf", "notes.txt", "text/plain", "hello"}, expected: http.StatusBadRequest},
		{name: "too large", file: &part{"pdf", "big.pdf", "application/pdf", strings.Repeat("x", 2048)}, expected: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var files []part
			if tt.file != nil {
				files = append(files, *tt.file)
			}
			body, contentType := multipartBody(t, map[string]string{"note": "x"}, files...)
			req := httptest.NewRequest(http.MethodPost, "/quiz", body)
			req.Header.Set("Content-Type", contentType)
			rec := httptest.NewRecorder()
			q := new(mockQuiz)

			newRouter(new(mockExplainer), q).ServeHTTP(rec, req)

			assert.Equal(t, tt.expected, rec.Code)
			q.AssertNotCalled(t, "FromPDF", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestGenerate(t *testing.T) {
	e := new(mockExplainer)
	q := new(mockQuiz)
	e.On("Explain", mock.Anything, "Cells", entity.LanguageEnglish).Return("cells are small").Once()
	q.On("FromPDF", mock.Anything, mock.Anything, mock.Anything).Return("Q1: cells?").Once()

	body, contentType := multipartBody(t, map[string]string{"concept": "Cells", "language": "English"},
		part{"pdf", "bio.pdf", "application/pdf", "%PDF"})
	req := httptest.NewRequest(http.MethodPost, "/generate", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	newRouter(e, q).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got entity.GenerateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, entity.GenerateResponse{ConceptExplanation: "cells are small", Quiz: "Q1: cells?"}, got)
	e.AssertExpectations(t)
	q.AssertExpectations(t)
}

func TestGenerate_WithoutPDF(t *testing.T) {
	e := new(mockExplainer)
	q := new(mockQuiz)
	e.On("Explain", mock.Anything, "Cells", entity.LanguageEnglish).Return("cells are small").Once()
	q.On("FromPDF", mock.Anything, nil, int64(0)).Return("❌ PDF error: invalid file: no file provided").Once()

	body, contentType := multipartBody(t, map[string]string{"concept": "Cells"})
	req := httptest.NewRequest(http.MethodPost, "/generate", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	newRouter(e, q).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got entity.GenerateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "cells are small", got.ConceptExplanation)
	assert.True(t, strings.HasPrefix(got.Quiz, "❌ PDF error:"))
	q.AssertExpectations(t)
}

func TestGenerate_InvalidUpload(t *testing.T) {
	tests := []struct {
		name     string
		file     part
		expected string
	}{
		{
			name:     "wrong extension",
			file:     part{"pdf", "notes.txt", "text/plain", "hello"},
			expected: entity.PrefixPDFError + "invalid file extension",
		},
		{
			name:     "too large",
			file:     part{"pdf", "big.pdf", "application/pdf", strings.Repeat("x", 2048)},
			expected: entity.PrefixPDFError + "file too large",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := new(mockExplainer)
			q := new(mockQuiz)
			e.On("Explain", mock.Anything, "Cells", entity.LanguageEnglish).Return("cells are small").Once()

			body, contentType := multipartBody(t, map[string]string{"concept": "Cells"}, tt.file)
			req := httptest.NewRequest(http.MethodPost, "/generate", body)
			req.Header.Set("Content-Type", contentType)
			rec := httptest.NewRecorder()

			newRouter(e, q).ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			var got entity.GenerateResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			assert.Equal(t, "cells are small", got.ConceptExplanation)
			assert.True(t, strings.HasPrefix(got.Quiz, tt.expected), got.Quiz)
			e.AssertExpectations(t)
			q.AssertNotCalled(t, "FromPDF", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}
