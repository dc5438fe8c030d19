package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/futig/edututor/internal/config"
	"github.com/futig/edututor/internal/entity"
	"github.com/futig/edututor/internal/pkg/logger"
	"github.com/futig/edututor/internal/pkg/response"
	"github.com/futig/edututor/internal/pkg/validator"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const pdfFormField = "pdf"

type Handler struct {
	explainer Explainer
	quiz      QuizGenerator
	cfg       config.FileUploadConfig
	validator *validator.Validator
}

func NewHandler(
	explainer Explainer,
	quiz QuizGenerator,
	cfg config.FileUploadConfig,
	validator *validator.Validator,
) *Handler {
	return &Handler{
		explainer: explainer,
		quiz:      quiz,
		cfg:       cfg,
		validator: validator,
	}
}

// Explain handles POST /api/explain
func (h *Handler) Explain(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Explain")

	var req entity.ExplainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	lang, err := h.validator.ValidateExplain(&req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "explaining concept", zap.String("concept", req.Concept), zap.String("language", string(lang)))

	response.Success(w, entity.ExplainResponse{
		ConceptExplanation: h.explainer.Explain(ctx, req.Concept, lang),
	})
}

// Quiz handles POST /api/quiz
func (h *Handler) Quiz(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Quiz")

	if err := r.ParseMultipartForm(h.cfg.MaxUploadSize); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid form data or size too large", err)
		return
	}

	fh := formFile(r, pdfFormField)
	if err := h.validator.ValidatePDF(fh); err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, entity.QuizResponse{
		Quiz: h.quizFromUpload(ctx, fh),
	})
}

// Generate handles POST /api/generate. The explanation and the quiz are
// produced one after the other; a missing or rejected PDF only affects the
// quiz field.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Generate")

	if err := r.ParseMultipartForm(h.cfg.MaxUploadSize); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid form data or size too large", err)
		return
	}

	req := entity.ExplainRequest{
		Concept:  r.FormValue("concept"),
		Language: r.FormValue("language"),
	}
	lang, err := h.validator.ValidateExplain(&req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	fh := formFile(r, pdfFormField)
	var uploadErr error
	if fh != nil {
		uploadErr = h.validator.ValidatePDF(fh)
	}

	ctxzap.Info(ctx, "generating explanation and quiz",
		zap.String("concept", req.Concept),
		zap.String("language", string(lang)),
		zap.Bool("has_pdf", fh != nil),
	)

	explanation := h.explainer.Explain(ctx, req.Concept, lang)

	var quiz string
	if uploadErr != nil {
		ctxzap.Warn(ctx, "rejected quiz upload", zap.Error(uploadErr))
		quiz = entity.PrefixPDFError + uploadErr.Error()
	} else {
		quiz = h.quizFromUpload(ctx, fh)
	}

	response.Success(w, entity.GenerateResponse{
		ConceptExplanation: explanation,
		Quiz:               quiz,
	})
}

func (h *Handler) quizFromUpload(ctx context.Context, fh *multipart.FileHeader) string {
	if fh == nil {
		return h.quiz.FromPDF(ctx, nil, 0)
	}

	f, err := fh.Open()
	if err != nil {
		return entity.PrefixPDFError + err.Error()
	}
	defer f.Close()

	return h.quiz.FromPDF(ctx, f, fh.Size)
}

func formFile(r *http.Request, field string) *multipart.FileHeader {
	if r.MultipartForm == nil {
		return nil
	}
	files := r.MultipartForm.File[field]
	if len(files) == 0 {
		return nil
	}
	return files[0]
}

func (h *Handler) respondError(ctx context.Context, w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		ctxzap.Warn(ctx, message, zap.Error(err))
	} else {
		ctxzap.Warn(ctx, message)
	}
	response.ErrorWithMessage(w, status, http.StatusText(status), message)
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrUnknownLanguage):
		h.respondError(ctx, w, http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, entity.ErrMissingField):
		h.respondError(ctx, w, http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, entity.ErrFileTooLarge):
		h.respondError(ctx, w, http.StatusRequestEntityTooLarge, err.Error(), err)
	case errors.Is(err, entity.ErrInvalidFile), errors.Is(err, entity.ErrInvalidExtension):
		h.respondError(ctx, w, http.StatusBadRequest, err.Error(), err)
	default:
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
