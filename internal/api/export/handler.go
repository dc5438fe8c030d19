package export

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/futig/edututor/internal/entity"
	"github.com/futig/edututor/internal/pkg/formatter"
	"github.com/futig/edututor/internal/pkg/logger"
	"github.com/futig/edututor/internal/pkg/response"
	"github.com/futig/edututor/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Handler struct {
	factory   *formatter.Factory
	validator *validator.Validator
}

func NewHandler(factory *formatter.Factory, validator *validator.Validator) *Handler {
	return &Handler{
		factory:   factory,
		validator: validator,
	}
}

// RegisterRoutes registers the export route
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/export", h.Export)
}

// Export handles POST /api/export?format=markdown|docx|pdf and returns the
// text as a downloadable document.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Export")

	format := entity.ResultFormat(r.URL.Query().Get("format"))
	if format == "" {
		format = entity.FormatMarkdown
	}

	var req entity.ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Warn(ctx, "failed to decode export request", zap.Error(err))
		response.ErrorWithMessage(w, http.StatusBadRequest, http.StatusText(http.StatusBadRequest), "invalid request body")
		return
	}

	if err := h.validator.ValidateExport(&req, format); err != nil {
		ctxzap.Warn(ctx, "invalid export request", zap.Error(err))
		response.ErrorWithMessage(w, http.StatusBadRequest, http.StatusText(http.StatusBadRequest), err.Error())
		return
	}

	f, err := h.factory.Create(format)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, entity.ErrInvalidFormat) {
			status = http.StatusBadRequest
		}
		response.ErrorWithMessage(w, status, http.StatusText(status), err.Error())
		return
	}

	data, err := f.Format(req.Title, req.Text)
	if err != nil {
		ctxzap.Error(ctx, "failed to format result", zap.String("format", string(format)), zap.Error(err))
		response.ErrorWithMessage(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), "failed to format result")
		return
	}

	title := req.Title
	if title == "" {
		title = formatter.DefaultTitle
	}
	filename := validator.SanitizeFilename(title + f.FileExtension())

	ctxzap.Info(ctx, "result exported", zap.String("format", string(format)), zap.Int("bytes", len(data)))
	response.File(w, f.ContentType(), filename, data)
}
