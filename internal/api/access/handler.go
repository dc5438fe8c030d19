package access

import (
	"encoding/json"
	"net/http"

	"github.com/futig/edututor/internal/entity"
	"github.com/futig/edututor/internal/pkg/logger"
	"github.com/futig/edututor/internal/pkg/response"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Handler struct {
	gate  Gate
	model ModelStatusProvider
}

func NewHandler(gate Gate, model ModelStatusProvider) *Handler {
	return &Handler{
		gate:  gate,
		model: model,
	}
}

// Login handles POST /api/login. A wrong pair is not an HTTP error: the
// result only tells the page whether to reveal the main section.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Login")

	var req entity.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Warn(ctx, "failed to decode login request", zap.Error(err))
		response.ErrorWithMessage(w, http.StatusBadRequest, http.StatusText(http.StatusBadRequest), "invalid request body")
		return
	}

	response.Success(w, h.gate.Login(ctx, req.Username, req.Password))
}

// ListLanguages handles GET /api/languages
func (h *Handler) ListLanguages(w http.ResponseWriter, r *http.Request) {
	langs := entity.Languages()
	dtos := make([]entity.LanguageDTO, 0, len(langs))
	for _, l := range langs {
		dtos = append(dtos, entity.LanguageDTO{
			Name:    string(l),
			Code:    l.Code(),
			Default: l.IsDefault(),
		})
	}

	response.Success(w, dtos)
}

// ModelStatus handles GET /api/model
func (h *Handler) ModelStatus(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.model.Status())
}
