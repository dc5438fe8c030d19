package tutor

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers the gated tutor routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/explain", h.Explain)
	r.Post("/quiz", h.Quiz)
	r.Post("/generate", h.Generate)
}
