package access

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers the public access routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/login", h.Login)
	r.Get("/languages", h.ListLanguages)
	r.Get("/model", h.ModelStatus)
}
