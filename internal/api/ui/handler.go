// Package ui serves the single-page interface.
package ui

import (
	_ "embed"
	"net/http"

	"github.com/go-chi/chi/v5"
)

//go:embed index.html
var indexHTML []byte

func Index(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(indexHTML)
}

func RegisterRoutes(r chi.Router) {
	r.Get("/", Index)
}
