package api

import (
	"net/http"
	"time"

	accessapi "github.com/futig/edututor/internal/api/access"
	"github.com/futig/edututor/internal/api/docs"
	exportapi "github.com/futig/edututor/internal/api/export"
	"github.com/futig/edututor/internal/api/middleware"
	tutorapi "github.com/futig/edututor/internal/api/tutor"
	"github.com/futig/edututor/internal/api/ui"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Handlers groups the HTTP handlers mounted by SetupRouter.
type Handlers struct {
	Access *accessapi.Handler
	Tutor  *tutorapi.Handler
	Export *exportapi.Handler
	Gate   middleware.CredentialsChecker
}

// SetupRouter creates and configures the HTTP router. requestTimeout of zero
// leaves requests unbounded.
func SetupRouter(h Handlers, requestTimeout time.Duration, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)   // Recover from panics
	r.Use(chimiddleware.RequestID)   // Add request ID
	r.Use(middleware.Logger(logger)) // Log requests
	r.Use(middleware.CORS)           // Handle CORS
	if requestTimeout > 0 {
		r.Use(chimiddleware.Timeout(requestTimeout))
	}

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Swagger documentation endpoints
	docs.RegisterRoutes(r)

	ui.RegisterRoutes(r)

	r.Route("/api", func(r chi.Router) {
		accessapi.RegisterRoutes(r, h.Access)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireLogin(h.Gate))
			tutorapi.RegisterRoutes(r, h.Tutor)
			exportapi.RegisterRoutes(r, h.Export)
		})
	})

	return r
}
