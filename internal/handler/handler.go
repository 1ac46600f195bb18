package handler

import (
	"net/http"
	"time"

	"github.com/workhubpro/backend/internal/repository"
)

// Handler holds shared dependencies for cross-cutting endpoints.
type Handler struct {
	db          repository.DB
	frontendURL string
	startedAt   time.Time
	environment string
}

// New creates the shared Handler.
func New(db repository.DB, frontendURL, environment string) *Handler {
	return &Handler{
		db:          db,
		frontendURL: frontendURL,
		startedAt:   time.Now(),
		environment: environment,
	}
}

// CORS allows the configured frontend origin and short-circuits preflight.
func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.frontendURL)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
