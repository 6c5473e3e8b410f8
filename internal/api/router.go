package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/passgate/passgate/internal/api/apierr"
	"github.com/passgate/passgate/internal/api/handler"
	"github.com/passgate/passgate/internal/middleware"
	"github.com/passgate/passgate/internal/services/denylist"
	"github.com/passgate/passgate/internal/services/strength"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	StrengthService *strength.Service
	DenylistService *denylist.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	passwordHandler := handler.NewPasswordHandler(cfg.StrengthService, cfg.DenylistService)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger, func(w http.ResponseWriter, r *http.Request, _ any) {
		apierr.WriteError(w, apierr.NewInternalError())
	})

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Wrong method on a known route answers 405 rather than mux's
	// fall-through 404
	api.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apierr.WriteError(w, apierr.NewMethodNotAllowedError())
	})

	// Password evaluation routes
	api.HandleFunc("/passwords/check", passwordHandler.Check).Methods(http.MethodPost)
	api.HandleFunc("/policy", passwordHandler.Policy).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
