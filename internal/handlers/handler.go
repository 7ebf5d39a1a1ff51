package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Handler contains shared dependencies for all HTTP handlers.
type Handler struct {
	router          CommandRouter
	news            NewsReader
	applications    ApplicationStore
	db              Pinger
	logger          *slog.Logger
	defaultLanguage string
}

// NewHandler creates a new Handler. db may be nil when no health check is wanted.
func NewHandler(
	router CommandRouter,
	news NewsReader,
	applications ApplicationStore,
	db Pinger,
	logger *slog.Logger,
	defaultLanguage string,
) *Handler {
	return &Handler{
		router:          router,
		news:            news,
		applications:    applications,
		db:              db,
		logger:          logger.With("component", "http"),
		defaultLanguage: defaultLanguage,
	}
}

// JSON sends a JSON response with the given status code.
func (h *Handler) JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Warn("failed to encode response", "error", err)
	}
}

// Error sends a JSON error response with the given status code.
func (h *Handler) Error(w http.ResponseWriter, status int, message string) {
	h.JSON(w, status, map[string]string{"error": message})
}
