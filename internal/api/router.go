package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"newsdesk/internal/api/middleware"
	"newsdesk/internal/handlers"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(h *handlers.Handler, logger *slog.Logger, maxBodyBytes int64) *chi.Mux {
	r := chi.NewRouter()

	// Metrics middleware (first to capture all requests)
	r.Use(middleware.Metrics)

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(chimw.Recoverer)

	// The school website calls these from the browser.
	public := cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		// Telegram only POSTs here; other methods get a JSON 405 from the handler.
		// Oversized updates are acknowledged like malformed ones.
		r.With(middleware.LimitBody(maxBodyBytes)).HandleFunc("/telegram-webhook", h.TelegramWebhook)
		r.Get("/test", h.Test)

		r.Group(func(r chi.Router) {
			r.Use(middleware.MaxBodySize(maxBodyBytes))
			r.Use(public)
			r.Get("/get-news", h.GetNews)
			r.HandleFunc("/submit-application", h.SubmitApplication)
		})
	})

	return r
}
