package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-logr/logr"
	"github.com/rs/cors"

	"postcraft-backend/internal/config"
	"postcraft-backend/internal/handlers"
	"postcraft-backend/internal/middleware"
	"postcraft-backend/internal/static"
)

func New(cfg *config.Config, postHandler *handlers.PostHandler, log logr.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(log))

	// AI route rate limiter; health and static stay unmetered.
	aiLimiter := middleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	})

	r.Route("/api", func(r chi.Router) {
		// Limiter runs ahead of the handlers, so budget is consumed even for
		// requests that fail validation.
		r.Use(aiLimiter.Middleware)
		r.Post("/rewrite", postHandler.Rewrite)
		r.Post("/punchline", postHandler.Punchline)
		r.Post("/compose", postHandler.Compose)
	})

	// Static front-end bundle
	r.Handle("/*", static.Handler(cfg.StaticDir))

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "Authorization"},
	})

	return c.Handler(r)
}
