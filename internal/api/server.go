// Package api assembles the HTTP transport: health endpoints plus the MCP
// SSE endpoints, behind the shared middleware stack.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"

	"github.com/scorebridge/scorebridge/internal/api/handler"
	"github.com/scorebridge/scorebridge/internal/cache"
	"github.com/scorebridge/scorebridge/internal/config"
)

// NewRouter creates the Chi router with middleware, health routes, and the
// MCP SSE handler mounted at its default /sse and /message endpoints.
func NewRouter(mcpHandler http.Handler, store *cache.Store, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// --- Handler dependencies ---
	h := handler.New(store)

	// --- Routes ---
	r.Get("/", h.Root)
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/cache", h.HealthCheckCache)
	})

	// MCP SSE transport
	r.Handle("/sse", mcpHandler)
	r.Handle("/message", mcpHandler)

	return r
}
