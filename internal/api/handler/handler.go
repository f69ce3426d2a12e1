// Package handler provides the HTTP handlers that sit alongside the MCP
// transport: a root info page and health checks.
package handler

import (
	"net/http"
	"time"

	"github.com/scorebridge/scorebridge/internal/api/respond"
	"github.com/scorebridge/scorebridge/internal/cache"
)

// Handler holds shared dependencies for the health endpoints.
type Handler struct {
	store *cache.Store
}

// New creates a Handler.
func New(store *cache.Store) *Handler {
	return &Handler{store: store}
}

// Root serves server info at /.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]any{
		"name":    "Scorebridge MCP",
		"version": "1.0.0",
		"status":  "running",
		"mcp":     map[string]string{"sse": "/sse", "message": "/message"},
	})
}

// HealthCheck returns basic health status.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns cache statistics.
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"cache":     h.store.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
