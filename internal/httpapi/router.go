package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates a chi router with health probes and the MCP transport.
// Health endpoints are always open; the MCP mount sits behind Bearer auth
// when authEnabled is set.
func NewRouter(mcpHandler http.Handler, authEnabled bool, token string) chi.Router {
	r := chi.NewRouter()

	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/health/ready", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	})

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(authEnabled, token))
		r.Mount("/mcp", mcpHandler)
	})

	return r
}
