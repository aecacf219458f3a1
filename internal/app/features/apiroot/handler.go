// internal/app/features/apiroot/handler.go
package apiroot

import (
	"net/http"
	"strings"

	"github.com/dalemusser/octofit/internal/app/system/respond"
	"go.uber.org/zap"
)

// Resources are the collections listed by the API root, in display order.
var Resources = []string{"users", "teams", "activities", "leaderboard", "workouts"}

// Handler serves the API root discovery document.
type Handler struct {
	BaseURL string
	Log     *zap.Logger
}

// NewHandler builds the handler. An empty baseURL makes links follow the
// host of each request.
func NewHandler(baseURL string, logger *zap.Logger) *Handler {
	return &Handler{BaseURL: strings.TrimRight(baseURL, "/"), Log: logger}
}

// Serve handles GET /api/ with {"users": "<base>/api/users/", ...}.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	base := h.BaseURL
	if base == "" {
		base = requestOrigin(r)
	}
	links := make(map[string]string, len(Resources))
	for _, name := range Resources {
		links[name] = base + "/api/" + name + "/"
	}
	respond.JSON(w, http.StatusOK, links)
}

// requestOrigin rebuilds scheme://host for r, honoring X-Forwarded-Proto
// from a proxy.
func requestOrigin(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if p := r.Header.Get("X-Forwarded-Proto"); p == "http" || p == "https" {
		scheme = p
	}
	return scheme + "://" + r.Host
}
