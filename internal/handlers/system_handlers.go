// Package handlers implements the HTTP endpoints of the API.
//
// The system_handlers.go file covers the unauthenticated operational
// endpoints: health and version.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gsvlabs/storefront-backend/internal/utils"
)

// HealthChecker verifies that a dependency is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// SystemHandler serves the health and version endpoints.
type SystemHandler struct {
	db      HealthChecker
	version string
	started time.Time
}

// NewSystemHandler creates a system handler.
func NewSystemHandler(db HealthChecker, version string) *SystemHandler {
	return &SystemHandler{db: db, version: version, started: time.Now()}
}

// Health handles GET /health. It answers 200 when the database is
// reachable and 503 otherwise.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.HealthCheck(r.Context()); err != nil {
		utils.Error(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Database is unreachable", nil)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"uptime": time.Since(h.started).Round(time.Second).String(),
	})
}

// Version handles GET /version.
func (h *SystemHandler) Version(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]string{"version": h.version})
}
