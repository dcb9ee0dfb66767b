package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger is anything with a health probe (database connection, cache client).
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	version string
	probes  map[string]Pinger
}

// NewHealthHandler wires a HealthHandler.  probes maps component names to
// their checks; nil entries are skipped.
func NewHealthHandler(version string, probes map[string]Pinger) *HealthHandler {
	return &HealthHandler{version: version, probes: probes}
}

// Healthz handles GET /healthz.  Liveness only; no dependencies checked.
func (h *HealthHandler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": h.version})
}

// Readyz handles GET /readyz, probing each wired dependency.
func (h *HealthHandler) Readyz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	status := http.StatusOK
	components := make(map[string]string, len(h.probes))
	for name, probe := range h.probes {
		if probe == nil {
			continue
		}
		if err := probe.HealthCheck(ctx); err != nil {
			components[name] = err.Error()
			status = http.StatusServiceUnavailable
		} else {
			components[name] = "ok"
		}
	}
	c.JSON(status, gin.H{"status": http.StatusText(status), "components": components})
}
