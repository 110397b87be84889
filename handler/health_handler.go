// ABOUTME: Liveness endpoint for deployment probes
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// HealthHandler answers liveness probes. It carries no dependencies: a
// healthy process answers even when every upstream is down, because lookups
// degrade per source rather than failing whole.
type HealthHandler struct {
	serviceName string
}

func NewHealthHandler(serviceName string) *HealthHandler {
	return &HealthHandler{serviceName: serviceName}
}

// HandleHealth handles GET /api/v1/health requests.
func (h *HealthHandler) HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "healthy", Service: h.serviceName})
}
