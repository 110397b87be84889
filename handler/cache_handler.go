// ABOUTME: Cache introspection endpoints: stats and manual clear
package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"definex/cache"
)

// CacheHandler exposes the result cache for debugging and operations.
type CacheHandler struct {
	cache  *cache.ResultCache
	logger *slog.Logger
}

func NewCacheHandler(resultCache *cache.ResultCache, logger *slog.Logger) *CacheHandler {
	return &CacheHandler{cache: resultCache, logger: logger}
}

// HandleStats handles GET /api/cache/stats requests.
func (h *CacheHandler) HandleStats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.cache.Stats())
}

// ClearResponse is the body returned after a manual cache clear.
type ClearResponse struct {
	Message string      `json:"message"`
	Stats   cache.Stats `json:"stats"`
}

// HandleClear handles GET /api/cache/clear requests.
func (h *CacheHandler) HandleClear(c echo.Context) error {
	h.cache.Clear()
	h.logger.Info("result cache cleared manually")
	return c.JSON(http.StatusOK, ClearResponse{
		Message: "cache cleared",
		Stats:   h.cache.Stats(),
	})
}
