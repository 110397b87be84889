// ABOUTME: Primary lookup endpoint running the full resolution policy
package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"definex/domain"
	"definex/service"
)

// LookupRequest is the POST /api/lookup body. Settings sent by the client
// override the server defaults field by field.
type LookupRequest struct {
	Kind     service.LookupKind       `json:"kind"`
	Text     string                   `json:"text"`
	Settings *domain.SettingsOverride `json:"settings"`
}

// LookupHandler resolves selections through the policy layer. Resolution
// failures come back as status 200 envelopes with an error status inside;
// only malformed requests produce HTTP errors.
type LookupHandler struct {
	resolver LookupResolver
	defaults domain.Settings
	logger   *slog.Logger
}

func NewLookupHandler(resolver LookupResolver, defaults domain.Settings, logger *slog.Logger) *LookupHandler {
	return &LookupHandler{
		resolver: resolver,
		defaults: defaults,
		logger:   logger,
	}
}

// HandleLookup handles POST /api/lookup requests.
func (h *LookupHandler) HandleLookup(c echo.Context) error {
	ctx := c.Request().Context()

	var req LookupRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind request", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	kind := req.Kind
	if kind == "" {
		kind = service.KindDefine
	}

	settings := h.defaults
	if req.Settings != nil {
		settings = settings.Merge(*req.Settings)
	}

	outcome := h.resolver.Lookup(ctx, kind, req.Text, settings)
	return c.JSON(http.StatusOK, outcome)
}
