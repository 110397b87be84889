// ABOUTME: Raw dictionary endpoint: scraped entry pages by locale and headword
package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"definex/cache"
	"definex/domain"
)

// DictionaryHandler serves GET /api/dictionary/:locale/:entry with the
// normalized scrape result, bypassing the resolution policy.
type DictionaryHandler struct {
	dictionary DictionaryDefiner
	cache      *cache.ResultCache
	logger     *slog.Logger
}

func NewDictionaryHandler(dictionary DictionaryDefiner, resultCache *cache.ResultCache, logger *slog.Logger) *DictionaryHandler {
	return &DictionaryHandler{
		dictionary: dictionary,
		cache:      resultCache,
		logger:     logger,
	}
}

// HandleDefine handles GET /api/dictionary/:locale/:entry requests.
func (h *DictionaryHandler) HandleDefine(c echo.Context) error {
	ctx := c.Request().Context()
	start := time.Now()

	locale := c.Param("locale")
	entry := pathParam(c, "entry")
	if strings.TrimSpace(entry) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Entry cannot be empty")
	}
	entry = strings.ToLower(strings.TrimSpace(entry))

	key := cache.DictionaryKey(locale, entry)
	if cached, ok := h.cache.Get(key); ok {
		c.Response().Header().Set("X-Cache-Status", "HIT")
		c.Response().Header().Set("X-Response-Time", time.Since(start).String())
		return c.JSON(http.StatusOK, cached)
	}

	result, err := h.dictionary.Define(ctx, locale, entry)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.logger.Info("dictionary entry not found", "locale", locale, "entry", entry)
			return c.JSON(http.StatusNotFound, map[string]string{"error": "word not found"})
		}
		return err
	}

	h.cache.Set(key, result)

	c.Response().Header().Set("X-Cache-Status", "MISS")
	c.Response().Header().Set("X-Response-Time", time.Since(start).String())
	return c.JSON(http.StatusOK, result)
}

// pathParam returns the named path parameter with percent-encoding undone, so
// multi-word entries like "give%20up" arrive as written.
func pathParam(c echo.Context, name string) string {
	raw := c.Param(name)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}
