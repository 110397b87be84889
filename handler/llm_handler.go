// ABOUTME: Raw model endpoints: definition payload passthrough and sentence translation
package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// LLMHandler serves the model endpoints using the server-side API key. The
// definition endpoint returns the model payload verbatim, including the
// model's own not-found sentinel, so clients see exactly what the model said.
type LLMHandler struct {
	llm    LLMGenerator
	apiKey string
	logger *slog.Logger
}

func NewLLMHandler(llm LLMGenerator, apiKey string, logger *slog.Logger) *LLMHandler {
	return &LLMHandler{
		llm:    llm,
		apiKey: apiKey,
		logger: logger,
	}
}

// HandleDefine handles GET /api/llm/:entry requests. The optional lang query
// parameter requests translations alongside the definitions.
func (h *LLMHandler) HandleDefine(c echo.Context) error {
	ctx := c.Request().Context()

	entry := pathParam(c, "entry")
	if strings.TrimSpace(entry) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Entry cannot be empty")
	}

	targetLanguage := c.QueryParam("lang")

	payload, err := h.llm.GenerateDefinition(ctx, strings.TrimSpace(entry), targetLanguage, h.apiKey)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, payload)
}

// HandleTranslate handles GET /api/translate/:sentence requests. The lang
// query parameter names the target language, defaulting to Spanish.
func (h *LLMHandler) HandleTranslate(c echo.Context) error {
	ctx := c.Request().Context()

	sentence := pathParam(c, "sentence")
	if strings.TrimSpace(sentence) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Sentence cannot be empty")
	}

	targetLanguage := c.QueryParam("lang")
	if targetLanguage == "" {
		targetLanguage = "Spanish"
	}

	result, err := h.llm.TranslateSentence(ctx, strings.TrimSpace(sentence), targetLanguage, h.apiKey)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}
