// ABOUTME: Saved-vocabulary CRUD endpoints over the vocabulary service
package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"definex/domain"
)

// SavedHandler serves the vocabulary list endpoints.
type SavedHandler struct {
	vocabulary VocabularyStore
	logger     *slog.Logger
}

func NewSavedHandler(vocabulary VocabularyStore, logger *slog.Logger) *SavedHandler {
	return &SavedHandler{vocabulary: vocabulary, logger: logger}
}

// SavedListResponse wraps the list so the shape can grow without breaking clients.
type SavedListResponse struct {
	Items []domain.SavedItem `json:"items"`
	Count int                `json:"count"`
}

// HandleList handles GET /api/saved requests.
func (h *SavedHandler) HandleList(c echo.Context) error {
	items, err := h.vocabulary.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, SavedListResponse{Items: items, Count: len(items)})
}

// HandleSave handles POST /api/saved requests.
func (h *SavedHandler) HandleSave(c echo.Context) error {
	var item domain.SavedItem
	if err := c.Bind(&item); err != nil {
		h.logger.Error("failed to bind request", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if strings.TrimSpace(item.Text) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Text cannot be empty")
	}

	stored, err := h.vocabulary.Save(c.Request().Context(), item)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, stored)
}

// UnsaveResponse reports how many entries a delete removed.
type UnsaveResponse struct {
	Removed int `json:"removed"`
}

// HandleUnsave handles DELETE /api/saved requests. Query parameters: text
// (required), type (defaults to the classified shape), partOfSpeech (empty
// matches every part of speech).
func (h *SavedHandler) HandleUnsave(c echo.Context) error {
	text := strings.TrimSpace(c.QueryParam("text"))
	if text == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Text cannot be empty")
	}

	typ := domain.SelectionShape(c.QueryParam("type"))
	if typ == "" {
		typ = domain.ClassifySelection(text)
	}

	removed, err := h.vocabulary.Unsave(c.Request().Context(), text, typ, c.QueryParam("partOfSpeech"))
	if err != nil {
		return err
	}
	if removed == 0 {
		return c.JSON(http.StatusNotFound, UnsaveResponse{Removed: 0})
	}
	return c.JSON(http.StatusOK, UnsaveResponse{Removed: removed})
}
