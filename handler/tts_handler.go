// ABOUTME: Text-to-speech endpoints returning synthesized MP3 audio
package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"definex/domain"
)

const ttsWordOnlyMessage = "Text-to-speech is only available for phrases (2-5 words) and sentences (6+ words), not individual words."

// TTSHandler serves synthesized speech for phrases and sentences. Single
// words are rejected: they get dictionary audio through the lookup flow
// instead, and synthesis is reserved for text no dictionary records.
type TTSHandler struct {
	speech SpeechSynthesizer
	logger *slog.Logger
}

func NewTTSHandler(speech SpeechSynthesizer, logger *slog.Logger) *TTSHandler {
	return &TTSHandler{speech: speech, logger: logger}
}

// TTSRequest is the POST body for synthesis with overrides.
type TTSRequest struct {
	Text    string `json:"text"`
	VoiceID string `json:"voiceId"`
	ModelID string `json:"modelId"`
}

// HandleSynthesizeGet handles GET /api/tts/:text requests with default voice
// and model.
func (h *TTSHandler) HandleSynthesizeGet(c echo.Context) error {
	return h.synthesize(c, TTSRequest{Text: pathParam(c, "text")})
}

// HandleSynthesizePost handles POST /api/tts requests.
func (h *TTSHandler) HandleSynthesizePost(c echo.Context) error {
	var req TTSRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind request", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	return h.synthesize(c, req)
}

func (h *TTSHandler) synthesize(c echo.Context, req TTSRequest) error {
	ctx := c.Request().Context()

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Text cannot be empty")
	}
	if domain.ClassifySelection(text) == domain.ShapeWord {
		return echo.NewHTTPError(http.StatusBadRequest, ttsWordOnlyMessage)
	}

	audio, err := h.speech.Synthesize(ctx, text, req.VoiceID, req.ModelID, "")
	if err != nil {
		return err
	}

	h.logger.Info("speech synthesized", "length", len(text), "bytes", len(audio))
	return c.Blob(http.StatusOK, "audio/mpeg", audio)
}
