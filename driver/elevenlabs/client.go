// ABOUTME: TTS proxy client returning synthesized speech as MP3 bytes
package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"definex/config"
	"definex/retry"
	apperrors "definex/utils/errors"
)

type Client struct {
	httpClient *http.Client
	config     config.ElevenLabsConfig
	retrier    *retry.Retrier
	logger     *slog.Logger
}

func NewClient(cfg config.ElevenLabsConfig, retrier *retry.Retrier, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		config:     cfg,
		retrier:    retrier,
		logger:     logger,
	}
}

type synthesisRequest struct {
	Text    string `json:"text"`
	ModelID string `json:"model_id"`
}

// Synthesize converts text to speech. Empty voiceID, modelID or apiKey fall
// back to the configured defaults; a missing key is a configuration error.
func (c *Client) Synthesize(ctx context.Context, text, voiceID, modelID, apiKey string) ([]byte, error) {
	if apiKey == "" {
		apiKey = c.config.APIKey
	}
	if apiKey == "" {
		return nil, apperrors.NewConfigurationMissing(
			"ElevenLabs API key is not configured. Add it in the extension options to enable text-to-speech.",
			"elevenlabs", "synthesize")
	}
	if voiceID == "" {
		voiceID = c.config.VoiceID
	}
	if modelID == "" {
		modelID = c.config.ModelID
	}

	endpoint := fmt.Sprintf("%s/v1/text-to-speech/%s?output_format=%s",
		c.config.BaseURL, url.PathEscape(voiceID), url.QueryEscape(c.config.OutputFormat))

	body, err := json.Marshal(synthesisRequest{Text: text, ModelID: modelID})
	if err != nil {
		return nil, apperrors.NewInternal("failed to marshal request", "elevenlabs", "synthesize", err)
	}

	var audio []byte
	err = c.retrier.Do(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
		if err != nil {
			return apperrors.NewInternal("failed to build request", "elevenlabs", "synthesize", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("xi-api-key", apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return apperrors.FromTransportError(err, "elevenlabs", "synthesize")
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusUnprocessableEntity {
			return apperrors.NewValidation("invalid synthesis parameters", "elevenlabs", "synthesize")
		}
		if resp.StatusCode != http.StatusOK {
			return apperrors.FromHTTPStatus(resp.StatusCode, "elevenlabs", "synthesize")
		}

		audio, err = io.ReadAll(resp.Body)
		if err != nil {
			return apperrors.NewMalformedResponse("failed to read audio body", "elevenlabs", "synthesize", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Debug("speech synthesized", "voice_id", voiceID, "bytes", len(audio))
	return audio, nil
}
