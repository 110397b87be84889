// ABOUTME: Structured dictionary API client for the collegiate JSON endpoint
package merriam

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"definex/config"
	"definex/domain"
	"definex/retry"
	apperrors "definex/utils/errors"
)

type Client struct {
	httpClient *http.Client
	config     config.MerriamWebsterConfig
	retrier    *retry.Retrier
	logger     *slog.Logger
}

func NewClient(cfg config.MerriamWebsterConfig, retrier *retry.Retrier, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		config:     cfg,
		retrier:    retrier,
		logger:     logger,
	}
}

// Define fetches and normalizes the collegiate entry for word. A response
// that is only spelling suggestions (an array of strings) maps to
// domain.ErrNotFound.
func (c *Client) Define(ctx context.Context, word, apiKey string) (*domain.DefinitionResult, error) {
	if apiKey == "" {
		return nil, apperrors.NewConfigurationMissing(
			"Merriam-Webster API key is not configured. Add it in the extension options or switch dictionary source.",
			"merriam", "define")
	}

	endpoint := fmt.Sprintf("%s/%s?key=%s", c.config.BaseURL, url.PathEscape(word), url.QueryEscape(apiKey))

	var body []byte
	err := c.retrier.Do(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return apperrors.NewInternal("failed to build request", "merriam", "define", err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return apperrors.FromTransportError(err, "merriam", "define")
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return apperrors.FromHTTPStatus(resp.StatusCode, "merriam", "define")
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return apperrors.NewMalformedResponse("failed to read response body", "merriam", "define", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !json.Valid(body) {
		return nil, apperrors.NewMalformedResponse("response is not valid JSON", "merriam", "define", nil)
	}

	result := Normalize(body, c.config.AudioBaseURL)
	if result == nil {
		c.logger.Debug("no interpretable entry in response", "word", word)
		return nil, domain.ErrNotFound
	}
	return result, nil
}
