// ABOUTME: LLM definition and translation client over the generateContent REST API
// ABOUTME: Recovers strict-JSON payloads the model occasionally wraps in code fences
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"definex/config"
	"definex/domain"
	"definex/retry"
	apperrors "definex/utils/errors"
)

type Client struct {
	httpClient *http.Client
	config     config.GeminiConfig
	retrier    *retry.Retrier
	logger     *slog.Logger
}

func NewClient(cfg config.GeminiConfig, retrier *retry.Retrier, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		config:     cfg,
		retrier:    retrier,
		logger:     logger,
	}
}

// generateContent wire types.

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateDefinition asks the model for a definition payload. A payload with
// a non-empty Error field is the model's own "not found" sentinel and is
// returned as data, not as an error, so callers can pass it through raw.
func (c *Client) GenerateDefinition(ctx context.Context, text, targetLanguage, apiKey string) (*DefinitionPayload, error) {
	if apiKey == "" {
		return nil, apperrors.NewConfigurationMissing(
			"Gemini API key is not configured. Add it in the extension options.",
			"gemini", "generate_definition")
	}

	raw, err := c.generate(ctx, definitionPrompt(text, targetLanguage), apiKey, "generate_definition")
	if err != nil {
		return nil, err
	}

	var payload DefinitionPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, apperrors.NewMalformedResponse(
			"model response is not the requested JSON shape", "gemini", "generate_definition", err)
	}
	return &payload, nil
}

// Define is GenerateDefinition plus normalization into the canonical result.
func (c *Client) Define(ctx context.Context, text, targetLanguage, apiKey string) (*domain.DefinitionResult, error) {
	payload, err := c.GenerateDefinition(ctx, text, targetLanguage, apiKey)
	if err != nil {
		return nil, err
	}
	if payload.Error != "" {
		return nil, domain.ErrNotFound
	}
	return NormalizeDefinition(payload), nil
}

// TranslateSentence asks the model for a sentence translation with context.
func (c *Client) TranslateSentence(ctx context.Context, sentence, targetLanguage, apiKey string) (*domain.SentenceTranslationResult, error) {
	if apiKey == "" {
		return nil, apperrors.NewConfigurationMissing(
			"Gemini API key is not configured. Add it in the extension options.",
			"gemini", "translate_sentence")
	}

	raw, err := c.generate(ctx, translationPrompt(sentence, targetLanguage), apiKey, "translate_sentence")
	if err != nil {
		return nil, err
	}

	var payload struct {
		domain.SentenceTranslationResult
		Error string `json:"error"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, apperrors.NewMalformedResponse(
			"model response is not the requested JSON shape", "gemini", "translate_sentence", err)
	}
	if payload.Error != "" {
		return nil, apperrors.NewNotFound(payload.Error, "gemini", "translate_sentence")
	}

	result := payload.SentenceTranslationResult
	if result.OriginalSentence == "" {
		result.OriginalSentence = sentence
	}
	if result.TargetLanguage == "" {
		result.TargetLanguage = targetLanguage
	}
	return &result, nil
}

// generate runs one prompt and returns the model's text output with any code
// fence stripped.
func (c *Client) generate(ctx context.Context, prompt, apiKey, operation string) (string, error) {
	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		c.config.BaseURL, c.config.Model, apiKey)

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", apperrors.NewInternal("failed to marshal request", "gemini", operation, err)
	}

	var text string
	err = c.retrier.Do(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
		if err != nil {
			return apperrors.NewInternal("failed to build request", "gemini", operation, err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return apperrors.FromTransportError(err, "gemini", operation)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return apperrors.FromHTTPStatus(resp.StatusCode, "gemini", operation)
		}

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return apperrors.NewMalformedResponse("failed to read response body", "gemini", operation, err)
		}

		var parsed generateResponse
		if err := json.Unmarshal(respBody, &parsed); err != nil {
			return apperrors.NewMalformedResponse("failed to parse API response", "gemini", operation, err)
		}
		if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
			return apperrors.NewMalformedResponse("API response carries no candidates", "gemini", operation, nil)
		}

		text = stripCodeFence(parsed.Candidates[0].Content.Parts[0].Text)
		return nil
	})
	if err != nil {
		return "", err
	}

	c.logger.Debug("model response received", "operation", operation, "length", len(text))
	return text, nil
}

var codeFencePattern = regexp.MustCompile("(?s)```(?:json)?(.*?)```")

// stripCodeFence unwraps a payload the model wrapped in ```json fences despite
// instructions not to.
func stripCodeFence(text string) string {
	if m := codeFencePattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(text)
}
