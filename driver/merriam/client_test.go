package merriam

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"definex/config"
	"definex/domain"
	"definex/retry"
	apperrors "definex/utils/errors"
)

func testMerriamClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	retrier := retry.NewRetrier(retry.RetryConfig{
		MaxAttempts: 2,
		BaseDelay:   time.Millisecond,
		MaxDelay:    5 * time.Millisecond,
	}, apperrors.IsRetryable, logger)

	return NewClient(config.MerriamWebsterConfig{
		BaseURL:      baseURL,
		AudioBaseURL: audioBase,
		Timeout:      time.Second,
	}, retrier, logger)
}

func TestClientDefine(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/run", r.URL.Path)
		assert.Equal(t, "mw-key", r.URL.Query().Get("key"))
		w.Write([]byte(`[{"meta":{"id":"run"},"fl":"verb","shortdef":["to go faster than a walk"]}]`))
	}))
	defer srv.Close()

	c := testMerriamClient(t, srv.URL)
	result, err := c.Define(context.Background(), "run", "mw-key")
	require.NoError(t, err)
	assert.Equal(t, "run", result.Word)
}

func TestClientDefineSuggestionsAreNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`["run", "rune", "rung"]`))
	}))
	defer srv.Close()

	c := testMerriamClient(t, srv.URL)
	_, err := c.Define(context.Background(), "runn", "mw-key")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClientDefineWithoutKeyNeedsConfiguration(t *testing.T) {
	c := testMerriamClient(t, "http://127.0.0.1:0")
	_, err := c.Define(context.Background(), "run", "")

	var lookupErr *apperrors.LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, apperrors.CodeConfigurationMissing, lookupErr.Code)
}

func TestClientDefineAuthError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := testMerriamClient(t, srv.URL)
	_, err := c.Define(context.Background(), "run", "bad-key")

	var lookupErr *apperrors.LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, apperrors.CodeUpstreamAuth, lookupErr.Code)
}
