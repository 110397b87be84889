package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"definex/domain"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.Equal(t, 1000, cfg.Cache.MaxEntries)
	assert.Equal(t, 3, cfg.Retry.MaxAttempts)
	assert.Equal(t, time.Second, cfg.Retry.BaseDelay)
	assert.Equal(t, "https://dictionary.cambridge.org", cfg.Cambridge.BaseURL)
	assert.Equal(t, "https://simple.wiktionary.org", cfg.Wiktionary.BaseURL)
	assert.Equal(t, "gemini-2.0-flash-lite", cfg.Gemini.Model)
	assert.Equal(t, "JBFqnCBsd6RMkjVDRZzb", cfg.ElevenLabs.VoiceID)
	assert.Equal(t, "eleven_multilingual_v2", cfg.ElevenLabs.ModelID)
	assert.Equal(t, "mp3_44100_128", cfg.ElevenLabs.OutputFormat)
	assert.Equal(t, string(domain.SourceCambridge), cfg.Defaults.PreferredSource)
	assert.Equal(t, domain.TargetLanguageNone, cfg.Defaults.TargetLanguage)
	assert.Equal(t, 1, cfg.Defaults.ExampleCount)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("CACHE_TTL", "30m")
	t.Setenv("GEMINI_API_KEY", "server-key")
	t.Setenv("DEFAULT_PREFERRED_SOURCE", "gemini")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 30*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "server-key", cfg.Gemini.APIKey)

	settings := cfg.DefaultSettings()
	assert.Equal(t, domain.SourceGemini, settings.PreferredSource)
	assert.Equal(t, "server-key", settings.GeminiAPIKey)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tests := map[string]struct {
		key   string
		value string
	}{
		"bad port":         {"SERVER_PORT", "not-a-port"},
		"port out of range": {"SERVER_PORT", "70000"},
		"bad cache ttl":    {"CACHE_TTL", "soon"},
		"bad scope":        {"DEFAULT_DEFINITION_SCOPE", "some"},
		"bad source":       {"DEFAULT_PREFERRED_SOURCE", "urban-dictionary"},
		"negative examples": {"DEFAULT_EXAMPLE_COUNT", "-1"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestGetBrowserHeaders(t *testing.T) {
	cfg := &HTTPConfig{UserAgent: "Mozilla/5.0 Chrome/120.0", EnableBrowserHeaders: true}
	headers := cfg.GetBrowserHeaders()
	assert.Equal(t, "Mozilla/5.0 Chrome/120.0", headers["User-Agent"])
	assert.Contains(t, headers, "Accept-Language")
	assert.Contains(t, headers, "sec-ch-ua")

	plain := &HTTPConfig{UserAgent: "bot/1.0"}
	assert.Equal(t, map[string]string{"User-Agent": "bot/1.0"}, plain.GetBrowserHeaders())
}
