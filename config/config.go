// ABOUTME: Environment-variable configuration with defaults and validation
// ABOUTME: One struct per concern: server, HTTP, retry, cache, upstreams, defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"definex/domain"
)

type Config struct {
	Server         ServerConfig
	HTTP           HTTPConfig
	Retry          RetryConfig
	Cache          CacheConfig
	Redis          RedisConfig
	Cambridge      CambridgeConfig
	Wiktionary     WiktionaryConfig
	Gemini         GeminiConfig
	MerriamWebster MerriamWebsterConfig
	ElevenLabs     ElevenLabsConfig
	Defaults       LookupDefaults
}

type ServerConfig struct {
	Port            int
	ShutdownTimeout time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
}

type HTTPConfig struct {
	Timeout              time.Duration
	MaxIdleConns         int
	MaxIdleConnsPerHost  int
	IdleConnTimeout      time.Duration
	UserAgent            string
	EnableBrowserHeaders bool
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

type CacheConfig struct {
	TTL        time.Duration
	MaxEntries int
}

type RedisConfig struct {
	URL       string
	KeyPrefix string
}

type CambridgeConfig struct {
	BaseURL     string
	Timeout     time.Duration
	MinInterval time.Duration
}

type WiktionaryConfig struct {
	BaseURL string
	Timeout time.Duration
}

type GeminiConfig struct {
	BaseURL string
	Model   string
	APIKey  string
	Timeout time.Duration
}

type MerriamWebsterConfig struct {
	BaseURL      string
	AudioBaseURL string
	APIKey       string
	Timeout      time.Duration
}

type ElevenLabsConfig struct {
	BaseURL      string
	APIKey       string
	VoiceID      string
	ModelID      string
	OutputFormat string
	Timeout      time.Duration
}

// LookupDefaults seeds the per-request settings when the client sends none.
type LookupDefaults struct {
	PreferredSource string
	TargetLanguage  string
	DefinitionScope string
	ExampleCount    int
	TTSEnabled      bool
}

func LoadConfig() (*Config, error) {
	config := &Config{}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func loadFromEnv(config *Config) error {
	// Server config
	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		} else {
			return fmt.Errorf("invalid SERVER_PORT: %s", port)
		}
	} else {
		config.Server.Port = 8090
	}

	if timeout := os.Getenv("SERVER_SHUTDOWN_TIMEOUT"); timeout != "" {
		if t, err := time.ParseDuration(timeout); err == nil {
			config.Server.ShutdownTimeout = t
		} else {
			return fmt.Errorf("invalid SERVER_SHUTDOWN_TIMEOUT: %s", timeout)
		}
	} else {
		config.Server.ShutdownTimeout = 30 * time.Second
	}

	if timeout := os.Getenv("SERVER_READ_TIMEOUT"); timeout != "" {
		if t, err := time.ParseDuration(timeout); err == nil {
			config.Server.ReadTimeout = t
		} else {
			return fmt.Errorf("invalid SERVER_READ_TIMEOUT: %s", timeout)
		}
	} else {
		config.Server.ReadTimeout = 10 * time.Second
	}

	if timeout := os.Getenv("SERVER_WRITE_TIMEOUT"); timeout != "" {
		if t, err := time.ParseDuration(timeout); err == nil {
			config.Server.WriteTimeout = t
		} else {
			return fmt.Errorf("invalid SERVER_WRITE_TIMEOUT: %s", timeout)
		}
	} else {
		config.Server.WriteTimeout = 60 * time.Second // LLM lookups can be slow
	}

	// HTTP config
	if timeout := os.Getenv("HTTP_TIMEOUT"); timeout != "" {
		if t, err := time.ParseDuration(timeout); err == nil {
			config.HTTP.Timeout = t
		} else {
			return fmt.Errorf("invalid HTTP_TIMEOUT: %s", timeout)
		}
	} else {
		config.HTTP.Timeout = 10 * time.Second
	}

	if conns := os.Getenv("HTTP_MAX_IDLE_CONNS"); conns != "" {
		if c, err := strconv.Atoi(conns); err == nil {
			config.HTTP.MaxIdleConns = c
		} else {
			return fmt.Errorf("invalid HTTP_MAX_IDLE_CONNS: %s", conns)
		}
	} else {
		config.HTTP.MaxIdleConns = 10
	}

	if conns := os.Getenv("HTTP_MAX_IDLE_CONNS_PER_HOST"); conns != "" {
		if c, err := strconv.Atoi(conns); err == nil {
			config.HTTP.MaxIdleConnsPerHost = c
		} else {
			return fmt.Errorf("invalid HTTP_MAX_IDLE_CONNS_PER_HOST: %s", conns)
		}
	} else {
		config.HTTP.MaxIdleConnsPerHost = 2
	}

	if timeout := os.Getenv("HTTP_IDLE_CONN_TIMEOUT"); timeout != "" {
		if t, err := time.ParseDuration(timeout); err == nil {
			config.HTTP.IdleConnTimeout = t
		} else {
			return fmt.Errorf("invalid HTTP_IDLE_CONN_TIMEOUT: %s", timeout)
		}
	} else {
		config.HTTP.IdleConnTimeout = 90 * time.Second
	}

	if agent := os.Getenv("HTTP_USER_AGENT"); agent != "" {
		config.HTTP.UserAgent = agent
	} else {
		config.HTTP.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	}

	if enable := os.Getenv("HTTP_ENABLE_BROWSER_HEADERS"); enable != "" {
		if b, err := strconv.ParseBool(enable); err == nil {
			config.HTTP.EnableBrowserHeaders = b
		} else {
			return fmt.Errorf("invalid HTTP_ENABLE_BROWSER_HEADERS: %s", enable)
		}
	} else {
		config.HTTP.EnableBrowserHeaders = true
	}

	// Retry config
	if attempts := os.Getenv("RETRY_MAX_ATTEMPTS"); attempts != "" {
		if a, err := strconv.Atoi(attempts); err == nil {
			config.Retry.MaxAttempts = a
		} else {
			return fmt.Errorf("invalid RETRY_MAX_ATTEMPTS: %s", attempts)
		}
	} else {
		config.Retry.MaxAttempts = 3
	}

	if delay := os.Getenv("RETRY_BASE_DELAY"); delay != "" {
		if d, err := time.ParseDuration(delay); err == nil {
			config.Retry.BaseDelay = d
		} else {
			return fmt.Errorf("invalid RETRY_BASE_DELAY: %s", delay)
		}
	} else {
		config.Retry.BaseDelay = 1 * time.Second
	}

	if delay := os.Getenv("RETRY_MAX_DELAY"); delay != "" {
		if d, err := time.ParseDuration(delay); err == nil {
			config.Retry.MaxDelay = d
		} else {
			return fmt.Errorf("invalid RETRY_MAX_DELAY: %s", delay)
		}
	} else {
		config.Retry.MaxDelay = 5 * time.Second
	}

	// Cache config
	if ttl := os.Getenv("CACHE_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil {
			config.Cache.TTL = d
		} else {
			return fmt.Errorf("invalid CACHE_TTL: %s", ttl)
		}
	} else {
		config.Cache.TTL = time.Hour
	}

	if entries := os.Getenv("CACHE_MAX_ENTRIES"); entries != "" {
		if n, err := strconv.Atoi(entries); err == nil {
			config.Cache.MaxEntries = n
		} else {
			return fmt.Errorf("invalid CACHE_MAX_ENTRIES: %s", entries)
		}
	} else {
		config.Cache.MaxEntries = 1000
	}

	// Redis config (empty URL disables persistence and falls back to memory)
	config.Redis.URL = os.Getenv("REDIS_URL")
	if prefix := os.Getenv("REDIS_KEY_PREFIX"); prefix != "" {
		config.Redis.KeyPrefix = prefix
	} else {
		config.Redis.KeyPrefix = "definex"
	}

	// Cambridge config
	if base := os.Getenv("CAMBRIDGE_BASE_URL"); base != "" {
		config.Cambridge.BaseURL = strings.TrimRight(base, "/")
	} else {
		config.Cambridge.BaseURL = "https://dictionary.cambridge.org"
	}

	if timeout := os.Getenv("CAMBRIDGE_TIMEOUT"); timeout != "" {
		if t, err := time.ParseDuration(timeout); err == nil {
			config.Cambridge.Timeout = t
		} else {
			return fmt.Errorf("invalid CAMBRIDGE_TIMEOUT: %s", timeout)
		}
	} else {
		config.Cambridge.Timeout = 10 * time.Second
	}

	if interval := os.Getenv("CAMBRIDGE_MIN_INTERVAL"); interval != "" {
		if d, err := time.ParseDuration(interval); err == nil {
			config.Cambridge.MinInterval = d
		} else {
			return fmt.Errorf("invalid CAMBRIDGE_MIN_INTERVAL: %s", interval)
		}
	} else {
		config.Cambridge.MinInterval = 500 * time.Millisecond
	}

	// Wiktionary config
	if base := os.Getenv("WIKTIONARY_BASE_URL"); base != "" {
		config.Wiktionary.BaseURL = strings.TrimRight(base, "/")
	} else {
		config.Wiktionary.BaseURL = "https://simple.wiktionary.org"
	}

	if timeout := os.Getenv("WIKTIONARY_TIMEOUT"); timeout != "" {
		if t, err := time.ParseDuration(timeout); err == nil {
			config.Wiktionary.Timeout = t
		} else {
			return fmt.Errorf("invalid WIKTIONARY_TIMEOUT: %s", timeout)
		}
	} else {
		config.Wiktionary.Timeout = 8 * time.Second
	}

	// Gemini config
	if base := os.Getenv("GEMINI_BASE_URL"); base != "" {
		config.Gemini.BaseURL = strings.TrimRight(base, "/")
	} else {
		config.Gemini.BaseURL = "https://generativelanguage.googleapis.com"
	}

	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		config.Gemini.Model = model
	} else {
		config.Gemini.Model = "gemini-2.0-flash-lite"
	}

	config.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")

	if timeout := os.Getenv("GEMINI_TIMEOUT"); timeout != "" {
		if t, err := time.ParseDuration(timeout); err == nil {
			config.Gemini.Timeout = t
		} else {
			return fmt.Errorf("invalid GEMINI_TIMEOUT: %s", timeout)
		}
	} else {
		config.Gemini.Timeout = 20 * time.Second
	}

	// Merriam-Webster config
	if base := os.Getenv("MERRIAM_BASE_URL"); base != "" {
		config.MerriamWebster.BaseURL = strings.TrimRight(base, "/")
	} else {
		config.MerriamWebster.BaseURL = "https://www.dictionaryapi.com/api/v3/references/collegiate/json"
	}

	if base := os.Getenv("MERRIAM_AUDIO_BASE_URL"); base != "" {
		config.MerriamWebster.AudioBaseURL = strings.TrimRight(base, "/")
	} else {
		config.MerriamWebster.AudioBaseURL = "https://media.merriam-webster.com/audio/prons/en/us/mp3"
	}

	config.MerriamWebster.APIKey = os.Getenv("MERRIAM_API_KEY")

	if timeout := os.Getenv("MERRIAM_TIMEOUT"); timeout != "" {
		if t, err := time.ParseDuration(timeout); err == nil {
			config.MerriamWebster.Timeout = t
		} else {
			return fmt.Errorf("invalid MERRIAM_TIMEOUT: %s", timeout)
		}
	} else {
		config.MerriamWebster.Timeout = 8 * time.Second
	}

	// ElevenLabs config
	if base := os.Getenv("ELEVENLABS_BASE_URL"); base != "" {
		config.ElevenLabs.BaseURL = strings.TrimRight(base, "/")
	} else {
		config.ElevenLabs.BaseURL = "https://api.elevenlabs.io"
	}

	config.ElevenLabs.APIKey = os.Getenv("ELEVENLABS_API_KEY")

	if voice := os.Getenv("ELEVENLABS_VOICE_ID"); voice != "" {
		config.ElevenLabs.VoiceID = voice
	} else {
		config.ElevenLabs.VoiceID = "JBFqnCBsd6RMkjVDRZzb"
	}

	if model := os.Getenv("ELEVENLABS_MODEL_ID"); model != "" {
		config.ElevenLabs.ModelID = model
	} else {
		config.ElevenLabs.ModelID = "eleven_multilingual_v2"
	}

	if format := os.Getenv("ELEVENLABS_OUTPUT_FORMAT"); format != "" {
		config.ElevenLabs.OutputFormat = format
	} else {
		config.ElevenLabs.OutputFormat = "mp3_44100_128"
	}

	if timeout := os.Getenv("ELEVENLABS_TIMEOUT"); timeout != "" {
		if t, err := time.ParseDuration(timeout); err == nil {
			config.ElevenLabs.Timeout = t
		} else {
			return fmt.Errorf("invalid ELEVENLABS_TIMEOUT: %s", timeout)
		}
	} else {
		config.ElevenLabs.Timeout = 30 * time.Second
	}

	// Lookup defaults
	if source := os.Getenv("DEFAULT_PREFERRED_SOURCE"); source != "" {
		config.Defaults.PreferredSource = source
	} else {
		config.Defaults.PreferredSource = string(domain.SourceCambridge)
	}

	if lang := os.Getenv("DEFAULT_TARGET_LANGUAGE"); lang != "" {
		config.Defaults.TargetLanguage = lang
	} else {
		config.Defaults.TargetLanguage = domain.TargetLanguageNone
	}

	if scope := os.Getenv("DEFAULT_DEFINITION_SCOPE"); scope != "" {
		config.Defaults.DefinitionScope = scope
	} else {
		config.Defaults.DefinitionScope = string(domain.ScopeRelevant)
	}

	if count := os.Getenv("DEFAULT_EXAMPLE_COUNT"); count != "" {
		if n, err := strconv.Atoi(count); err == nil {
			config.Defaults.ExampleCount = n
		} else {
			return fmt.Errorf("invalid DEFAULT_EXAMPLE_COUNT: %s", count)
		}
	} else {
		config.Defaults.ExampleCount = 1
	}

	if enabled := os.Getenv("DEFAULT_TTS_ENABLED"); enabled != "" {
		if b, err := strconv.ParseBool(enabled); err == nil {
			config.Defaults.TTSEnabled = b
		} else {
			return fmt.Errorf("invalid DEFAULT_TTS_ENABLED: %s", enabled)
		}
	} else {
		config.Defaults.TTSEnabled = false
	}

	return nil
}

func validateConfig(config *Config) error {
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	if config.HTTP.Timeout <= 0 {
		return fmt.Errorf("HTTP timeout must be positive: %v", config.HTTP.Timeout)
	}

	if config.Retry.MaxAttempts <= 0 {
		return fmt.Errorf("retry max attempts must be positive: %d", config.Retry.MaxAttempts)
	}

	if config.Retry.BaseDelay <= 0 {
		return fmt.Errorf("retry base delay must be positive: %v", config.Retry.BaseDelay)
	}

	if config.Cache.TTL <= 0 {
		return fmt.Errorf("cache TTL must be positive: %v", config.Cache.TTL)
	}

	if config.Cache.MaxEntries <= 0 {
		return fmt.Errorf("cache max entries must be positive: %d", config.Cache.MaxEntries)
	}

	if config.Cambridge.BaseURL == "" {
		return fmt.Errorf("cambridge base URL cannot be empty")
	}

	if config.Cambridge.MinInterval < 0 {
		return fmt.Errorf("cambridge min interval must be non-negative: %v", config.Cambridge.MinInterval)
	}

	if config.Defaults.ExampleCount < 0 {
		return fmt.Errorf("default example count must be non-negative: %d", config.Defaults.ExampleCount)
	}

	switch config.Defaults.DefinitionScope {
	case string(domain.ScopeRelevant), string(domain.ScopeAll):
	default:
		return fmt.Errorf("invalid default definition scope: %s", config.Defaults.DefinitionScope)
	}

	switch config.Defaults.PreferredSource {
	case string(domain.SourceCambridge), string(domain.SourceGemini), string(domain.SourceMerriamWebster):
	default:
		return fmt.Errorf("invalid default preferred source: %s", config.Defaults.PreferredSource)
	}

	return nil
}

// GetBrowserHeaders returns the header set for dictionary-site requests.
// Dictionary pages serve a reduced markup to clients without browser headers.
func (config *HTTPConfig) GetBrowserHeaders() map[string]string {
	if !config.EnableBrowserHeaders {
		return map[string]string{
			"User-Agent": config.UserAgent,
		}
	}

	headers := map[string]string{
		"User-Agent":                config.UserAgent,
		"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8",
		"Accept-Language":           "en-US,en;q=0.9",
		"DNT":                       "1",
		"Connection":                "keep-alive",
		"Upgrade-Insecure-Requests": "1",
	}

	if strings.Contains(config.UserAgent, "Chrome") {
		headers["sec-ch-ua"] = `"Not_A Brand";v="8", "Chromium";v="120", "Google Chrome";v="120"`
		headers["sec-ch-ua-mobile"] = "?0"
		headers["sec-ch-ua-platform"] = `"Windows"`
	}

	return headers
}

// DefaultSettings converts the configured defaults into a Settings value,
// carrying the server-side API keys.
func (c *Config) DefaultSettings() domain.Settings {
	return domain.Settings{
		PreferredSource:  domain.Source(c.Defaults.PreferredSource),
		TargetLanguage:   c.Defaults.TargetLanguage,
		DefinitionScope:  domain.DefinitionScope(c.Defaults.DefinitionScope),
		ExampleCount:     c.Defaults.ExampleCount,
		TTSEnabled:       c.Defaults.TTSEnabled,
		GeminiAPIKey:     c.Gemini.APIKey,
		MerriamAPIKey:    c.MerriamWebster.APIKey,
		ElevenLabsAPIKey: c.ElevenLabs.APIKey,
	}
}
