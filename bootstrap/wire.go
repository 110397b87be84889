// ABOUTME: Dependency wiring: config, cache, source clients, services, handlers
package bootstrap

import (
	"log/slog"

	"github.com/redis/go-redis/v9"

	"definex/cache"
	"definex/config"
	"definex/driver/cambridge"
	"definex/driver/elevenlabs"
	"definex/driver/gemini"
	"definex/driver/merriam"
	"definex/handler"
	"definex/repository"
	"definex/retry"
	"definex/service"
	apperrors "definex/utils/errors"
)

// Dependencies holds all application dependencies.
type Dependencies struct {
	Config *config.Config
	Cache  *cache.ResultCache
	Logger *slog.Logger

	DictionaryHandler *handler.DictionaryHandler
	LLMHandler        *handler.LLMHandler
	TTSHandler        *handler.TTSHandler
	LookupHandler     *handler.LookupHandler
	SavedHandler      *handler.SavedHandler
	CacheHandler      *handler.CacheHandler
	HealthHandler     *handler.HealthHandler
}

// BuildDependencies constructs all application dependencies.
// Returns a cleanup function that should be deferred.
func BuildDependencies(log *slog.Logger) (*Dependencies, func(), error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	resultCache := cache.New(cfg.Cache.TTL, cfg.Cache.MaxEntries)

	retrier := retry.NewRetrier(retry.RetryConfig{
		MaxAttempts: cfg.Retry.MaxAttempts,
		BaseDelay:   cfg.Retry.BaseDelay,
		MaxDelay:    cfg.Retry.MaxDelay,
	}, apperrors.IsRetryable, log)

	// Source clients
	cambridgeClient := cambridge.NewClient(cfg.Cambridge, cfg.Wiktionary, cfg.HTTP, retrier, resultCache, log)
	geminiClient := gemini.NewClient(cfg.Gemini, retrier, log)
	merriamClient := merriam.NewClient(cfg.MerriamWebster, retrier, log)
	elevenLabsClient := elevenlabs.NewClient(cfg.ElevenLabs, retrier, log)

	// Saved-vocabulary store: Redis when configured, memory otherwise
	savedRepo, cleanup, err := buildSavedItemRepository(cfg, log)
	if err != nil {
		return nil, nil, err
	}

	// Services
	resolver := service.NewResolver(resultCache, cambridgeClient, geminiClient, merriamClient, log)
	vocabulary := service.NewVocabularyService(savedRepo, log)

	deps := &Dependencies{
		Config: cfg,
		Cache:  resultCache,
		Logger: log,

		DictionaryHandler: handler.NewDictionaryHandler(cambridgeClient, resultCache, log),
		LLMHandler:        handler.NewLLMHandler(geminiClient, cfg.Gemini.APIKey, log),
		TTSHandler:        handler.NewTTSHandler(elevenLabsClient, log),
		LookupHandler:     handler.NewLookupHandler(resolver, cfg.DefaultSettings(), log),
		SavedHandler:      handler.NewSavedHandler(vocabulary, log),
		CacheHandler:      handler.NewCacheHandler(resultCache, log),
		HealthHandler:     handler.NewHealthHandler("definex"),
	}

	return deps, cleanup, nil
}

func buildSavedItemRepository(cfg *config.Config, log *slog.Logger) (repository.SavedItemRepository, func(), error) {
	if cfg.Redis.URL == "" {
		log.Info("no Redis URL configured, saved vocabulary kept in memory")
		return repository.NewMemorySavedItemRepository(), func() {}, nil
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, nil, err
	}

	client := redis.NewClient(opts)
	cleanup := func() {
		if err := client.Close(); err != nil {
			log.Error("failed to close Redis client", "error", err)
		}
	}

	log.Info("saved vocabulary persisted to Redis", "prefix", cfg.Redis.KeyPrefix)
	return repository.NewRedisSavedItemRepository(client, cfg.Redis.KeyPrefix, log), cleanup, nil
}
