// ABOUTME: Lookup resolution policy: shape routing, source selection, fan-out merge
// ABOUTME: Classifies every outcome as success, needsConfiguration, or error
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"definex/cache"
	"definex/domain"
	apperrors "definex/utils/errors"
)

type LookupKind string

const (
	KindDefine            LookupKind = "define"
	KindTranslateSentence LookupKind = "translateSentence"
)

type OutcomeStatus string

const (
	StatusSuccess            OutcomeStatus = "success"
	StatusNeedsConfiguration OutcomeStatus = "needsConfiguration"
	StatusError              OutcomeStatus = "error"
)

// LookupOutcome is the resolution envelope returned for every lookup; errors
// become messages here, never transport failures.
type LookupOutcome struct {
	Status              OutcomeStatus `json:"status"`
	Data                any           `json:"data,omitempty"`
	Message             string        `json:"message,omitempty"`
	TTSFallbackEligible bool          `json:"ttsFallbackEligible,omitempty"`
}

// Resolver routes a lookup to the right source adapters per the user's
// settings and the selection shape.
type Resolver struct {
	cache      *cache.ResultCache
	dictionary DictionarySource
	llm        LLMSource
	structured StructuredSource
	logger     *slog.Logger
}

func NewResolver(
	resultCache *cache.ResultCache,
	dictionary DictionarySource,
	llm LLMSource,
	structured StructuredSource,
	logger *slog.Logger,
) *Resolver {
	return &Resolver{
		cache:      resultCache,
		dictionary: dictionary,
		llm:        llm,
		structured: structured,
		logger:     logger,
	}
}

// Lookup resolves one selection. The flow:
// normalize, classify, consult cache, route to adapters, reject empty
// results, project, cache the projection, classify the outcome.
func (r *Resolver) Lookup(ctx context.Context, kind LookupKind, text string, settings domain.Settings) *LookupOutcome {
	text = strings.TrimSpace(text)
	if text == "" {
		return &LookupOutcome{Status: StatusError, Message: "Nothing is selected."}
	}

	lower := strings.ToLower(text)
	shape := domain.ClassifySelection(lower)

	if kind == KindTranslateSentence || shape == domain.ShapeSentence {
		return r.translateSentence(ctx, text, settings)
	}

	key := cache.LookupKey(string(settings.PreferredSource), lower,
		string(settings.DefinitionScope), settings.ExampleCount, settings.TargetLanguage)
	if cached, ok := r.cache.Get(key); ok {
		result, _ := cached.(*domain.DefinitionResult)
		return &LookupOutcome{
			Status:              StatusSuccess,
			Data:                cached,
			TTSFallbackEligible: r.ttsFallbackEligible(shape, settings, result),
		}
	}

	result, outcome := r.resolve(ctx, lower, shape, settings)
	if outcome != nil {
		return outcome
	}

	if result.Empty() {
		return &LookupOutcome{Status: StatusError, Message: notFoundMessage(lower, shape)}
	}

	projected := Project(result, settings.DefinitionScope, settings.ExampleCount)
	r.cache.Set(key, projected)

	return &LookupOutcome{
		Status:              StatusSuccess,
		Data:                projected,
		TTSFallbackEligible: r.ttsFallbackEligible(shape, settings, projected),
	}
}

// resolve picks the source per policy and returns either a result or a
// terminal outcome.
func (r *Resolver) resolve(ctx context.Context, text string, shape domain.SelectionShape, settings domain.Settings) (*domain.DefinitionResult, *LookupOutcome) {
	// Phrase coverage override: the scrape and structured sources rarely
	// carry multi-word entries, so any phrase goes to the model when a key
	// exists, regardless of the preferred source.
	if shape == domain.ShapePhrase && settings.GeminiAPIKey != "" && settings.PreferredSource != domain.SourceGemini {
		result, err := r.llm.Define(ctx, text, settings.TargetLanguage, settings.GeminiAPIKey)
		if err != nil {
			return nil, r.errorOutcome(err, text, shape)
		}
		return result, nil
	}

	switch settings.PreferredSource {
	case domain.SourceGemini:
		if settings.GeminiAPIKey == "" {
			return nil, &LookupOutcome{
				Status:  StatusNeedsConfiguration,
				Message: "Gemini AI is selected as your preferred source, but no API key is configured. Please add your Gemini API key in the extension options to use AI-powered definitions and translations.",
			}
		}
		if shape == domain.ShapePhrase {
			result, err := r.llm.Define(ctx, text, settings.TargetLanguage, settings.GeminiAPIKey)
			if err != nil {
				return nil, r.errorOutcome(err, text, shape)
			}
			return result, nil
		}
		return r.defineWithAudioSplice(ctx, text, settings)

	case domain.SourceMerriamWebster:
		if settings.MerriamAPIKey == "" {
			return nil, &LookupOutcome{
				Status:  StatusNeedsConfiguration,
				Message: "Merriam-Webster Dictionary is selected as your preferred source, but no API key is configured. Please add your Merriam-Webster API key in the extension options or switch to a different dictionary source.",
			}
		}
		result, err := r.structured.Define(ctx, text, settings.MerriamAPIKey)
		if err != nil {
			return nil, r.errorOutcome(err, text, shape)
		}
		return result, nil

	default:
		result, err := r.dictionary.Define(ctx, "en", text)
		if err != nil {
			return nil, r.errorOutcome(err, text, shape)
		}
		return result, nil
	}
}

// defineWithAudioSplice runs the model and the scrape concurrently. The model
// result is the base; the scrape only contributes pronunciation audio and IPA
// where the base has none, and a scrape failure is tolerated silently.
func (r *Resolver) defineWithAudioSplice(ctx context.Context, text string, settings domain.Settings) (*domain.DefinitionResult, *LookupOutcome) {
	var llmResult, scrapeResult *domain.DefinitionResult

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		result, err := r.llm.Define(gctx, text, settings.TargetLanguage, settings.GeminiAPIKey)
		if err != nil {
			return err
		}
		llmResult = result
		return nil
	})
	g.Go(func() error {
		result, err := r.dictionary.Define(gctx, "en", text)
		if err != nil {
			r.logger.Warn("pronunciation splice source failed", "text", text, "error", err)
			return nil
		}
		scrapeResult = result
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, r.errorOutcome(err, text, domain.ShapeWord)
	}

	spliceAudio(llmResult, scrapeResult)
	return llmResult, nil
}

// spliceAudio copies the scrape's audio URL and IPA into base only where base
// has none. Existing base values are never overwritten.
func spliceAudio(base, scrape *domain.DefinitionResult) {
	if base == nil || scrape == nil || len(scrape.Pronunciations) == 0 {
		return
	}

	donor := scrape.Pronunciations[0]
	for _, p := range scrape.Pronunciations {
		if p.AudioURL != "" {
			donor = p
			break
		}
	}

	if len(base.Pronunciations) == 0 {
		base.Pronunciations = []domain.Pronunciation{{Lang: donor.Lang}}
	}
	if base.Pronunciations[0].AudioURL == "" {
		base.Pronunciations[0].AudioURL = donor.AudioURL
	}
	if base.Pronunciations[0].IPA == "" {
		base.Pronunciations[0].IPA = donor.IPA
	}
}

func (r *Resolver) translateSentence(ctx context.Context, sentence string, settings domain.Settings) *LookupOutcome {
	if !settings.TranslationEnabled() {
		return &LookupOutcome{
			Status:  StatusNeedsConfiguration,
			Message: "Sentence translation needs a target language. Please choose one in the extension options.",
		}
	}
	if settings.GeminiAPIKey == "" {
		return &LookupOutcome{
			Status:  StatusNeedsConfiguration,
			Message: "Sentence translation uses Gemini AI. Please add your Gemini API key in the extension options.",
		}
	}

	key := cache.SentenceKey(strings.ToLower(sentence), settings.TargetLanguage)
	if cached, ok := r.cache.Get(key); ok {
		return &LookupOutcome{Status: StatusSuccess, Data: cached}
	}

	result, err := r.llm.TranslateSentence(ctx, sentence, settings.TargetLanguage, settings.GeminiAPIKey)
	if err != nil {
		return r.errorOutcome(err, sentence, domain.ShapeSentence)
	}

	r.cache.Set(key, result)
	return &LookupOutcome{Status: StatusSuccess, Data: result}
}

// errorOutcome folds an adapter error into the envelope.
func (r *Resolver) errorOutcome(err error, text string, shape domain.SelectionShape) *LookupOutcome {
	if errors.Is(err, domain.ErrNotFound) {
		return &LookupOutcome{Status: StatusError, Message: notFoundMessage(text, shape)}
	}

	var lookupErr *apperrors.LookupError
	if errors.As(err, &lookupErr) {
		if lookupErr.Code == apperrors.CodeConfigurationMissing {
			return &LookupOutcome{Status: StatusNeedsConfiguration, Message: lookupErr.SafeMessage()}
		}
		if lookupErr.Code == apperrors.CodeNotFound {
			return &LookupOutcome{Status: StatusError, Message: notFoundMessage(text, shape)}
		}
		r.logger.Error("lookup failed",
			"text", text,
			"code", lookupErr.Code,
			"component", lookupErr.Component,
			"error", err)
		return &LookupOutcome{Status: StatusError, Message: lookupErr.SafeMessage()}
	}

	r.logger.Error("lookup failed", "text", text, "error", err)
	return &LookupOutcome{Status: StatusError, Message: "An unexpected error occurred. Please try again later."}
}

func notFoundMessage(text string, shape domain.SelectionShape) string {
	if shape == domain.ShapePhrase {
		return fmt.Sprintf("Unable to find definition for the phrase %q. This might be a specialized term or proper noun. Try selecting individual words instead.", text)
	}
	return fmt.Sprintf("Unable to find definition for %q. Please check the spelling, or the word might not be in the selected dictionary source.", text)
}

// ttsFallbackEligible marks single-word results that could use synthesized
// audio: TTS on, a speech key present, and no audio URL from any source.
func (r *Resolver) ttsFallbackEligible(shape domain.SelectionShape, settings domain.Settings, result *domain.DefinitionResult) bool {
	return shape == domain.ShapeWord &&
		settings.TTSEnabled &&
		settings.ElevenLabsAPIKey != "" &&
		result.AudioURL() == ""
}
