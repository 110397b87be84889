// ABOUTME: Narrow dependency interfaces consumed by the HTTP handlers
package handler

import (
	"context"

	"definex/domain"
	"definex/driver/gemini"
	"definex/service"
)

// DictionaryDefiner serves the raw dictionary endpoint.
type DictionaryDefiner interface {
	Define(ctx context.Context, locale, entry string) (*domain.DefinitionResult, error)
}

// LLMGenerator serves the raw model endpoints. GenerateDefinition returns the
// model payload untouched, including its own not-found sentinel.
type LLMGenerator interface {
	GenerateDefinition(ctx context.Context, text, targetLanguage, apiKey string) (*gemini.DefinitionPayload, error)
	TranslateSentence(ctx context.Context, sentence, targetLanguage, apiKey string) (*domain.SentenceTranslationResult, error)
}

// SpeechSynthesizer serves the TTS endpoints.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text, voiceID, modelID, apiKey string) ([]byte, error)
}

// LookupResolver runs the full resolution policy for one selection.
type LookupResolver interface {
	Lookup(ctx context.Context, kind service.LookupKind, text string, settings domain.Settings) *service.LookupOutcome
}

// VocabularyStore manages the saved-vocabulary list.
type VocabularyStore interface {
	List(ctx context.Context) ([]domain.SavedItem, error)
	Save(ctx context.Context, item domain.SavedItem) (domain.SavedItem, error)
	Unsave(ctx context.Context, text string, typ domain.SelectionShape, partOfSpeech string) (int, error)
}
