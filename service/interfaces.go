// ABOUTME: Source adapter interfaces consumed by the resolution service
package service

import (
	"context"

	"definex/domain"
)

// DictionarySource is the scrape-backed adapter (entry pages + verb tables).
type DictionarySource interface {
	Define(ctx context.Context, locale, entry string) (*domain.DefinitionResult, error)
}

// LLMSource is the model-backed adapter for definitions and translations.
type LLMSource interface {
	Define(ctx context.Context, text, targetLanguage, apiKey string) (*domain.DefinitionResult, error)
	TranslateSentence(ctx context.Context, sentence, targetLanguage, apiKey string) (*domain.SentenceTranslationResult, error)
}

// StructuredSource is the structured dictionary API adapter.
type StructuredSource interface {
	Define(ctx context.Context, word, apiKey string) (*domain.DefinitionResult, error)
}
