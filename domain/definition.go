// ABOUTME: Canonical definition result types shared by every source adapter
// ABOUTME: All normalizers converge on DefinitionResult regardless of upstream shape
package domain

import "strings"

// Source identifies a definition provider.
type Source string

const (
	SourceCambridge      Source = "cambridge"
	SourceGemini         Source = "gemini"
	SourceMerriamWebster Source = "merriam-webster"
)

// DefinitionScope controls how many definition blocks the display projection keeps.
type DefinitionScope string

const (
	ScopeRelevant DefinitionScope = "relevant"
	ScopeAll      DefinitionScope = "all"
)

// Example is a usage example attached to a definition block. Translation is
// empty when the source provides none.
type Example struct {
	Text        string `json:"text"`
	Translation string `json:"translation,omitempty"`
}

// Pronunciation carries one accent variant of the headword.
type Pronunciation struct {
	Lang     string `json:"lang,omitempty"`
	IPA      string `json:"ipa,omitempty"`
	AudioURL string `json:"audioUrl,omitempty"`
}

// DefinitionBlock is one sense of the headword.
type DefinitionBlock struct {
	PartOfSpeech string    `json:"partOfSpeech,omitempty"`
	Text         string    `json:"text"`
	Translation  string    `json:"translation,omitempty"`
	Examples     []Example `json:"examples,omitempty"`
}

// VerbForm is a single row of a verb conjugation table.
type VerbForm struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// DefinitionResult is the canonical lookup result every adapter normalizes into.
type DefinitionResult struct {
	Word             string            `json:"word"`
	Translation      string            `json:"translation,omitempty"`
	PartsOfSpeech    []string          `json:"partsOfSpeech,omitempty"`
	Pronunciations   []Pronunciation   `json:"pronunciations,omitempty"`
	Definitions      []DefinitionBlock `json:"definitions"`
	VerbConjugations []VerbForm        `json:"verbConjugations,omitempty"`
}

// AudioURL returns the first pronunciation audio URL, or "".
func (r *DefinitionResult) AudioURL() string {
	if r == nil {
		return ""
	}
	for _, p := range r.Pronunciations {
		if p.AudioURL != "" {
			return p.AudioURL
		}
	}
	return ""
}

// IPA returns the first pronunciation IPA transcription, or "".
func (r *DefinitionResult) IPA() string {
	if r == nil {
		return ""
	}
	for _, p := range r.Pronunciations {
		if p.IPA != "" {
			return p.IPA
		}
	}
	return ""
}

// Empty reports whether the result carries nothing presentable. An empty
// result is treated as "not found" by the resolver, never as success.
func (r *DefinitionResult) Empty() bool {
	return r == nil || r.Word == "" || len(r.Definitions) == 0
}

// KeyPhrase is a notable phrase extracted from a translated sentence.
type KeyPhrase struct {
	Original    string `json:"original"`
	Translation string `json:"translation"`
	Explanation string `json:"explanation,omitempty"`
}

// SentenceTranslationResult is the canonical shape for sentence lookups.
type SentenceTranslationResult struct {
	OriginalSentence string      `json:"originalSentence"`
	Translation      string      `json:"translation"`
	TargetLanguage   string      `json:"targetLanguage"`
	Context          string      `json:"context,omitempty"`
	KeyPhrases       []KeyPhrase `json:"keyPhrases,omitempty"`
}

// SelectionShape classifies selected text by word count.
type SelectionShape string

const (
	ShapeWord     SelectionShape = "word"
	ShapePhrase   SelectionShape = "phrase"
	ShapeSentence SelectionShape = "sentence"
)

// ClassifySelection buckets text by whitespace-separated word count:
// 1 word, 2-5 phrase, above 5 sentence.
func ClassifySelection(text string) SelectionShape {
	n := len(strings.Fields(text))
	switch {
	case n <= 1:
		return ShapeWord
	case n <= 5:
		return ShapePhrase
	default:
		return ShapeSentence
	}
}
