// ABOUTME: Per-lookup settings resolved from request body plus server defaults
package domain

// TargetLanguageNone disables translation features.
const TargetLanguageNone = "none"

// Settings is the effective configuration for one lookup. Handlers merge the
// request-supplied settings over the server defaults before calling the
// resolver, so the resolver never consults ambient state.
type Settings struct {
	PreferredSource  Source          `json:"preferredSource,omitempty"`
	TargetLanguage   string          `json:"targetLanguage,omitempty"`
	DefinitionScope  DefinitionScope `json:"definitionScope,omitempty"`
	ExampleCount     int             `json:"exampleCount,omitempty"`
	TTSEnabled       bool            `json:"ttsEnabled,omitempty"`
	GeminiAPIKey     string          `json:"geminiApiKey,omitempty"`
	MerriamAPIKey    string          `json:"merriamApiKey,omitempty"`
	ElevenLabsAPIKey string          `json:"elevenLabsApiKey,omitempty"`
}

// SettingsOverride is the request-supplied portion of Settings. Numeric and
// boolean fields are pointers so an explicit zero or false is distinguishable
// from "not sent" and survives the merge.
type SettingsOverride struct {
	PreferredSource  Source          `json:"preferredSource,omitempty"`
	TargetLanguage   string          `json:"targetLanguage,omitempty"`
	DefinitionScope  DefinitionScope `json:"definitionScope,omitempty"`
	ExampleCount     *int            `json:"exampleCount,omitempty"`
	TTSEnabled       *bool           `json:"ttsEnabled,omitempty"`
	GeminiAPIKey     string          `json:"geminiApiKey,omitempty"`
	MerriamAPIKey    string          `json:"merriamApiKey,omitempty"`
	ElevenLabsAPIKey string          `json:"elevenLabsApiKey,omitempty"`
}

// Merge overlays the supplied fields of override onto s and returns the
// result. A negative example count is clamped to zero rather than rejected.
func (s Settings) Merge(override SettingsOverride) Settings {
	if override.PreferredSource != "" {
		s.PreferredSource = override.PreferredSource
	}
	if override.TargetLanguage != "" {
		s.TargetLanguage = override.TargetLanguage
	}
	if override.DefinitionScope != "" {
		s.DefinitionScope = override.DefinitionScope
	}
	if override.ExampleCount != nil {
		s.ExampleCount = *override.ExampleCount
	}
	if s.ExampleCount < 0 {
		s.ExampleCount = 0
	}
	if override.TTSEnabled != nil {
		s.TTSEnabled = *override.TTSEnabled
	}
	if override.GeminiAPIKey != "" {
		s.GeminiAPIKey = override.GeminiAPIKey
	}
	if override.MerriamAPIKey != "" {
		s.MerriamAPIKey = override.MerriamAPIKey
	}
	if override.ElevenLabsAPIKey != "" {
		s.ElevenLabsAPIKey = override.ElevenLabsAPIKey
	}
	return s
}

// TranslationEnabled reports whether a target language is configured.
func (s Settings) TranslationEnabled() bool {
	return s.TargetLanguage != "" && s.TargetLanguage != TargetLanguageNone
}
