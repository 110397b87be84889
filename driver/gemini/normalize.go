// ABOUTME: Normalizes the model's forms[] definition payload into a DefinitionResult
package gemini

import (
	"encoding/json"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"definex/domain"
)

// DefinitionPayload is the JSON shape the definition prompt requests. The
// model labels the headword "word" or "phrase" depending on the input, both
// are accepted.
type DefinitionPayload struct {
	Word          string `json:"word,omitempty"`
	Phrase        string `json:"phrase,omitempty"`
	Translation   string `json:"translation,omitempty"`
	Pronunciation string `json:"pronunciation,omitempty"`
	Forms         []Form `json:"forms,omitempty"`
	Error         string `json:"error,omitempty"`
}

type Form struct {
	PartOfSpeech string           `json:"partOfSpeech"`
	Definitions  []FormDefinition `json:"definitions"`
}

type FormDefinition struct {
	Definition            string           `json:"definition"`
	DefinitionTranslation string           `json:"definitionTranslation,omitempty"`
	Examples              []ExamplePayload `json:"examples,omitempty"`
}

// ExamplePayload accepts both shapes the model emits for examples: a plain
// string or a {text, translation} object.
type ExamplePayload struct {
	Text        string
	Translation string
}

func (e *ExamplePayload) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		e.Text = s
		e.Translation = ""
		return nil
	}

	var obj struct {
		Text        string `json:"text"`
		Translation string `json:"translation"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	e.Text = obj.Text
	e.Translation = obj.Translation
	return nil
}

func (e ExamplePayload) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Text        string `json:"text"`
		Translation string `json:"translation,omitempty"`
	}{e.Text, e.Translation})
}

// stripPolicy drops any markup the model leaks into text fields.
var stripPolicy = bluemonday.StrictPolicy()

func clean(s string) string {
	return strings.TrimSpace(stripPolicy.Sanitize(s))
}

// NormalizeDefinition converts the payload into the canonical result. Only
// the FIRST definition of each form is kept: the model front-loads the most
// common sense and the display favors brevity. Returns nil when the payload
// carries no headword or no usable forms.
func NormalizeDefinition(payload *DefinitionPayload) *domain.DefinitionResult {
	if payload == nil || payload.Error != "" {
		return nil
	}

	word := payload.Word
	if word == "" {
		word = payload.Phrase
	}
	if word == "" {
		return nil
	}

	result := &domain.DefinitionResult{
		Word:        clean(word),
		Translation: clean(payload.Translation),
	}
	if p := clean(payload.Pronunciation); p != "" {
		result.Pronunciations = []domain.Pronunciation{{IPA: p}}
	}

	seenPos := map[string]bool{}
	for _, form := range payload.Forms {
		if len(form.Definitions) == 0 {
			continue
		}
		first := form.Definitions[0]
		if clean(first.Definition) == "" {
			continue
		}

		pos := clean(form.PartOfSpeech)
		if pos == "" {
			pos = "unknown"
		}
		if !seenPos[pos] {
			seenPos[pos] = true
			result.PartsOfSpeech = append(result.PartsOfSpeech, pos)
		}

		block := domain.DefinitionBlock{
			PartOfSpeech: pos,
			Text:         clean(first.Definition),
			Translation:  clean(first.DefinitionTranslation),
		}
		for _, ex := range first.Examples {
			if text := clean(ex.Text); text != "" {
				block.Examples = append(block.Examples, domain.Example{
					Text:        text,
					Translation: clean(ex.Translation),
				})
			}
		}
		result.Definitions = append(result.Definitions, block)
	}

	if len(result.Definitions) == 0 {
		return nil
	}
	return result
}
