package gemini

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"definex/domain"
)

func TestNormalizeDefinitionKeepsFirstDefinitionPerForm(t *testing.T) {
	payload := &DefinitionPayload{
		Word:          "run",
		Pronunciation: "/rʌn/",
		Forms: []Form{
			{
				PartOfSpeech: "verb",
				Definitions: []FormDefinition{
					{Definition: "to move fast on foot", Examples: []ExamplePayload{{Text: "She runs daily."}}},
					{Definition: "to operate", Examples: []ExamplePayload{{Text: "Run the engine."}}},
				},
			},
			{
				PartOfSpeech: "noun",
				Definitions: []FormDefinition{
					{Definition: "an act of running"},
				},
			},
		},
	}

	result := NormalizeDefinition(payload)
	require.NotNil(t, result)

	assert.Equal(t, "run", result.Word)
	assert.Equal(t, []string{"verb", "noun"}, result.PartsOfSpeech)
	require.Len(t, result.Definitions, 2, "one block per form")
	assert.Equal(t, "to move fast on foot", result.Definitions[0].Text)
	assert.Equal(t, "an act of running", result.Definitions[1].Text)
	require.Len(t, result.Pronunciations, 1)
	assert.Equal(t, "/rʌn/", result.Pronunciations[0].IPA)
	assert.Equal(t, "", result.Pronunciations[0].AudioURL, "model provides no audio")
}

func TestNormalizeDefinitionAcceptsPhraseField(t *testing.T) {
	payload := &DefinitionPayload{
		Phrase: "kick the bucket",
		Forms: []Form{
			{PartOfSpeech: "idiom", Definitions: []FormDefinition{{Definition: "to die"}}},
		},
	}

	result := NormalizeDefinition(payload)
	require.NotNil(t, result)
	assert.Equal(t, "kick the bucket", result.Word)
	assert.Equal(t, "idiom", result.Definitions[0].PartOfSpeech)
}

func TestNormalizeDefinitionMissingPartOfSpeechDefaultsToUnknown(t *testing.T) {
	payload := &DefinitionPayload{
		Word: "yeet",
		Forms: []Form{
			{Definitions: []FormDefinition{{Definition: "to throw with force"}}},
		},
	}

	result := NormalizeDefinition(payload)
	require.NotNil(t, result)
	assert.Equal(t, "unknown", result.Definitions[0].PartOfSpeech)
	assert.Equal(t, []string{"unknown"}, result.PartsOfSpeech)
}

func TestNormalizeDefinitionNilCases(t *testing.T) {
	assert.Nil(t, NormalizeDefinition(nil))
	assert.Nil(t, NormalizeDefinition(&DefinitionPayload{Error: "Word not found"}))
	assert.Nil(t, NormalizeDefinition(&DefinitionPayload{Forms: []Form{{PartOfSpeech: "noun"}}}), "no headword")
	assert.Nil(t, NormalizeDefinition(&DefinitionPayload{Word: "blip"}), "no forms")
	assert.Nil(t, NormalizeDefinition(&DefinitionPayload{
		Word:  "blip",
		Forms: []Form{{PartOfSpeech: "noun", Definitions: []FormDefinition{{Definition: "  "}}}},
	}), "blank definitions only")
}

func TestNormalizeDefinitionStripsMarkup(t *testing.T) {
	payload := &DefinitionPayload{
		Word: "run",
		Forms: []Form{
			{PartOfSpeech: "verb", Definitions: []FormDefinition{
				{Definition: "to <b>move</b> fast"},
			}},
		},
	}
	result := NormalizeDefinition(payload)
	require.NotNil(t, result)
	assert.Equal(t, "to move fast", result.Definitions[0].Text)
}

func TestExamplePayloadUnmarshalBothShapes(t *testing.T) {
	raw := `{
		"word": "run",
		"forms": [{
			"partOfSpeech": "verb",
			"definitions": [{
				"definition": "to move fast",
				"examples": [
					"He ran home.",
					{"text": "She runs daily.", "translation": "Вона бігає щодня."}
				]
			}]
		}]
	}`

	var payload DefinitionPayload
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))

	examples := payload.Forms[0].Definitions[0].Examples
	require.Len(t, examples, 2)
	assert.Equal(t, "He ran home.", examples[0].Text)
	assert.Equal(t, "", examples[0].Translation, "plain-string example carries no translation")
	assert.Equal(t, "She runs daily.", examples[1].Text)
	assert.Equal(t, "Вона бігає щодня.", examples[1].Translation)

	result := NormalizeDefinition(&payload)
	require.NotNil(t, result)
	assert.Equal(t, []domain.Example{
		{Text: "He ran home."},
		{Text: "She runs daily.", Translation: "Вона бігає щодня."},
	}, result.Definitions[0].Examples)
}
