// ABOUTME: Prompt builders for the LLM definition and translation calls
package gemini

import (
	"fmt"
	"strings"

	"definex/domain"
)

// definitionPrompt asks the model for a strict-JSON definition of a word or
// phrase. Translation fields are requested only when a target language is set,
// so untranslated lookups keep the response small.
func definitionPrompt(text, targetLanguage string) string {
	isPhrase := domain.ClassifySelection(text) != domain.ShapeWord
	inputType := "word"
	if isPhrase {
		inputType = "phrase"
	}

	var translationInstruction, translationField, definitionTranslationField, exampleTranslationField string
	if targetLanguage != "" && targetLanguage != domain.TargetLanguageNone {
		translationInstruction = fmt.Sprintf(`
IMPORTANT: Include translations to %[1]s:
- Add a "translation" field with the %[2]s translated to %[1]s
- For each definition, add a "definitionTranslation" field with the definition translated to %[1]s
- For each example, add a "translation" field with the example translated to %[1]s
`, targetLanguage, inputType)
		translationField = fmt.Sprintf(`,
  "translation": "the %s translated to %s"`, inputType, targetLanguage)
		definitionTranslationField = fmt.Sprintf(`,
          "definitionTranslation": "the definition translated to %s"`, targetLanguage)
		exampleTranslationField = fmt.Sprintf(`, "translation": "the example translated to %s"`, targetLanguage)
	}

	posHint := "part of speech (e.g., verb, noun)"
	guidance := `- Provide all common parts of speech for the word
- For each part of speech, provide at least one common definition
- For each definition, provide exactly 5 distinct example sentences`
	if isPhrase {
		posHint = "phrase type (e.g., idiom, compound noun, phrasal verb)"
		guidance = `- Identify the phrase type (idiom, compound noun, phrasal verb, collocation, etc.)
- Provide clear definitions that explain the meaning of the phrase as a whole
- For each definition, provide exactly 5 distinct example sentences showing the phrase in context`
	}

	return fmt.Sprintf(`You are a helpful linguistic expert API. Your task is to provide a detailed definition for the %[1]s: "%[2]s".%[3]s
You MUST respond with ONLY a valid JSON object. Do not include any introductory text, explanations, or markdown formatting like `+"```json"+`.

The JSON object must follow this exact structure:
{
  "%[1]s": "the original %[1]s"%[4]s,
  "pronunciation": "/ipa_pronunciation/",
  "forms": [
    {
      "partOfSpeech": "%[5]s",
      "definitions": [
        {
          "definition": "The clear and concise definition text."%[6]s,
          "examples": [
            {"text": "Example sentence."%[7]s}
          ]
        }
      ]
    }
  ]
}

%[8]s
- If the %[1]s is nonsensical or cannot be defined, return this exact JSON object: {"error": "%[9]s not found"}`,
		inputType, text, translationInstruction, translationField, posHint,
		definitionTranslationField, exampleTranslationField, guidance,
		strings.ToUpper(inputType[:1])+inputType[1:])
}

// translationPrompt asks the model for a strict-JSON sentence translation with
// contextual notes.
func translationPrompt(sentence, targetLanguage string) string {
	return fmt.Sprintf(`You are a professional translator. Your task is to translate the following sentence to %[1]s and provide contextual information.

You MUST respond with ONLY a valid JSON object. Do not include any introductory text, explanations, or markdown formatting like `+"```json"+`.

The JSON object must follow this exact structure:
{
  "originalSentence": "the original sentence",
  "translation": "the sentence translated to %[1]s",
  "targetLanguage": "%[1]s",
  "context": "brief explanation of the meaning or context if needed",
  "keyPhrases": [
    {
      "original": "key phrase from original",
      "translation": "translation of this phrase",
      "explanation": "brief explanation if needed"
    }
  ]
}

Sentence to translate: "%[2]s"

- Provide a natural, fluent translation that preserves the original meaning
- Include context only if the sentence has cultural references, idioms, or ambiguous meanings
- Include keyPhrases for important phrases, idioms, or terms that might be difficult to understand
- If the sentence cannot be translated meaningfully, return: {"error": "Unable to translate sentence"}`,
		targetLanguage, sentence)
}
