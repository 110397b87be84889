package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"definex/domain"
	"definex/driver/gemini"
)

func TestLLMHandlerDefinePassesPayloadThrough(t *testing.T) {
	gen := &fakeGenerator{payload: &gemini.DefinitionPayload{
		Word: "serendipity",
		Forms: []gemini.Form{{
			PartOfSpeech: "noun",
			Definitions:  []gemini.FormDefinition{{Definition: "finding good things by chance"}},
		}},
	}}
	h := NewLLMHandler(gen, "server-key", discardLogger())

	c, rec := newEchoContext(t, http.MethodGet, "/api/llm/serendipity?lang=Ukrainian", "")
	c.SetParamNames("entry")
	c.SetParamValues("serendipity")

	require.NoError(t, h.HandleDefine(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "finding good things by chance")
	assert.Equal(t, "serendipity", gen.lastText)
	assert.Equal(t, "Ukrainian", gen.lastLang)
	assert.Equal(t, "server-key", gen.lastKey)
}

func TestLLMHandlerDefineKeepsModelSentinel(t *testing.T) {
	gen := &fakeGenerator{payload: &gemini.DefinitionPayload{Error: "Word not found"}}
	h := NewLLMHandler(gen, "server-key", discardLogger())

	c, rec := newEchoContext(t, http.MethodGet, "/api/llm/qwertyzzz", "")
	c.SetParamNames("entry")
	c.SetParamValues("qwertyzzz")

	require.NoError(t, h.HandleDefine(c))

	assert.Equal(t, http.StatusOK, rec.Code, "model sentinel is data, not an HTTP error")
	assert.Contains(t, rec.Body.String(), "Word not found")
}

func TestLLMHandlerDefineEmptyEntry(t *testing.T) {
	h := NewLLMHandler(&fakeGenerator{}, "k", discardLogger())

	c, _ := newEchoContext(t, http.MethodGet, "/api/llm/", "")
	c.SetParamNames("entry")
	c.SetParamValues("")

	assertHTTPError(t, h.HandleDefine(c), http.StatusBadRequest)
}

func TestLLMHandlerTranslateDefaultsToSpanish(t *testing.T) {
	gen := &fakeGenerator{translation: &domain.SentenceTranslationResult{
		Translation:    "¿cómo estás hoy?",
		TargetLanguage: "Spanish",
	}}
	h := NewLLMHandler(gen, "server-key", discardLogger())

	c, rec := newEchoContext(t, http.MethodGet, "/api/translate/how%20are%20you%20today", "")
	c.SetParamNames("sentence")
	c.SetParamValues("how%20are%20you%20today")

	require.NoError(t, h.HandleTranslate(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Spanish", gen.lastLang)
	assert.Equal(t, "how are you today", gen.lastText)
}

func TestLLMHandlerTranslateExplicitLanguage(t *testing.T) {
	gen := &fakeGenerator{translation: &domain.SentenceTranslationResult{}}
	h := NewLLMHandler(gen, "server-key", discardLogger())

	c, _ := newEchoContext(t, http.MethodGet, "/api/translate/hello%20there?lang=French", "")
	c.SetParamNames("sentence")
	c.SetParamValues("hello%20there")

	require.NoError(t, h.HandleTranslate(c))
	assert.Equal(t, "French", gen.lastLang)
}
