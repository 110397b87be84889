package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"definex/cache"
	"definex/domain"
)

func sampleDefinition() *domain.DefinitionResult {
	return &domain.DefinitionResult{
		Word:        "ubiquitous",
		Definitions: []domain.DefinitionBlock{{PartOfSpeech: "adjective", Text: "found everywhere"}},
	}
}

func TestDictionaryHandlerServesEntry(t *testing.T) {
	definer := &fakeDefiner{result: sampleDefinition()}
	h := NewDictionaryHandler(definer, cache.New(time.Hour, 100), discardLogger())

	c, rec := newEchoContext(t, http.MethodGet, "/api/dictionary/en/ubiquitous", "")
	c.SetParamNames("locale", "entry")
	c.SetParamValues("en", "ubiquitous")

	require.NoError(t, h.HandleDefine(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "MISS", rec.Header().Get("X-Cache-Status"))
	assert.NotEmpty(t, rec.Header().Get("X-Response-Time"))
	assert.Contains(t, rec.Body.String(), "found everywhere")
	assert.Equal(t, "en", definer.lastLocale)
	assert.Equal(t, "ubiquitous", definer.lastEntry)
}

func TestDictionaryHandlerCacheHit(t *testing.T) {
	definer := &fakeDefiner{result: sampleDefinition()}
	h := NewDictionaryHandler(definer, cache.New(time.Hour, 100), discardLogger())

	first, _ := newEchoContext(t, http.MethodGet, "/api/dictionary/en/ubiquitous", "")
	first.SetParamNames("locale", "entry")
	first.SetParamValues("en", "ubiquitous")
	require.NoError(t, h.HandleDefine(first))

	second, rec := newEchoContext(t, http.MethodGet, "/api/dictionary/en/ubiquitous", "")
	second.SetParamNames("locale", "entry")
	second.SetParamValues("en", "UBIQUITOUS")
	require.NoError(t, h.HandleDefine(second))

	assert.Equal(t, "HIT", rec.Header().Get("X-Cache-Status"))
	assert.Equal(t, 1, definer.calls, "cache hit must not reach the scraper")
}

func TestDictionaryHandlerNotFound(t *testing.T) {
	definer := &fakeDefiner{err: domain.ErrNotFound}
	h := NewDictionaryHandler(definer, cache.New(time.Hour, 100), discardLogger())

	c, rec := newEchoContext(t, http.MethodGet, "/api/dictionary/en/qwertyzzz", "")
	c.SetParamNames("locale", "entry")
	c.SetParamValues("en", "qwertyzzz")

	require.NoError(t, h.HandleDefine(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "word not found"}`, rec.Body.String())
}

func TestDictionaryHandlerEmptyEntry(t *testing.T) {
	h := NewDictionaryHandler(&fakeDefiner{}, cache.New(time.Hour, 100), discardLogger())

	c, _ := newEchoContext(t, http.MethodGet, "/api/dictionary/en/%20", "")
	c.SetParamNames("locale", "entry")
	c.SetParamValues("en", "%20")

	assertHTTPError(t, h.HandleDefine(c), http.StatusBadRequest)
}

func TestDictionaryHandlerUnescapesEntry(t *testing.T) {
	definer := &fakeDefiner{result: sampleDefinition()}
	h := NewDictionaryHandler(definer, cache.New(time.Hour, 100), discardLogger())

	c, _ := newEchoContext(t, http.MethodGet, "/api/dictionary/en/give%20up", "")
	c.SetParamNames("locale", "entry")
	c.SetParamValues("en", "give%20up")

	require.NoError(t, h.HandleDefine(c))
	assert.Equal(t, "give up", definer.lastEntry)
}
