// ABOUTME: Shared fakes and helpers for the handler package tests
package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"definex/domain"
	"definex/driver/gemini"
	"definex/service"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newEchoContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

type fakeDefiner struct {
	result     *domain.DefinitionResult
	err        error
	calls      int
	lastLocale string
	lastEntry  string
}

func (f *fakeDefiner) Define(ctx context.Context, locale, entry string) (*domain.DefinitionResult, error) {
	f.calls++
	f.lastLocale = locale
	f.lastEntry = entry
	return f.result, f.err
}

type fakeGenerator struct {
	payload     *gemini.DefinitionPayload
	payloadErr  error
	translation *domain.SentenceTranslationResult
	err         error
	lastText    string
	lastLang    string
	lastKey     string
}

func (f *fakeGenerator) GenerateDefinition(ctx context.Context, text, targetLanguage, apiKey string) (*gemini.DefinitionPayload, error) {
	f.lastText = text
	f.lastLang = targetLanguage
	f.lastKey = apiKey
	return f.payload, f.payloadErr
}

func (f *fakeGenerator) TranslateSentence(ctx context.Context, sentence, targetLanguage, apiKey string) (*domain.SentenceTranslationResult, error) {
	f.lastText = sentence
	f.lastLang = targetLanguage
	f.lastKey = apiKey
	return f.translation, f.err
}

type fakeSynthesizer struct {
	audio     []byte
	err       error
	calls     int
	lastText  string
	lastVoice string
	lastModel string
}

func (f *fakeSynthesizer) Synthesize(ctx context.Context, text, voiceID, modelID, apiKey string) ([]byte, error) {
	f.calls++
	f.lastText = text
	f.lastVoice = voiceID
	f.lastModel = modelID
	return f.audio, f.err
}

type fakeResolver struct {
	outcome      *service.LookupOutcome
	lastKind     service.LookupKind
	lastText     string
	lastSettings domain.Settings
}

func (f *fakeResolver) Lookup(ctx context.Context, kind service.LookupKind, text string, settings domain.Settings) *service.LookupOutcome {
	f.lastKind = kind
	f.lastText = text
	f.lastSettings = settings
	return f.outcome
}

type fakeVocabulary struct {
	items       []domain.SavedItem
	listErr     error
	saved       domain.SavedItem
	saveErr     error
	removed     int
	unsaveErr   error
	lastText    string
	lastType    domain.SelectionShape
	lastPOS     string
	lastSaved   domain.SavedItem
	unsaveCalls int
}

func (f *fakeVocabulary) List(ctx context.Context) ([]domain.SavedItem, error) {
	return f.items, f.listErr
}

func (f *fakeVocabulary) Save(ctx context.Context, item domain.SavedItem) (domain.SavedItem, error) {
	f.lastSaved = item
	return f.saved, f.saveErr
}

func (f *fakeVocabulary) Unsave(ctx context.Context, text string, typ domain.SelectionShape, partOfSpeech string) (int, error) {
	f.unsaveCalls++
	f.lastText = text
	f.lastType = typ
	f.lastPOS = partOfSpeech
	return f.removed, f.unsaveErr
}

func assertHTTPError(t *testing.T, err error, wantStatus int) {
	t.Helper()
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T: %v", err, err)
	}
	if httpErr.Code != wantStatus {
		t.Fatalf("expected status %d, got %d", wantStatus, httpErr.Code)
	}
}
