// ABOUTME: Dictionary-site scrape client with browser headers and politeness limiter
// ABOUTME: Fetches entry pages and Wiktionary conjugation tables, normalizes both
package cambridge

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	"definex/cache"
	"definex/config"
	"definex/domain"
	"definex/retry"
	apperrors "definex/utils/errors"
)

// localePath maps the extension's locale slugs to site paths.
type localePath struct {
	nation   string
	language string
}

var localePaths = map[string]localePath{
	"en":    {"us", "english"},
	"uk":    {"uk", "english"},
	"en-tw": {"us", "english-chinese-traditional"},
	"en-cn": {"us", "english-chinese-simplified"},
}

const DefaultLocale = "en"

// Client scrapes dictionary entry pages and the Wiktionary verb tables.
type Client struct {
	httpClient *http.Client
	wikiClient *http.Client
	config     config.CambridgeConfig
	wiktionary config.WiktionaryConfig
	headers    map[string]string
	limiter    *rate.Limiter
	retrier    *retry.Retrier
	cache      *cache.ResultCache
	logger     *slog.Logger
}

func NewClient(
	cfg config.CambridgeConfig,
	wiktionary config.WiktionaryConfig,
	httpCfg config.HTTPConfig,
	retrier *retry.Retrier,
	resultCache *cache.ResultCache,
	logger *slog.Logger,
) *Client {
	limit := rate.Inf
	if cfg.MinInterval > 0 {
		limit = rate.Every(cfg.MinInterval)
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		wikiClient: &http.Client{Timeout: wiktionary.Timeout},
		config:     cfg,
		wiktionary: wiktionary,
		headers:    httpCfg.GetBrowserHeaders(),
		limiter:    rate.NewLimiter(limit, 1),
		retrier:    retrier,
		cache:      resultCache,
		logger:     logger,
	}
}

// Define scrapes the entry page for locale and normalizes it. Returns
// domain.ErrNotFound when the page carries no headword. Verb conjugations are
// attached best-effort and never fail the lookup.
func (c *Client) Define(ctx context.Context, locale, entry string) (*domain.DefinitionResult, error) {
	lp, ok := localePaths[locale]
	if !ok {
		lp = localePaths[DefaultLocale]
	}

	pageURL := fmt.Sprintf("%s/%s/dictionary/%s/%s",
		c.config.BaseURL, lp.nation, lp.language, url.PathEscape(entry))

	doc, err := c.fetchDocument(ctx, c.httpClient, pageURL, "fetch_entry")
	if err != nil {
		return nil, err
	}

	result := ParseEntry(doc, c.config.BaseURL)
	if result == nil {
		return nil, domain.ErrNotFound
	}

	result.VerbConjugations = c.VerbConjugations(ctx, entry)
	return result, nil
}

// VerbConjugations fetches the Wiktionary conjugation table for entry. The
// result is cached, and any failure degrades to an empty list: conjugations
// are garnish, not the lookup.
func (c *Client) VerbConjugations(ctx context.Context, entry string) []domain.VerbForm {
	key := cache.VerbsKey(entry)
	if cached, ok := c.cache.Get(key); ok {
		if verbs, ok := cached.([]domain.VerbForm); ok {
			return verbs
		}
	}

	wikiURL := fmt.Sprintf("%s/wiki/%s", c.wiktionary.BaseURL, url.PathEscape(entry))
	doc, err := c.fetchDocument(ctx, c.wikiClient, wikiURL, "fetch_verbs")
	if err != nil {
		c.logger.Warn("verb conjugation fetch failed",
			"entry", entry,
			"error", err)
		return []domain.VerbForm{}
	}

	verbs := ParseVerbTable(doc)
	c.cache.Set(key, verbs)
	return verbs
}

func (c *Client) fetchDocument(ctx context.Context, client *http.Client, pageURL, operation string) (*goquery.Document, error) {
	var doc *goquery.Document

	err := c.retrier.Do(ctx, func() error {
		// The shared limiter also spaces the secondary Wiktionary fetch
		// away from the entry-page fetch.
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
		if err != nil {
			return apperrors.NewInternal("failed to build request", "cambridge", operation, err)
		}
		for k, v := range c.headers {
			req.Header.Set(k, v)
		}

		start := time.Now()
		resp, err := client.Do(req)
		if err != nil {
			return apperrors.FromTransportError(err, "cambridge", operation)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return apperrors.FromHTTPStatus(resp.StatusCode, "cambridge", operation)
		}

		doc, err = goquery.NewDocumentFromReader(resp.Body)
		if err != nil {
			return apperrors.NewMalformedResponse("failed to parse page HTML", "cambridge", operation, err)
		}

		c.logger.Debug("page fetched",
			"url", pageURL,
			"duration_ms", time.Since(start).Milliseconds())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}
