// Package wiki fetches article data from the MediaWiki Action API.
package wiki

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"wikiscraper/internal/config"
	"wikiscraper/internal/logger"
	"wikiscraper/internal/models"
)

// Fetch error classifications. A missing page and a transport problem
// must stay distinguishable all the way into the batch report.
var (
	ErrPageNotFound         = errors.New("page not found")
	ErrUnexpectedStatusCode = errors.New("unexpected status code")
	ErrMalformedResponse    = errors.New("malformed API response")
)

const defaultUserAgent = "WikipediaScraper/2.0"

// Client talks to one Wikipedia language edition per call. Requests
// are retried with exponential backoff on transient status codes.
type Client struct {
	httpClient *http.Client
	retry      *config.RetryPolicy
	userAgent  string
	log        *logger.Logger

	// BaseURL overrides the per-language endpoint; used by tests and
	// API mirrors.
	BaseURL string
}

// NewClient creates a client with the default retry policy.
func NewClient(log *logger.Logger) *Client {
	return NewClientWithConfig(&config.RetryPolicy{
		MaxAttempts:       3,
		InitialDelayMs:    500,
		MaxDelayMs:        30000,
		BackoffMultiplier: 2.0,
		TimeoutSec:        30,
	}, defaultUserAgent, log)
}

// NewClientWithConfig creates a client with a custom retry policy and
// User-Agent.
func NewClientWithConfig(retry *config.RetryPolicy, userAgent string, log *logger.Logger) *Client {
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: retry.GetTimeout(),
		},
		retry:     retry,
		userAgent: userAgent,
		log:       log,
	}
}

// Fetch retrieves one page and returns its raw shape. A page the
// source does not know yields ErrPageNotFound; transport problems
// surface as distinct errors.
func (c *Client) Fetch(title, language string) (*models.RawArticle, error) {
	endpoint := c.endpoint(language)

	page, err := c.queryPage(endpoint, title)
	if err != nil {
		return nil, err
	}

	summary, err := c.querySummary(endpoint, title)
	if err != nil {
		return nil, err
	}

	references, err := c.fetchReferences(endpoint, title)
	if err != nil {
		// References live in the rendered HTML; the article is still
		// usable without them.
		c.log.Warn("failed to fetch references", "title", title, "error", err)

		references = nil
	}

	return &models.RawArticle{
		Title:      page.Title,
		PageID:     page.PageID,
		URL:        page.FullURL,
		Summary:    summary,
		FullText:   page.Extract,
		Categories: categoryTitles(page.Categories),
		Sections:   parseSections(page.Extract),
		Links:      linkTitles(page.Links),
		References: references,
	}, nil
}

func (c *Client) endpoint(language string) string {
	if c.BaseURL != "" {
		return c.BaseURL
	}

	return fmt.Sprintf("https://%s.wikipedia.org/w/api.php", language)
}

// queryPage fetches metadata, the full plain-text extract, categories
// and links in one request. The API returns links and categories in a
// deterministic namespace/title order, which the client preserves.
func (c *Client) queryPage(endpoint, title string) (*pageData, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("redirects", "1")
	params.Set("titles", title)
	params.Set("prop", "info|extracts|categories|links")
	params.Set("inprop", "url")
	params.Set("explaintext", "1")
	params.Set("cllimit", "500")
	params.Set("pllimit", "500")

	body, err := c.get(endpoint, params)
	if err != nil {
		return nil, err
	}

	var resp queryResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	page := firstPage(resp)
	if page == nil {
		return nil, fmt.Errorf("%w: no page entry for %q", ErrMalformedResponse, title)
	}

	if page.Missing != nil {
		return nil, fmt.Errorf("%w: %q", ErrPageNotFound, title)
	}

	return page, nil
}

// querySummary fetches the lead-section extract.
func (c *Client) querySummary(endpoint, title string) (string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("redirects", "1")
	params.Set("titles", title)
	params.Set("prop", "extracts")
	params.Set("exintro", "1")
	params.Set("explaintext", "1")

	body, err := c.get(endpoint, params)
	if err != nil {
		return "", err
	}

	var resp queryResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	page := firstPage(resp)
	if page == nil {
		return "", nil
	}

	return page.Extract, nil
}

// fetchReferences renders the page and pulls the footnote list out of
// the HTML.
func (c *Client) fetchReferences(endpoint, title string) ([]string, error) {
	params := url.Values{}
	params.Set("action", "parse")
	params.Set("format", "json")
	params.Set("redirects", "1")
	params.Set("page", title)
	params.Set("prop", "text")

	body, err := c.get(endpoint, params)
	if err != nil {
		return nil, err
	}

	var resp parseResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if resp.Error != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedResponse, resp.Error.Info)
	}

	return extractReferences(resp.Parse.Text["*"])
}

// get performs one GET with the configured retry policy.
func (c *Client) get(endpoint string, params url.Values) ([]byte, error) {
	reqURL := endpoint + "?" + params.Encode()

	var lastErr error

	for attempt := 1; attempt <= c.retry.MaxAttempts; attempt++ {
		if attempt > 1 {
			if delay := c.retry.GetRetryDelay(attempt); delay > 0 {
				time.Sleep(delay)
			}
		}

		req, err := http.NewRequest(http.MethodGet, reqURL, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("User-Agent", c.userAgent)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("request failed (attempt %d/%d): %w", attempt, c.retry.MaxAttempts, err)

			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		_ = resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("%w: %d", ErrUnexpectedStatusCode, resp.StatusCode)

			if !isRetryableStatus(resp.StatusCode) {
				return nil, lastErr
			}

			continue
		}

		if readErr != nil {
			lastErr = fmt.Errorf("failed to read response body: %w", readErr)

			continue
		}

		return body, nil
	}

	return nil, lastErr
}

// isRetryableStatus determines if we should retry based on HTTP status code.
func isRetryableStatus(statusCode int) bool {
	switch statusCode {
	case http.StatusServiceUnavailable,
		http.StatusGatewayTimeout,
		http.StatusTooManyRequests,
		http.StatusRequestTimeout:
		return true
	}

	return false
}

func firstPage(resp queryResponse) *pageData {
	for _, page := range resp.Query.Pages {
		p := page

		return &p
	}

	return nil
}

func categoryTitles(categories []categoryData) []string {
	titles := make([]string, 0, len(categories))
	for _, c := range categories {
		titles = append(titles, c.Title)
	}

	return titles
}

func linkTitles(links []linkData) []string {
	titles := make([]string, 0, len(links))
	for _, l := range links {
		titles = append(titles, l.Title)
	}

	return titles
}
