package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Defaults for the job-search client.
const (
	// DefaultPageSize is the fixed results-per-page used by the pipeline.
	DefaultPageSize = 10
	// DefaultTimeout is the HTTP request timeout.
	DefaultTimeout = 30 * time.Second
	// DefaultBaseURL is the Adzuna jobs API root.
	DefaultBaseURL = "https://api.adzuna.com/v1/api/jobs"
	// DefaultCountry selects the Adzuna country index.
	DefaultCountry = "in"
)

// authFailException is Adzuna's marker for rejected credentials.
const authFailException = "AUTH_FAIL"

// Options configures the search client.
type Options struct {
	BaseURL    string
	Country    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client issues paged queries to the external job-search API. It holds no
// cache; repeated identical queries re-fetch.
type Client struct {
	httpClient *http.Client
	baseURL    string
	country    string
	appID      string
	appKey     string
}

// NewClient creates a search client with the given credentials.
func NewClient(appID, appKey string, opts *Options) *Client {
	if opts == nil {
		opts = &Options{}
	}
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	country := opts.Country
	if country == "" {
		country = DefaultCountry
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		country:    country,
		appID:      appID,
		appKey:     appKey,
	}
}

// searchResponse is the wire shape of a search result page. Results stays raw
// so a non-sequence value can be detected instead of silently decoded.
type searchResponse struct {
	Exception string          `json:"exception"`
	Results   json.RawMessage `json:"results"`
}

// Search fetches one page of listings for the given skills. The skills are
// joined with single spaces into one free-text query term. Page numbering is
// 1-based.
func (c *Client) Search(ctx context.Context, skills []string, page, pageSize int) ([]Listing, error) {
	if page < 1 {
		return nil, fmt.Errorf("page must be >= 1, got %d", page)
	}
	if pageSize < 1 {
		return nil, fmt.Errorf("pageSize must be > 0, got %d", pageSize)
	}

	params := url.Values{}
	params.Set("app_id", c.appID)
	params.Set("app_key", c.appKey)
	params.Set("results_per_page", fmt.Sprintf("%d", pageSize))
	params.Set("what", strings.Join(skills, " "))
	params.Set("content-type", "application/json")

	searchURL := fmt.Sprintf("%s/%s/search/%d?%s", c.baseURL, c.country, page, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, &ServiceError{Kind: KindTransport, Message: "failed to create request", Cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ServiceError{Kind: KindTransport, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ServiceError{Kind: KindTransport, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, &ServiceError{Kind: KindAuthorization, Message: "authorization failed, check API credentials"}
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &ServiceError{Kind: KindMalformed, Message: "response is not valid JSON", Cause: err}
	}

	if parsed.Exception == authFailException {
		return nil, &ServiceError{Kind: KindAuthorization, Message: "authorization failed, check API credentials"}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &ServiceError{Kind: KindTransport, Message: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	if len(parsed.Results) == 0 || string(parsed.Results) == "null" {
		return nil, &ServiceError{Kind: KindMalformed, Message: "response has no results collection"}
	}

	var listings []Listing
	if err := json.Unmarshal(parsed.Results, &listings); err != nil {
		return nil, &ServiceError{Kind: KindMalformed, Message: "results collection is not a sequence", Cause: err}
	}

	for i := range listings {
		listings[i].Description = CleanDescription(listings[i].Description)
	}

	return listings, nil
}
