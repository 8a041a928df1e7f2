package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"usergrip/internal/domain"
)

// documentation: https://docs.github.com/en/rest/search/search#search-users
const DefaultBaseURL = "https://api.github.com/search/users"

const (
	DefaultRateLimitHeader  = "X-RateLimit-Reset"
	DefaultRateLimitMessage = "Rate limit exceeded."
	DefaultRateLimitHint    = "Please try again in %s seconds"
	unknownResetHint        = "unknown"
	fallbackStatusText      = "Failure to fetch data"
)

// Client searches the remote user directory. It never retries.
type Client struct {
	baseURL          string
	httpClient       *http.Client
	limiter          *rate.Limiter
	now              func() time.Time
	userAgent        string
	rateLimitHeader  string
	rateLimitMessage string
	rateLimitHint    string
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default client (10s timeout)
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout of the default client
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient = &http.Client{Timeout: d}
	}
}

// WithRequestsPerMinute throttles outgoing requests; n <= 0 disables throttling
func WithRequestsPerMinute(n int) Option {
	return func(c *Client) {
		if n <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(n)), 1)
	}
}

// WithClock sets the time source used to compute rate-limit hints
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// WithUserAgent sets the User-Agent header
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithRateLimitHeader names the header carrying the reset epoch seconds
func WithRateLimitHeader(name string) Option {
	return func(c *Client) {
		c.rateLimitHeader = name
	}
}

// WithRateLimitMessage sets the rate-limit wording. hint must contain one %s
// that receives the remaining seconds.
func WithRateLimitMessage(message, hint string) Option {
	return func(c *Client) {
		c.rateLimitMessage = message
		c.rateLimitHint = hint
	}
}

// NewClient creates a client for the search endpoint at baseURL
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:          baseURL,
		httpClient:       &http.Client{Timeout: 10 * time.Second},
		now:              time.Now,
		userAgent:        "usergrip",
		rateLimitHeader:  DefaultRateLimitHeader,
		rateLimitMessage: DefaultRateLimitMessage,
		rateLimitHint:    DefaultRateLimitHint,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchURL returns the request URL for term
func (c *Client) SearchURL(term string) string {
	sep := "?"
	if strings.Contains(c.baseURL, "?") {
		sep = "&"
	}
	return c.baseURL + sep + "q=" + encodeQueryComponent(term)
}

// SearchUsers fetches the first page of users matching term.
// An empty term returns an empty result without touching the network.
func (c *Client) SearchUsers(ctx context.Context, term string) (*domain.SearchResponse, error) {
	if term == "" {
		return domain.EmptySearchResponse(), nil
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, networkError(err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.SearchURL(term), nil)
	if err != nil {
		return nil, networkError(err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, networkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden {
		drain(resp.Body)
		return nil, &SearchError{
			Kind:       RateLimited,
			StatusCode: resp.StatusCode,
			Message:    c.rateLimitText(resp.Header),
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		drain(resp.Body)
		return nil, &SearchError{
			Kind:       HTTPError,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("API error (%d): %s", resp.StatusCode, statusText(resp)),
		}
	}

	var out domain.SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, networkError(err)
	}
	if out.Items == nil {
		out.Items = []domain.RemoteUser{}
	}
	return &out, nil
}

// rateLimitText builds the 403 message. A missing header yields an "unknown"
// hint; a header that does not parse drops the hint entirely.
func (c *Client) rateLimitText(h http.Header) string {
	raw := strings.TrimSpace(h.Get(c.rateLimitHeader))
	if raw == "" {
		return c.rateLimitMessage + " " + fmt.Sprintf(c.rateLimitHint, unknownResetHint)
	}

	reset, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return c.rateLimitMessage
	}

	now := float64(c.now().UnixMilli()) / 1000
	seconds := int64(math.Floor(float64(reset) - now))
	return c.rateLimitMessage + " " + fmt.Sprintf(c.rateLimitHint, strconv.FormatInt(seconds, 10))
}

// statusText returns the reason phrase the server sent, if any
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		return fallbackStatusText
	}
	return text
}

// encodeQueryComponent percent-encodes like encodeURIComponent: spaces become %20
func encodeQueryComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func drain(r io.Reader) {
	_, _ = io.Copy(io.Discard, io.LimitReader(r, 64<<10))
}
