package apiclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	"weather-dashboard/pkg/observe"
)

const (
	endpointCurrent  = "/weather/current"
	endpointForecast = "/weather/forecast"
	endpointSearch   = "/weather/search"

	maxBodySize = 1 << 20
)

// HTTPClient is satisfied by *http.Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the dashboard's weather backend.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	limiter    *rate.Limiter
	l          *observe.Logger
}

type Option func(*Client)

func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout bounds each request. It replaces the HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient = &http.Client{Timeout: timeout}
	}
}

// WithRateLimit throttles outbound requests. rps <= 0 leaves requests
// unthrottled.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

func NewClient(baseURL string, l *observe.Logger, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid base URL %q", baseURL)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, errors.Errorf("base URL must be an absolute http(s) URL, got %q", baseURL)
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		l:          l,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// getJSON issues a GET against endpoint and decodes a 2xx body into out.
// Every failure is returned as *ProviderError.
func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return wrapProviderError(err, "rate limit wait canceled")
		}
	}

	reqURL := c.baseURL + endpoint
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	c.l.Info("making backend request", map[string]any{
		"endpoint": endpoint,
		"params":   params.Encode(),
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return wrapProviderError(err, "failed to create request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.l.Warning("backend request failed", map[string]any{
			"endpoint": endpoint,
			"err":      err.Error(),
		})
		return wrapProviderError(err, "failed to do request")
	}
	defer resp.Body.Close()

	c.l.Info("received backend response", map[string]any{
		"endpoint":   endpoint,
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return wrapProviderError(err, "failed to read response body")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		perr := statusError(resp.StatusCode, body)
		c.l.Warning("backend returned error status", map[string]any{
			"endpoint": endpoint,
			"status":   resp.StatusCode,
			"message":  perr.Message,
		})
		return perr
	}

	if err := json.Unmarshal(body, out); err != nil {
		return wrapProviderError(err, "failed to parse JSON response")
	}

	return nil
}
