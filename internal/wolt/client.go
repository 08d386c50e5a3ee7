package wolt

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/azmarkets/wolt-scrap/internal/httputil"
)

const (
	// DefaultBaseURL serves the city listing.
	DefaultBaseURL = "https://restaurant-api.wolt.com"
	// DefaultConsumerURL serves retail pages and venue content.
	DefaultConsumerURL = "https://consumer-api.wolt.com"
)

// Client is the fetch gateway against the Wolt public API. It is a
// single-attempt, error-classifying wrapper: every failure is logged,
// classified as TransportError or DecodeError, and returned for the caller
// to absorb. Rate limiting lives in the injected http.Client's transport.
type Client struct {
	httpc       *http.Client
	BaseURL     string
	ConsumerURL string
	MaxRetries  int
}

func NewClient(httpc *http.Client) *Client {
	return &Client{
		httpc:       httpc,
		BaseURL:     DefaultBaseURL,
		ConsumerURL: DefaultConsumerURL,
		MaxRetries:  2,
	}
}

// getJSON fetches url and decodes the body into out. The returned error is
// always a *TransportError or *DecodeError.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	return c.fetchJSON(ctx, http.MethodGet, url, nil, out)
}

// fetchJSON issues one request and decodes the JSON body into out.
func (c *Client) fetchJSON(ctx context.Context, method, url string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		slog.Warn("building request failed", "url", url, "err", err)
		return &TransportError{URL: url, Err: err}
	}

	resp, err := httputil.DoWithRetry(c.httpc, req, c.MaxRetries)
	if err != nil {
		slog.Warn("request failed", "url", url, "err", err)
		return &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	raw, err := httputil.ReadBody(resp)
	if err != nil {
		slog.Warn("reading response failed", "url", url, "err", err)
		return &TransportError{URL: url, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Warn("unexpected status", "url", url, "status", resp.StatusCode)
		return &TransportError{URL: url, Status: resp.StatusCode}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		slog.Warn("invalid json body", "url", url, "err", err)
		return &DecodeError{URL: url, Err: err}
	}
	return nil
}
