// Package pokeapi provides the PokeAPI resource client and typed accessors.
package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/infrastructure/config"
)

// maxBodySize bounds a single response body.
const maxBodySize = 16 << 20

// Client implements ports.ResourceFetcher over HTTP. It is the only
// component that performs network I/O and never retries.
type Client struct {
	http      *http.Client
	baseURL   *url.URL
	userAgent string
}

// NewClient creates a new PokeAPI HTTP client.
func NewClient(cfg config.APIConfig) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("PokeAPI base URL is required")
	}
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base URL %q must be absolute", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "dex-core"
	}

	return &Client{
		http:      &http.Client{Timeout: timeout},
		baseURL:   base,
		userAgent: userAgent,
	}, nil
}

// Resolve turns a path relative to the base URL into an absolute URL.
// Absolute URLs are returned unchanged.
func (c *Client) Resolve(ref string) string {
	u, err := url.Parse(ref)
	if err != nil || u.IsAbs() {
		return ref
	}
	return c.baseURL.ResolveReference(&url.URL{Path: strings.TrimLeft(u.Path, "/"), RawQuery: u.RawQuery}).String()
}

// Fetch performs a GET and returns the body once it is known to be JSON.
func (c *Client) Fetch(ctx context.Context, ref string) ([]byte, error) {
	target := c.Resolve(ref)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &entities.NetworkError{URL: target, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &entities.NetworkError{URL: target, Err: err}
	}
	defer resp.Body.Close()

	slog.Debug("pokeapi fetch", "url", target, "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return nil, &entities.NetworkError{URL: target, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &entities.NetworkError{URL: target, Err: fmt.Errorf("reading body: %w", err)}
	}
	if !json.Valid(body) {
		return nil, &entities.DecodeError{URL: target, Err: errors.New("response is not valid JSON")}
	}
	return body, nil
}
