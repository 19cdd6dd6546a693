package fixer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/parkingflow/parking_flow_app/internal/apperrors"
	"github.com/parkingflow/parking_flow_app/internal/core/domain"
	"github.com/parkingflow/parking_flow_app/internal/core/ports/providers"
)

const defaultTimeout = 30 * time.Second

// Client fetches exchange-rate snapshots from a fixer.io-compatible API.
// Every call is a single outbound GET; nothing is cached or retained between
// calls, so repeated previews for the same date re-fetch from upstream.
type Client struct {
	baseURL    string
	apiKey     string
	symbols    string // CSV of target currency codes, e.g. "USD,EUR,PLN"
	httpClient *http.Client
}

var _ providers.RateProvider = (*Client)(nil)

// NewClient creates a rate client for the given API endpoint and key.
// symbols is the comma-separated set of target currencies to request.
func NewClient(baseURL, apiKey, symbols string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		symbols:    symbols,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// FetchLatest fetches the current rates for the configured target currencies.
func (c *Client) FetchLatest(ctx context.Context) (*domain.RateSnapshot, error) {
	return c.fetch(ctx, "latest", url.Values{"symbols": {c.symbols}})
}

// FetchHistorical fetches the rates quoted for a specific calendar date.
func (c *Client) FetchHistorical(ctx context.Context, date time.Time) (*domain.RateSnapshot, error) {
	return c.fetch(ctx, date.Format("2006-01-02"), url.Values{
		"symbols": {c.symbols},
		"format":  {"1"},
	})
}

func (c *Client) fetch(ctx context.Context, endpoint string, params url.Values) (*domain.RateSnapshot, error) {
	params.Set("access_key", c.apiKey)
	requestURL := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build rate request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUpstreamUnavailable, resp.Status)
	}

	var snapshot domain.RateSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedResponse, err)
	}

	// success=false over a 200 is a valid snapshot; the caller decides.
	return &snapshot, nil
}
