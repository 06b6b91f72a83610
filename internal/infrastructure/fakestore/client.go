package fakestore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/stylecart/backend/internal/domain"
	"golang.org/x/time/rate"
)

// ProviderName prefixes product IDs and the vendor provenance tag
const ProviderName = "fakestore"

// Client is a secondary marketplace provider backed by a FakeStore-style
// flat JSON API. The API has no query syntax at all, so every filter
// constraint is applied as a local post-filter over its listing.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a FakeStore API client. An empty baseURL leaves the
// provider disabled.
func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL:     baseURL,
		rateLimiter: rate.NewLimiter(rate.Limit(1), 3),
	}
}

// SetDebug toggles verbose request logging
func (c *Client) SetDebug(enabled bool) {
	c.debug = enabled
}

// Name implements domain.CatalogProvider
func (c *Client) Name() string {
	return ProviderName
}

// Enabled implements domain.CatalogProvider
func (c *Client) Enabled() bool {
	return c.baseURL != ""
}

// Search fetches the provider listing, normalizes it, applies the filters
// locally and truncates to limit.
func (c *Client) Search(ctx context.Context, filters domain.ParsedFilters, limit int) ([]domain.Product, error) {
	if !c.Enabled() {
		return nil, domain.ErrProviderDisabled
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	reqURL := fmt.Sprintf("%s/products", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderCallFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: status %d, body: %s", domain.ErrProviderCallFailed, resp.StatusCode, string(body))
	}

	var items []fakeStoreProduct
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", domain.ErrProviderCallFailed, err)
	}

	products := make([]domain.Product, 0, limit)
	for _, item := range items {
		product := mapProduct(item)
		if !filters.Matches(product) {
			continue
		}
		products = append(products, product)
		if len(products) >= limit {
			break
		}
	}

	if c.debug {
		log.Printf("[FAKESTORE] %d of %d items passed filters %s", len(products), len(items), describeFilters(filters))
	}
	return products, nil
}

func describeFilters(f domain.ParsedFilters) string {
	if f.IsEmpty() {
		return "(none)"
	}
	return strings.Join(f.Keywords(), " ")
}
