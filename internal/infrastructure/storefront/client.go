package storefront

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/stylecart/backend/internal/domain"
	"golang.org/x/time/rate"
)

// ProviderName prefixes product IDs and the vendor provenance tag
const ProviderName = "storefront"

// Client is the primary catalog provider: the store's own storefront API.
// It speaks a query-language search endpoint with native variants, so most
// filter constraints are expressed server-side.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a storefront API client. An empty baseURL leaves the
// provider disabled.
func NewClient(baseURL, accessToken string) *Client {
	// Storefront API allows 2 requests per second per token
	limiter := rate.NewLimiter(rate.Limit(2), 5)

	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL:     baseURL,
		accessToken: accessToken,
		rateLimiter: limiter,
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

// Search queries the storefront search endpoint. When the composed query
// expression is empty (no filter produced a constraint) it falls back to
// the unfiltered best-selling listing instead of issuing an empty query.
func (c *Client) Search(ctx context.Context, filters domain.ParsedFilters, limit int) ([]domain.Product, error) {
	if !c.Enabled() {
		return nil, domain.ErrProviderDisabled
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	params := url.Values{}
	params.Add("limit", fmt.Sprintf("%d", limit))
	if query := buildQuery(filters); query != "" {
		params.Add("q", query)
	} else {
		params.Add("sort_by", "best-selling")
	}

	reqURL := fmt.Sprintf("%s/api/catalog/search?%s", c.baseURL, params.Encode())
	c.debugLog("GET %s", reqURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.accessToken != "" {
		req.Header.Set("X-Access-Token", c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderCallFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: status %d, body: %s", domain.ErrProviderCallFailed, resp.StatusCode, string(body))
	}

	var searchResp searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", domain.ErrProviderCallFailed, err)
	}

	products := make([]domain.Product, 0, len(searchResp.Products))
	for _, item := range searchResp.Products {
		products = append(products, mapProduct(item))
		if len(products) >= limit {
			break
		}
	}

	c.debugLog("query %q returned %d products", params.Get("q"), len(products))
	return products, nil
}

// buildQuery composes the storefront query-language expression from the
// shared filters, joining every term with an implicit AND.
func buildQuery(f domain.ParsedFilters) string {
	var terms []string
	if f.Text != "" {
		terms = append(terms, f.Text)
	}
	if f.ProductType != "" {
		terms = append(terms, f.ProductType)
	}
	if f.Color != "" {
		terms = append(terms, f.Color)
	}
	for _, tag := range f.StyleTags {
		terms = append(terms, "tag:"+tag)
	}
	if f.MaxPrice > 0 {
		terms = append(terms, fmt.Sprintf("variants.price:<=%d", f.MaxPrice))
	}
	return strings.Join(terms, " AND ")
}

func (c *Client) debugLog(format string, args ...interface{}) {
	if c.debug {
		log.Printf("[STOREFRONT] "+format, args...)
	}
}
