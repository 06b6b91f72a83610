package amazon

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
const ProviderName = "amazon"

// Client is a secondary marketplace provider backed by a hosted Amazon
// product-search API. The endpoint takes a plain keyword string, so the
// price ceiling is enforced as a local post-filter.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates an Amazon search client. The provider stays disabled
// until both baseURL and apiKey are configured.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL:     baseURL,
		apiKey:      apiKey,
		rateLimiter: rate.NewLimiter(rate.Limit(1), 2),
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
	return c.baseURL != "" && c.apiKey != ""
}

// Search issues a keyword query and post-filters what the query string
// could not express.
func (c *Client) Search(ctx context.Context, filters domain.ParsedFilters, limit int) ([]domain.Product, error) {
	if !c.Enabled() {
		return nil, domain.ErrProviderDisabled
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	params := url.Values{}
	params.Add("query", buildKeywordQuery(filters))
	params.Add("page_size", fmt.Sprintf("%d", limit))

	reqURL := fmt.Sprintf("%s/v1/search?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)

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

	products := make([]domain.Product, 0, limit)
	for _, item := range searchResp.Results {
		product := mapProduct(item)
		if filters.MaxPrice > 0 && product.Price > float64(filters.MaxPrice) {
			continue
		}
		products = append(products, product)
		if len(products) >= limit {
			break
		}
	}

	if c.debug {
		log.Printf("[AMAZON] query %q: %d of %d results kept", params.Get("query"), len(products), len(searchResp.Results))
	}
	return products, nil
}

// buildKeywordQuery concatenates the filter terms into the plain keyword
// string the endpoint accepts.
func buildKeywordQuery(f domain.ParsedFilters) string {
	var terms []string
	if f.Color != "" {
		terms = append(terms, f.Color)
	}
	if f.ProductType != "" {
		terms = append(terms, f.ProductType)
	} else if f.Text != "" {
		terms = append(terms, f.Text)
	}
	terms = append(terms, f.StyleTags...)
	return strings.Join(terms, " ")
}
