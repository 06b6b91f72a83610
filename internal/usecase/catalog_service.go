package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/stylecart/backend/internal/domain"
)

// Package-level compiled regex patterns for cache key normalization
var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s]`)
	multipleSpacesRegex  = regexp.MustCompile(`\s+`)
)

// CatalogServiceConfig holds configuration for the catalog service
type CatalogServiceConfig struct {
	CacheTTL           time.Duration
	DefaultLimit       int
	EnableDebugLogging bool
}

// CatalogService is the entry point the delivery layer talks to: it parses
// the utterance, serves repeated queries from cache, and otherwise fans
// out through the aggregator.
type CatalogService struct {
	parser       *FilterParser
	aggregator   *CatalogAggregator
	cache        domain.CacheRepository
	cacheTTL     time.Duration
	defaultLimit int
}

// NewCatalogService creates a catalog service with dependencies
func NewCatalogService(
	cache domain.CacheRepository,
	aggregator *CatalogAggregator,
	config CatalogServiceConfig,
) *CatalogService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 15 * time.Minute
	}
	defaultLimit := config.DefaultLimit
	if defaultLimit <= 0 {
		defaultLimit = defaultSearchLimit
	}
	aggregator.SetDebug(config.EnableDebugLogging)

	return &CatalogService{
		parser:       NewFilterParser(config.EnableDebugLogging),
		aggregator:   aggregator,
		cache:        cache,
		cacheTTL:     cacheTTL,
		defaultLimit: defaultLimit,
	}
}

// SearchText parses the utterance and returns the merged provider results
// along with the filters that were extracted. An empty product list is a
// legitimate outcome, not a failure: it tells the UI to offer a
// broaden-your-search affordance.
func (s *CatalogService) SearchText(ctx context.Context, query string, limit int) ([]domain.Product, domain.ParsedFilters) {
	if limit <= 0 {
		limit = s.defaultLimit
	}

	filters := s.parser.Parse(query)
	cacheKey := s.generateCacheKey(query, limit)

	if cached, err := s.getFromCache(ctx, cacheKey); err == nil {
		return cached, filters
	}

	products := s.aggregator.Search(ctx, filters, limit)

	// Cache failures are non-fatal; the next identical query just fans
	// out again.
	_ = s.cache.Set(ctx, cacheKey, products, s.cacheTTL)

	return products, filters
}

// Search fans pre-parsed filters out without touching the cache, for
// callers that already hold a ParsedFilters value.
func (s *CatalogService) Search(ctx context.Context, filters domain.ParsedFilters, limit int) []domain.Product {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	return s.aggregator.Search(ctx, filters, limit)
}

// TopProducts returns the unfiltered "top N" listing.
func (s *CatalogService) TopProducts(ctx context.Context, limit int) []domain.Product {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	return s.aggregator.TopProducts(ctx, limit)
}

// generateCacheKey creates a normalized cache key from the raw utterance.
// Format: "catalog:{normalized_query}:{limit}"
func (s *CatalogService) generateCacheKey(query string, limit int) string {
	return fmt.Sprintf("catalog:%s:%d", normalizeForCacheKey(query), limit)
}

// normalizeForCacheKey lowercases, strips non-alphanumerics and collapses
// whitespace so trivially different utterances share a cache entry.
func normalizeForCacheKey(s string) string {
	if s == "" {
		return ""
	}
	result := strings.ToLower(s)
	result = nonAlphanumericRegex.ReplaceAllString(result, "")
	result = multipleSpacesRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

// getFromCache retrieves a cached product list
func (s *CatalogService) getFromCache(ctx context.Context, key string) ([]domain.Product, error) {
	value, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	products, ok := value.([]domain.Product)
	if !ok {
		return nil, domain.ErrCacheMiss
	}
	return products, nil
}
