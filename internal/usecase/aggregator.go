package usecase

import (
	"context"
	"log"
	"strconv"
	"strings"
	"sync"

	"github.com/stylecart/backend/internal/domain"
)

// defaultSearchLimit bounds a search when the caller passes no limit
const defaultSearchLimit = 20

// CatalogAggregator fans one structured query out to every enabled
// provider, then merges, deduplicates and truncates the combined results.
//
// Merge order is deterministic: primary first, then secondaries in
// registration order. Each provider's outcome is buffered in its launch
// slot before concatenation, never merged in completion order, which would
// make the first-wins dedup rule nondeterministic across runs.
type CatalogAggregator struct {
	providers          []domain.CatalogProvider
	enableDebugLogging bool
}

// NewCatalogAggregator creates an aggregator over the primary provider and
// zero or more secondary providers, in fixed registration order.
func NewCatalogAggregator(primary domain.CatalogProvider, secondaries ...domain.CatalogProvider) *CatalogAggregator {
	providers := make([]domain.CatalogProvider, 0, 1+len(secondaries))
	providers = append(providers, primary)
	providers = append(providers, secondaries...)
	return &CatalogAggregator{providers: providers}
}

// SetDebug enables per-provider fan-out logging
func (a *CatalogAggregator) SetDebug(enabled bool) {
	a.enableDebugLogging = enabled
}

// Search queries all enabled providers concurrently and returns the merged,
// deduplicated result list truncated to limit. Provider failures contribute
// nothing; they never abort or delay the other providers beyond their own
// call, so an empty slice is the only failure signal a caller ever sees.
func (a *CatalogAggregator) Search(ctx context.Context, filters domain.ParsedFilters, limit int) []domain.Product {
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	var enabled []domain.CatalogProvider
	for _, provider := range a.providers {
		if provider.Enabled() {
			enabled = append(enabled, provider)
		}
	}
	if len(enabled) == 0 {
		return []domain.Product{}
	}

	// The primary gets the full limit; each secondary asks for half,
	// keeping volume bounded while leaving overlap for dedup.
	secondaryLimit := (limit + 1) / 2

	results := make([][]domain.Product, len(enabled))
	var wg sync.WaitGroup
	for i, provider := range enabled {
		perCallLimit := limit
		if i > 0 {
			perCallLimit = secondaryLimit
		}

		wg.Add(1)
		go func(slot int, p domain.CatalogProvider, callLimit int) {
			defer wg.Done()
			items, err := p.Search(ctx, filters, callLimit)
			if err != nil {
				log.Printf("[AGGREGATE] provider %s failed: %v", p.Name(), err)
				return
			}
			results[slot] = items
		}(i, provider, perCallLimit)
	}
	wg.Wait()

	var combined []domain.Product
	for _, items := range results {
		combined = append(combined, items...)
	}

	merged := dedupeProducts(combined)
	if len(merged) > limit {
		merged = merged[:limit]
	}

	if a.enableDebugLogging {
		log.Printf("[AGGREGATE] %d providers, %d raw, %d merged", len(enabled), len(combined), len(merged))
	}

	return merged
}

// TopProducts returns an unfiltered listing, which the primary provider
// serves as its "top N" fallback.
func (a *CatalogAggregator) TopProducts(ctx context.Context, limit int) []domain.Product {
	return a.Search(ctx, domain.ParsedFilters{}, limit)
}

// dedupeProducts drops later occurrences of the same (lowercased title,
// price) pair, keeping the first one encountered. Provider-prefixed IDs
// make exact ID collisions impossible, so this pairing is the heuristic
// for "same real-world item listed by two providers".
func dedupeProducts(products []domain.Product) []domain.Product {
	seen := make(map[string]bool, len(products))
	deduped := make([]domain.Product, 0, len(products))

	for _, product := range products {
		key := dedupeKey(product)
		if seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, product)
	}

	return deduped
}

func dedupeKey(p domain.Product) string {
	return strings.ToLower(p.Title) + "|" + strconv.FormatFloat(p.Price, 'f', -1, 64)
}
