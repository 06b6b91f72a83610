package domain

import (
	"context"
	"time"
)

// CatalogProvider is one external product source the aggregator can query.
// Search never panics; transport and decode failures surface as an error
// that the caller converts to an empty contribution.
type CatalogProvider interface {
	// Name identifies the provider; it prefixes product IDs and is the
	// value of the vendor:<name> provenance tag.
	Name() string

	// Enabled reports whether the provider is configured. Disabled
	// providers are skipped from fan-out entirely, not counted as failures.
	Enabled() bool

	// Search returns up to limit products matching the filters, already
	// normalized to the shared Product shape.
	Search(ctx context.Context, filters ParsedFilters, limit int) ([]Product, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// TextGenerator is the opaque text-generation service used for
// conversational recommendations. It takes a prompt and returns free-form
// text; callers must not assume any structure in the reply.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
