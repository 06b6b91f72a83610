package staticcatalog

import (
	"context"

	"github.com/stylecart/backend/internal/domain"
)

// ProviderName prefixes product IDs and the vendor provenance tag
const ProviderName = "static"

// Provider serves a hardcoded product list through the same provider
// capability as the real catalog sources, so offline and demo runs need no
// special-casing anywhere downstream. It is always enabled.
type Provider struct {
	products []domain.Product
}

// NewProvider creates a static provider over the built-in demo catalog.
func NewProvider() *Provider {
	return &Provider{products: demoCatalog()}
}

// NewProviderWithProducts creates a static provider over a caller-supplied
// list, mainly for tests.
func NewProviderWithProducts(products []domain.Product) *Provider {
	return &Provider{products: products}
}

// Name implements domain.CatalogProvider
func (p *Provider) Name() string {
	return ProviderName
}

// Enabled implements domain.CatalogProvider
func (p *Provider) Enabled() bool {
	return true
}

// Search applies the filters locally and truncates to limit. Empty filters
// return the listing as-is, which makes this provider a usable "top N"
// fallback when no real provider is configured.
func (p *Provider) Search(ctx context.Context, filters domain.ParsedFilters, limit int) ([]domain.Product, error) {
	results := make([]domain.Product, 0, limit)
	for _, product := range p.products {
		if !filters.Matches(product) {
			continue
		}
		results = append(results, product)
		if len(results) >= limit {
			break
		}
	}
	return results, nil
}

// demoCatalog is the offline fallback inventory.
func demoCatalog() []domain.Product {
	items := []struct {
		id          string
		title       string
		description string
		price       float64
		compareAt   float64
		category    string
		tags        []string
	}{
		{"static:1", "Classic White T-Shirt", "Soft cotton crew-neck tee", 499, 699, "t-shirt", []string{"casual", "cotton"}},
		{"static:2", "Black Oversized Hoodie", "Fleece-lined oversized hoodie", 1299, 0, "hoodie", []string{"oversized", "casual"}},
		{"static:3", "Slim Fit Blue Jeans", "Stretch denim, slim fit", 1599, 1999, "jeans", []string{"slim", "denim"}},
		{"static:4", "White Low-Top Sneakers", "Everyday leather sneakers", 1899, 0, "shoes", []string{"casual", "sneakers"}},
		{"static:5", "Navy Formal Shirt", "Wrinkle-resistant office shirt", 999, 0, "shirt", []string{"formal", "office"}},
		{"static:6", "Beige Chino Pants", "Lightweight cotton chino pants", 1199, 1499, "pants", []string{"casual"}},
		{"static:7", "Red Graphic Tee", "Printed cotton t-shirt", 599, 0, "t-shirt", []string{"casual", "graphic"}},
		{"static:8", "Black Running Shoes", "Cushioned mesh running shoes", 2499, 2999, "shoes", []string{"sport", "sneakers"}},
		{"static:9", "Gray Slim Jeans", "Washed gray slim denim", 1499, 0, "jeans", []string{"slim", "denim"}},
		{"static:10", "Brown Leather Bag", "Compact crossbody bag", 1799, 0, "bag", []string{"leather"}},
	}

	products := make([]domain.Product, 0, len(items))
	for _, item := range items {
		products = append(products, domain.Product{
			ID:             item.id,
			Title:          item.title,
			Description:    item.description,
			Price:          item.price,
			CompareAtPrice: item.compareAt,
			Category:       item.category,
			Tags:           append(item.tags, "vendor:"+ProviderName),
			Variants: []domain.Variant{
				{
					ID:        item.id + ":default",
					Title:     "Default",
					Price:     item.price,
					Available: true,
				},
			},
			Available: true,
		})
	}
	return products
}
