package domain

import "strings"

// Product is a catalog entry normalized from any provider.
// IDs are provider-prefixed (e.g. "fakestore:17", "amazon:B001") so they
// cannot collide across providers.
type Product struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Price          float64   `json:"price"`
	CompareAtPrice float64   `json:"compareAtPrice,omitempty"`
	Images         []string  `json:"images,omitempty"`
	Category       string    `json:"category,omitempty"`
	Tags           []string  `json:"tags,omitempty"`
	Variants       []Variant `json:"variants,omitempty"`
	Available      bool      `json:"available"`
}

// Variant is a single purchasable option of a product.
type Variant struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Price     float64           `json:"price"`
	Available bool              `json:"available"`
	Options   map[string]string `json:"options,omitempty"`
}

// IsDiscounted reports whether the product carries a compare-at price
// above its current price.
func (p Product) IsDiscounted() bool {
	return p.CompareAtPrice > p.Price
}

// Vendor returns the provider name from the product's "vendor:<name>" tag,
// or "" when the product was never tagged with provenance.
func (p Product) Vendor() string {
	for _, tag := range p.Tags {
		if strings.HasPrefix(tag, "vendor:") {
			return strings.TrimPrefix(tag, "vendor:")
		}
	}
	return ""
}

// OutfitSuggestion bundles exactly one top, one bottom and one footwear
// product with their summed price.
type OutfitSuggestion struct {
	Top        Product `json:"top"`
	Bottom     Product `json:"bottom"`
	Footwear   Product `json:"footwear"`
	TotalPrice float64 `json:"totalPrice"`
	Label      string  `json:"label"`
}
