package fakestore

import (
	"fmt"

	"github.com/stylecart/backend/internal/domain"
)

// fakeStoreProduct is the provider's native flat item shape. The source
// has no variant concept.
type fakeStoreProduct struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}

// mapProduct normalizes a native item into the shared Product shape,
// synthesizing a single default variant since the source has none.
func mapProduct(item fakeStoreProduct) domain.Product {
	id := fmt.Sprintf("%s:%d", ProviderName, item.ID)

	var images []string
	if item.Image != "" {
		images = []string{item.Image}
	}

	return domain.Product{
		ID:          id,
		Title:       item.Title,
		Description: item.Description,
		Price:       item.Price,
		Images:      images,
		Category:    item.Category,
		Tags:        []string{"vendor:" + ProviderName},
		Variants: []domain.Variant{
			{
				ID:        id + ":default",
				Title:     "Default",
				Price:     item.Price,
				Available: true,
			},
		},
		Available: true,
	}
}
