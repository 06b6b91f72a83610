package amazon

import "github.com/stylecart/backend/internal/domain"

// Native shapes of the hosted search API
type searchResponse struct {
	Results []searchResult `json:"results"`
}

type searchResult struct {
	ASIN     string  `json:"asin"`
	Title    string  `json:"title"`
	Price    money   `json:"price"`
	MSRP     money   `json:"list_price"`
	ImageURL string  `json:"image_url"`
	Category string  `json:"category"`
	InStock  bool    `json:"in_stock"`
	Rating   float64 `json:"rating"`
}

type money struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
}

// mapProduct normalizes a marketplace result, synthesizing the default
// variant the source does not model.
func mapProduct(item searchResult) domain.Product {
	id := ProviderName + ":" + item.ASIN

	var images []string
	if item.ImageURL != "" {
		images = []string{item.ImageURL}
	}

	return domain.Product{
		ID:             id,
		Title:          item.Title,
		Price:          item.Price.Value,
		CompareAtPrice: item.MSRP.Value,
		Images:         images,
		Category:       item.Category,
		Tags:           []string{"vendor:" + ProviderName},
		Variants: []domain.Variant{
			{
				ID:        id + ":default",
				Title:     "Default",
				Price:     item.Price.Value,
				Available: item.InStock,
			},
		},
		Available: item.InStock,
	}
}
