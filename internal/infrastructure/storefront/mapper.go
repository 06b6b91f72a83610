package storefront

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/stylecart/backend/internal/domain"
)

// Native storefront API shapes. Prices come back as decimal strings.
type searchResponse struct {
	Products []storeProduct `json:"products"`
}

type storeProduct struct {
	ID          int64          `json:"id"`
	Title       string         `json:"title"`
	BodyHTML    string         `json:"body_html"`
	ProductType string         `json:"product_type"`
	Tags        string         `json:"tags"` // comma-separated
	Images      []storeImage   `json:"images"`
	Variants    []storeVariant `json:"variants"`
}

type storeImage struct {
	Src string `json:"src"`
}

type storeVariant struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Price          string `json:"price"`
	CompareAtPrice string `json:"compare_at_price"`
	Available      bool   `json:"available"`
	Option1        string `json:"option1"`
	Option2        string `json:"option2"`
}

// mapProduct normalizes a native storefront item into the shared Product
// shape, tagging it with vendor provenance for dedup and UI disclosure.
func mapProduct(item storeProduct) domain.Product {
	variants := make([]domain.Variant, 0, len(item.Variants))
	available := false
	for _, v := range item.Variants {
		variant := mapVariant(v)
		if variant.Available {
			available = true
		}
		variants = append(variants, variant)
	}

	price := 0.0
	compareAt := 0.0
	if len(item.Variants) > 0 {
		price = parsePrice(item.Variants[0].Price)
		compareAt = parsePrice(item.Variants[0].CompareAtPrice)
	}

	images := make([]string, 0, len(item.Images))
	for _, img := range item.Images {
		images = append(images, img.Src)
	}

	tags := splitTags(item.Tags)
	tags = append(tags, "vendor:"+ProviderName)

	return domain.Product{
		ID:             fmt.Sprintf("%s:%d", ProviderName, item.ID),
		Title:          item.Title,
		Description:    item.BodyHTML,
		Price:          price,
		CompareAtPrice: compareAt,
		Images:         images,
		Category:       item.ProductType,
		Tags:           tags,
		Variants:       variants,
		Available:      available,
	}
}

func mapVariant(v storeVariant) domain.Variant {
	options := make(map[string]string)
	if v.Option1 != "" {
		options["size"] = v.Option1
	}
	if v.Option2 != "" {
		options["color"] = v.Option2
	}

	return domain.Variant{
		ID:        fmt.Sprintf("%s:variant:%d", ProviderName, v.ID),
		Title:     v.Title,
		Price:     parsePrice(v.Price),
		Available: v.Available,
		Options:   options,
	}
}

func parsePrice(s string) float64 {
	if s == "" {
		return 0
	}
	price, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return price
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
