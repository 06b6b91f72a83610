package domain

import "strings"

// ParsedFilters is the structured form of one free-text shopping request.
// Built per query, consumed immediately, never persisted. The zero value
// means the parser found no signal at all.
type ParsedFilters struct {
	Text        string   `json:"text,omitempty"`
	MaxPrice    int      `json:"maxPrice,omitempty"`
	Color       string   `json:"color,omitempty"`
	ProductType string   `json:"productType,omitempty"`
	StyleTags   []string `json:"styleTags,omitempty"`
}

// IsEmpty reports whether parsing produced no usable constraint.
func (f ParsedFilters) IsEmpty() bool {
	return f.Text == "" && f.MaxPrice == 0 && f.Color == "" &&
		f.ProductType == "" && len(f.StyleTags) == 0
}

// Keywords returns the free-text terms a provider should match against:
// the residual text tokens plus the canonical type and color when set.
// Style tags are excluded: most providers have no tag vocabulary and
// requiring them locally would empty every result set.
func (f ParsedFilters) Keywords() []string {
	var keywords []string
	for _, token := range strings.Fields(strings.ToLower(f.Text)) {
		keywords = append(keywords, token)
	}
	if f.ProductType != "" {
		keywords = append(keywords, strings.ToLower(f.ProductType))
	}
	if f.Color != "" {
		keywords = append(keywords, strings.ToLower(f.Color))
	}
	return keywords
}

// Matches is the local post-filter for constraints a provider's query
// syntax cannot express natively: the price ceiling and containment of
// every keyword in the product's searchable text.
func (f ParsedFilters) Matches(p Product) bool {
	if f.MaxPrice > 0 && p.Price > float64(f.MaxPrice) {
		return false
	}

	keywords := f.Keywords()
	if len(keywords) == 0 {
		return true
	}

	haystack := strings.ToLower(
		p.Title + " " + p.Description + " " + p.Category + " " + strings.Join(p.Tags, " "))
	for _, keyword := range keywords {
		if !strings.Contains(haystack, keyword) {
			return false
		}
	}
	return true
}
