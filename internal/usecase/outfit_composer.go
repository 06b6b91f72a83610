package usecase

import (
	"sort"
	"strings"

	"github.com/stylecart/backend/internal/domain"
)

// Bucket keyword lists. A product may land in several buckets; the
// partitions are deliberately not mutually exclusive.
var (
	topKeywords      = []string{"t-shirt", "tee", "shirt", "hoodie", "top"}
	bottomKeywords   = []string{"jeans", "pants", "trousers", "denim"}
	footwearKeywords = []string{"sneakers", "shoes", "footwear"}
)

const (
	// maxPerBucket caps each bucket at the first 5 candidates, bounding
	// the cross product to at most 125 triples.
	maxPerBucket = 5

	// maxSuggestions caps the returned ranked list
	maxSuggestions = 5

	// outfitLabel is the fixed display label for every suggestion
	outfitLabel = "Top + Jeans + Sneakers"
)

// OutfitComposer assembles top+bottom+footwear bundles from a product list
// under an optional budget ceiling, ranked by ascending total price.
type OutfitComposer struct{}

// NewOutfitComposer creates a new outfit composer
func NewOutfitComposer() *OutfitComposer {
	return &OutfitComposer{}
}

// Compose builds at most 5 outfit suggestions from the supplied products.
// A maxBudget of 0 means unconstrained. An empty bucket yields no
// suggestions: partial outfits of fewer than three items are never built.
func (c *OutfitComposer) Compose(products []domain.Product, maxBudget float64) []domain.OutfitSuggestion {
	tops := bucketProducts(products, topKeywords)
	bottoms := bucketProducts(products, bottomKeywords)
	footwear := bucketProducts(products, footwearKeywords)

	var suggestions []domain.OutfitSuggestion
	for _, top := range tops {
		for _, bottom := range bottoms {
			for _, shoe := range footwear {
				total := top.Price + bottom.Price + shoe.Price
				if maxBudget > 0 && total > maxBudget {
					continue
				}
				suggestions = append(suggestions, domain.OutfitSuggestion{
					Top:        top,
					Bottom:     bottom,
					Footwear:   shoe,
					TotalPrice: total,
					Label:      outfitLabel,
				})
			}
		}
	}

	// Stable sort keeps the generation order (top-major, then bottom,
	// then footwear) as the tie-break for equal totals.
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].TotalPrice < suggestions[j].TotalPrice
	})

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

// bucketProducts collects, in input order, the first products whose
// searchable text contains any of the bucket keywords.
func bucketProducts(products []domain.Product, keywords []string) []domain.Product {
	var bucket []domain.Product
	for _, product := range products {
		if len(bucket) >= maxPerBucket {
			break
		}
		haystack := strings.ToLower(product.Title + " " + product.Description + " " +
			product.Category + " " + strings.Join(product.Tags, " "))
		for _, keyword := range keywords {
			if strings.Contains(haystack, keyword) {
				bucket = append(bucket, product)
				break
			}
		}
	}
	return bucket
}
