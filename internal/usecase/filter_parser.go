package usecase

import (
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/stylecart/backend/internal/domain"
)

// Package-level compiled regex patterns for price extraction
var (
	// Matches "under 800", "below $500", "less than 1200", "< 300"
	priceCeilingPattern = regexp.MustCompile(`(?:under|below|less than|<)\s*[$₹€£]?\s*(\d{2,6})\b`)

	// Matches a bare currency-prefixed amount anywhere, e.g. "₹500", "$49"
	currencyAmountPattern = regexp.MustCompile(`[$₹€£]\s*(\d{2,6})\b`)
)

// knownColors is scanned in this fixed order; the first substring hit wins.
var knownColors = []string{
	"black", "white", "red", "blue", "green", "yellow", "brown",
	"gray", "grey", "purple", "pink", "beige", "navy",
}

// productTypes maps canonical type labels to their free-text synonyms.
// Iteration order is the table order, not alphabetical: the first canonical
// whose synonym set has a substring hit wins.
var productTypes = []struct {
	canonical string
	synonyms  []string
}{
	{"t-shirt", []string{"tshirt", "tee", "t-shirt", "shirt", "top"}},
	{"hoodie", []string{"hoodie", "sweatshirt"}},
	{"jeans", []string{"jeans", "denim", "pants"}},
	{"shoes", []string{"shoes", "sneakers", "footwear"}},
	{"jacket", []string{"jacket", "coat"}},
	{"dress", []string{"dress"}},
}

// styleTagChecks are tested independently in this fixed order, so the tag
// list order never depends on word order in the input.
var styleTagChecks = []struct {
	tag      string
	synonyms []string
}{
	{"oversized", []string{"oversized"}},
	{"slim", []string{"slim"}},
	{"casual", []string{"casual"}},
	{"formal", []string{"formal", "office"}},
}

// residualCategoryWords are literal category words collected into the
// free-text remainder when no canonical product type matched.
var residualCategoryWords = []string{"t-shirt", "shirt", "hoodie", "jeans", "shoes", "bag"}

// maxFallbackLength is the longest raw input forwarded verbatim as the
// free-text remainder. Longer inputs are dropped, not truncated, to keep
// outbound provider queries short.
const maxFallbackLength = 80

// FilterParser turns one free-text shopping utterance into ParsedFilters.
// Parsing is deterministic, does no I/O, and matches case-insensitively
// against a single lower-cased copy of the input.
type FilterParser struct {
	enableDebugLogging bool
}

// NewFilterParser creates a new filter parser
func NewFilterParser(enableDebugLogging bool) *FilterParser {
	return &FilterParser{enableDebugLogging: enableDebugLogging}
}

// parseRule is one precedence step: a pure function from the lower-cased
// input to a partial update of the filters being built.
type parseRule struct {
	name  string
	apply func(lowered string, f *domain.ParsedFilters)
}

// parseRules run in this fixed order: price, color, type, style tags,
// residual text. The residual rule depends on the type rule's outcome,
// which is why order is part of the contract.
var parseRules = []parseRule{
	{"price", applyPriceRule},
	{"color", applyColorRule},
	{"type", applyTypeRule},
	{"style", applyStyleRule},
	{"residual", applyResidualRule},
}

// Parse extracts structured filters from free text.
func (p *FilterParser) Parse(text string) domain.ParsedFilters {
	var filters domain.ParsedFilters

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return filters
	}

	lowered := strings.ToLower(trimmed)
	for _, rule := range parseRules {
		rule.apply(lowered, &filters)
	}

	// Fallback: with no type and no residual, forward short raw input
	// verbatim so the provider query is never empty for no reason.
	if filters.ProductType == "" && filters.Text == "" && len(trimmed) <= maxFallbackLength {
		filters.Text = trimmed
	}

	if p.enableDebugLogging {
		log.Printf("[PARSE] Input: %q -> %+v", text, filters)
	}

	return filters
}

// applyPriceRule sets MaxPrice from the first ceiling phrase, or failing
// that the first bare currency-prefixed amount.
func applyPriceRule(lowered string, f *domain.ParsedFilters) {
	match := priceCeilingPattern.FindStringSubmatch(lowered)
	if match == nil {
		match = currencyAmountPattern.FindStringSubmatch(lowered)
	}
	if match == nil {
		return
	}

	price, err := strconv.Atoi(match[1])
	if err != nil {
		return
	}
	f.MaxPrice = price
}

// applyColorRule picks the first known color present in the input,
// by scan order of the color table rather than position in the text.
func applyColorRule(lowered string, f *domain.ParsedFilters) {
	for _, color := range knownColors {
		if strings.Contains(lowered, color) {
			f.Color = color
			return
		}
	}
}

// applyTypeRule picks the first canonical product type whose synonym set
// has a substring hit.
func applyTypeRule(lowered string, f *domain.ParsedFilters) {
	for _, entry := range productTypes {
		for _, synonym := range entry.synonyms {
			if strings.Contains(lowered, synonym) {
				f.ProductType = entry.canonical
				return
			}
		}
	}
}

// applyStyleRule appends every style tag present, in table order.
func applyStyleRule(lowered string, f *domain.ParsedFilters) {
	for _, check := range styleTagChecks {
		for _, synonym := range check.synonyms {
			if strings.Contains(lowered, synonym) {
				f.StyleTags = append(f.StyleTags, check.tag)
				break
			}
		}
	}
}

// applyResidualRule collects literal category words into the free-text
// remainder, but only when no canonical type was matched.
func applyResidualRule(lowered string, f *domain.ParsedFilters) {
	if f.ProductType != "" {
		return
	}

	var present []string
	for _, word := range residualCategoryWords {
		if strings.Contains(lowered, word) {
			present = append(present, word)
		}
	}
	if len(present) > 0 {
		f.Text = strings.Join(present, " ")
	}
}
