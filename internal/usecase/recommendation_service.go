package usecase

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/stylecart/backend/internal/domain"
)

// maxRecommendations caps how many referenced products are returned
const maxRecommendations = 5

// RecommendationService asks the opaque text-generation service to pick
// from a candidate list, then scans the free-form reply for literal
// product IDs. The substring scan is a known-brittle extraction: the
// generator promises no structure, so an ID it rephrases is simply lost.
type RecommendationService struct {
	generator          domain.TextGenerator
	enableDebugLogging bool
}

// NewRecommendationService creates a recommendation service around a text
// generator.
func NewRecommendationService(generator domain.TextGenerator, enableDebugLogging bool) *RecommendationService {
	return &RecommendationService{
		generator:          generator,
		enableDebugLogging: enableDebugLogging,
	}
}

// Recommend prompts the generator with the utterance and candidates and
// returns the candidate products whose IDs appear in the reply, in order
// of first appearance, plus the raw reply text for display.
func (s *RecommendationService) Recommend(
	ctx context.Context,
	utterance string,
	candidates []domain.Product,
) ([]domain.Product, string, error) {
	if utterance == "" || len(candidates) == 0 {
		return nil, "", domain.ErrInvalidRequest
	}

	reply, err := s.generator.Generate(ctx, buildRecommendationPrompt(utterance, candidates))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrTextGenFailure, err)
	}

	picked := extractReferencedProducts(reply, candidates)
	if s.enableDebugLogging {
		log.Printf("[RECOMMEND] %d candidates, %d referenced in reply", len(candidates), len(picked))
	}

	if len(picked) > maxRecommendations {
		picked = picked[:maxRecommendations]
	}
	return picked, reply, nil
}

// buildRecommendationPrompt lists the candidates with their IDs so the
// generator has literal identifiers to echo back.
func buildRecommendationPrompt(utterance string, candidates []domain.Product) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a shopping assistant. The customer said: %q\n\nAvailable products:\n", utterance)
	for _, p := range candidates {
		fmt.Fprintf(&b, "- %s: %s (%.2f)\n", p.ID, p.Title, p.Price)
	}
	b.WriteString("\nRecommend up to 3 products, mentioning each product id exactly as written.")
	return b.String()
}

// extractReferencedProducts returns the candidates whose IDs occur in the
// reply, ordered by position of first occurrence.
func extractReferencedProducts(reply string, candidates []domain.Product) []domain.Product {
	type hit struct {
		position int
		product  domain.Product
	}

	var hits []hit
	for _, candidate := range candidates {
		if idx := strings.Index(reply, candidate.ID); idx >= 0 {
			hits = append(hits, hit{position: idx, product: candidate})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].position < hits[j].position })

	products := make([]domain.Product, 0, len(hits))
	for _, h := range hits {
		products = append(products, h.product)
	}
	return products
}
