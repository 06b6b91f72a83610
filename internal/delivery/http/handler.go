package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/stylecart/backend/internal/domain"
	"github.com/stylecart/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	catalog     *usecase.CatalogService
	composer    *usecase.OutfitComposer
	pricing     *usecase.PricingAdvisor
	recommender *usecase.RecommendationService
}

// NewHandler creates a new HTTP handler. The recommender may be nil when
// no text-generation service is configured.
func NewHandler(
	catalog *usecase.CatalogService,
	composer *usecase.OutfitComposer,
	pricing *usecase.PricingAdvisor,
	recommender *usecase.RecommendationService,
) *Handler {
	return &Handler{
		catalog:     catalog,
		composer:    composer,
		pricing:     pricing,
		recommender: recommender,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "stylecart-backend",
		"version": "1.0.0",
	})
}

type searchRequest struct {
	Query string `json:"query" binding:"required"`
	Limit int    `json:"limit"`
}

// SearchCatalog parses a free-text utterance and returns merged provider
// results. An empty product list is a valid response; the UI uses it to
// offer a broaden-your-search affordance.
func (h *Handler) SearchCatalog(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	products, filters := h.catalog.SearchText(c.Request.Context(), req.Query, req.Limit)
	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"filters":  filters,
	})
}

// TopProducts returns the unfiltered top-N listing.
func (h *Handler) TopProducts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	products := h.catalog.TopProducts(c.Request.Context(), limit)
	c.JSON(http.StatusOK, gin.H{"products": products})
}

type outfitRequest struct {
	Query     string  `json:"query" binding:"required"`
	MaxBudget float64 `json:"maxBudget"`
}

// ComposeOutfits searches the catalog for the utterance and bundles the
// results into top+bottom+footwear suggestions under the budget.
func (h *Handler) ComposeOutfits(c *gin.Context) {
	var req outfitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	products, _ := h.catalog.SearchText(c.Request.Context(), req.Query, 0)
	suggestions := h.composer.Compose(products, req.MaxBudget)
	c.JSON(http.StatusOK, gin.H{"outfits": suggestions})
}

// ShippingNudge reports the distance of a cart total to the free-shipping
// threshold and whether the nudge should be shown.
func (h *Handler) ShippingNudge(c *gin.Context) {
	total, err := strconv.ParseFloat(c.Query("total"), 64)
	if err != nil || total < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "total must be a non-negative number"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"amountRemaining": h.pricing.AmountUntilFreeShipping(total),
		"showNudge":       h.pricing.IsCloseToThreshold(total),
	})
}

// Recommend searches for candidates and asks the text-generation service
// to pick from them.
func (h *Handler) Recommend(c *gin.Context) {
	if h.recommender == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "recommendations are not configured"})
		return
	}

	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	candidates, _ := h.catalog.SearchText(c.Request.Context(), req.Query, req.Limit)
	picked, reply, err := h.recommender.Recommend(c.Request.Context(), req.Query, candidates)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusOK, gin.H{"products": []domain.Product{}, "message": "nothing to recommend"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "recommendation service is temporarily unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": picked,
		"message":  reply,
	})
}
