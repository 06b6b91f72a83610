package main

import (
	"fmt"
	"log"
	"os"

	"github.com/stylecart/backend/config"
	httpDelivery "github.com/stylecart/backend/internal/delivery/http"
	"github.com/stylecart/backend/internal/infrastructure/amazon"
	"github.com/stylecart/backend/internal/infrastructure/cache"
	"github.com/stylecart/backend/internal/infrastructure/fakestore"
	"github.com/stylecart/backend/internal/infrastructure/llm"
	"github.com/stylecart/backend/internal/infrastructure/staticcatalog"
	"github.com/stylecart/backend/internal/infrastructure/storefront"
	"github.com/stylecart/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting StyleCart Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	debug := cfg.Server.Environment == "development"

	// Catalog providers: the storefront is primary; marketplaces and the
	// static demo catalog are secondaries in fixed registration order.
	storefrontClient := storefront.NewClient(cfg.Storefront.BaseURL, cfg.Storefront.AccessToken)
	fakestoreClient := fakestore.NewClient(cfg.FakeStore.BaseURL)
	amazonClient := amazon.NewClient(cfg.Amazon.BaseURL, cfg.Amazon.APIKey)
	staticProvider := staticcatalog.NewProvider()

	if debug {
		storefrontClient.SetDebug(true)
		fakestoreClient.SetDebug(true)
		amazonClient.SetDebug(true)
	}

	for _, provider := range []struct {
		name    string
		enabled bool
	}{
		{"storefront", storefrontClient.Enabled()},
		{"fakestore", fakestoreClient.Enabled()},
		{"amazon", amazonClient.Enabled()},
		{"static", staticProvider.Enabled()},
	} {
		log.Printf("Provider %s enabled: %v", provider.name, provider.enabled)
	}

	aggregator := usecase.NewCatalogAggregator(
		storefrontClient,
		fakestoreClient,
		amazonClient,
		staticProvider,
	)

	// Initialize usecase layer
	memoryCache := cache.NewMemoryCache()
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	catalogService := usecase.NewCatalogService(
		memoryCache,
		aggregator,
		usecase.CatalogServiceConfig{
			CacheTTL:           cfg.Cache.TTL,
			DefaultLimit:       cfg.Search.DefaultLimit,
			EnableDebugLogging: debug,
		},
	)

	composer := usecase.NewOutfitComposer()
	pricing := usecase.NewPricingAdvisor(cfg.Shipping.FreeThreshold, cfg.Shipping.NudgeWindow)
	log.Printf("Shipping nudge: threshold=%.0f window=%.0f", cfg.Shipping.FreeThreshold, cfg.Shipping.NudgeWindow)

	var recommender *usecase.RecommendationService
	llmClient := llm.NewClient(cfg.LLM.BaseURL, cfg.LLM.APIKey, cfg.LLM.Model)
	if llmClient.Enabled() {
		recommender = usecase.NewRecommendationService(llmClient, debug)
		log.Printf("Recommendations enabled: %s (model %s)", cfg.LLM.BaseURL, cfg.LLM.Model)
	} else {
		log.Printf("Recommendations disabled: no LLM API key configured")
	}

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(catalogService, composer, pricing, recommender)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
