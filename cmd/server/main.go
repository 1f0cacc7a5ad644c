package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/ministore/backend/config"
	httpDelivery "github.com/ministore/backend/internal/delivery/http"
	"github.com/ministore/backend/internal/domain"
	"github.com/ministore/backend/internal/infrastructure/cache"
	"github.com/ministore/backend/internal/infrastructure/feed"
	"github.com/ministore/backend/internal/usecase"
)

func main() {
	// Local overrides for development; missing .env is fine
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting MiniStore Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Feed: %s", cfg.Feed.URL)
	log.Printf("Facet field: %s, page size: %d", cfg.Catalog.FacetField, cfg.Catalog.PageSize)

	// Initialize infrastructure dependencies
	feedClient := feed.NewClient(cfg.Feed.URL, cfg.Feed.Timeout)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		feedClient.SetDebug(true)
		log.Printf("Feed client debug mode enabled")
	}

	// Initialize usecase layer
	catalogService := usecase.NewCatalogService(feedClient, usecase.CatalogServiceConfig{
		FacetField:         domain.FacetField(cfg.Catalog.FacetField),
		PageSize:           cfg.Catalog.PageSize,
		RetryDelay:         cfg.Feed.RetryDelay,
		EnableDebugLogging: cfg.Catalog.EnableDebugLogging,
	})

	// Initial load in the background: a dead feed must not block startup,
	// and the service arms its own one-shot retry on first-load failure.
	go func() {
		if err := catalogService.Refresh(context.Background()); err != nil {
			log.Printf("Initial catalog load failed: %v", err)
		}
	}()

	// Session store on top of the TTL cache
	sessionCache := cache.NewMemoryCache()
	sessionStore := httpDelivery.NewSessionStore(
		sessionCache,
		catalogService,
		cfg.Session.TTL,
		cfg.Catalog.SearchDebounce,
	)
	log.Printf("Session TTL: %s, search debounce: %s", cfg.Session.TTL, cfg.Catalog.SearchDebounce)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(catalogService, sessionStore)

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
