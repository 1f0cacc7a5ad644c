package http

import (
	"github.com/gin-gonic/gin"

	"github.com/ministore/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		catalog := v1.Group("/catalog")
		{
			catalog.GET("", handler.GetCatalog)
			catalog.GET("/products", handler.ListProducts)
			catalog.GET("/products/:id", handler.GetProduct)
			catalog.POST("/refresh", handler.RefreshCatalog)
		}

		sessions := v1.Group("/sessions")
		{
			sessions.POST("", handler.CreateSession)
			sessions.GET("/:id/view", handler.GetSessionView)

			events := sessions.Group("/:id/events")
			{
				events.POST("/search", handler.SearchEvent)
				events.POST("/facet", handler.FacetEvent)
				events.POST("/stock", handler.StockEvent)
				events.POST("/load-more", handler.LoadMoreEvent)
				events.POST("/clear", handler.ClearFiltersEvent)
			}
		}
	}

	return router
}
