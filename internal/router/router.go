// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/seedinglabs/seeding-backend/internal/config"
	"github.com/seedinglabs/seeding-backend/internal/handlers"
	"github.com/seedinglabs/seeding-backend/internal/middleware"
	"github.com/seedinglabs/seeding-backend/internal/services"
	"github.com/seedinglabs/seeding-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	storageService, _ := services.NewStorageService(cfg)
	accessService := services.NewAccessService(db, cfg)
	collectionService := services.NewCollectionService(db)
	catalogService := services.NewCatalogService(db)
	orderService := services.NewOrderService(db)
	exportService := services.NewExportService(db)
	reportService := services.NewReportService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(accessService)
	collectionHandler := handlers.NewCollectionHandler(collectionService, storageService)
	productHandler := handlers.NewProductHandler(catalogService, storageService)
	orderHandler := handlers.NewOrderHandler(orderService, exportService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	var origins []string
	if cfg.Frontend.BaseURL != "" {
		origins = []string{cfg.Frontend.BaseURL}
	}
	r.Use(middleware.CORS(origins))

	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())
	r.Use(middleware.AuditLogMiddleware(db))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.AuthRateLimit(), authHandler.Login)
			auth.POST("/recover", middleware.AuthRateLimit(), authHandler.Recover)
			auth.GET("/me", middleware.AuthRequired(), authHandler.Me)
		}

		// Influencer routes, scoped to the session's collection
		collection := v1.Group("/collection")
		collection.Use(middleware.AuthRequired(), middleware.InfluencerRequired())
		{
			collection.GET("", collectionHandler.PublicCollection)
			collection.POST("/orders", orderHandler.Submit)
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			admin.PUT("/credentials", authHandler.UpdateCredentials)

			collections := admin.Group("/collections")
			{
				collections.GET("", collectionHandler.List)
				collections.POST("", collectionHandler.Create)
				collections.GET("/:id", collectionHandler.Get)
				collections.PUT("/:id", collectionHandler.Update)
				collections.DELETE("/:id", collectionHandler.Delete)
				collections.POST("/:id/logo", middleware.UploadRateLimit(), collectionHandler.UploadLogo)
				collections.POST("/:id/lookbook/images", middleware.UploadRateLimit(), collectionHandler.UploadLookbookImage)

				// Catalog management
				collections.POST("/:id/products/import", productHandler.Import)
				collections.PUT("/:id/products/:productId", productHandler.Update)
				collections.DELETE("/:id/products/:productId", productHandler.Delete)
				collections.POST("/:id/products/:productId/images", middleware.UploadRateLimit(), productHandler.UploadImages)

				// Order ledger
				collections.GET("/:id/orders", orderHandler.List)
				collections.PATCH("/:id/orders/:orderId", orderHandler.UpdateField)
				collections.POST("/:id/orders/bulk-status", orderHandler.BulkStatus)
				collections.POST("/:id/orders/:orderId/duplicate", orderHandler.Duplicate)
				collections.DELETE("/:id/orders/:orderId", orderHandler.Delete)
				collections.POST("/:id/orders/export", orderHandler.Export)

				// Distribution report
				collections.GET("/:id/report", reportHandler.Get)
			}
		}
	}

	// Static file serving (for development)
	if cfg.Environment == "development" {
		r.Static("/uploads", cfg.Upload.LocalDir)
	}

	return r
}
