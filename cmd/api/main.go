package main

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"os"

	"billtracker/internal/config"
	"billtracker/internal/database"
	"billtracker/internal/extraction"
	"billtracker/internal/handlers"
	"billtracker/internal/logger"
	"billtracker/internal/middleware"
	"billtracker/internal/services"
	"billtracker/internal/uploads"
	"billtracker/internal/validator"
	"billtracker/web"

	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Uploaded image storage
	store, err := uploads.NewStore(appConfig.UploadsDir)
	if err != nil {
		return fmt.Errorf("failed to prepare uploads directory: %w", err)
	}

	// Extraction gateway. A missing API key is not fatal: uploads still
	// work, extraction reports failure and the user enters fields manually.
	var extractor extraction.Extractor = extraction.Disabled{}
	if appConfig.GeminiAPIKey != "" {
		gemini, err := extraction.NewGemini(context.Background(), appConfig.GeminiAPIKey, appConfig.GeminiModel)
		if err != nil {
			return fmt.Errorf("failed to create extraction client: %w", err)
		}
		defer gemini.Close()
		extractor = gemini
	} else {
		log.Warn("GEMINI_API_KEY not set; bill extraction is disabled")
	}

	// Register custom request validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	billService := services.NewBillService(db)
	insightsService := services.NewInsightsService(db)

	// Initialize handlers
	uploadHandler := handlers.NewUploadHandler(extractor, store, appConfig.ExtractionTimeout)
	billHandler := handlers.NewBillHandler(billService)
	insightsHandler := handlers.NewInsightsHandler(insightsService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API routes
	router.POST("/upload", uploadHandler.Upload)
	router.POST("/bills", billHandler.CreateBill)
	router.GET("/bills", billHandler.ListBills)
	router.DELETE("/bills/:id", billHandler.DeleteBill)
	router.GET("/insights", insightsHandler.GetInsights)

	// Stored bill images
	router.Static("/uploads", store.Dir())

	// Embedded client application
	staticFS, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		return fmt.Errorf("failed to load embedded client: %w", err)
	}
	router.StaticFS("/static", http.FS(staticFS))
	router.GET("/", func(c *gin.Context) {
		page, err := fs.ReadFile(staticFS, "index.html")
		if err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
	})

	log.Infof("Starting bill tracker server on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
