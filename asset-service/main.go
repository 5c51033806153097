package main

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"assetdesk-backend/asset-service/handlers"
	"assetdesk-backend/asset-service/middleware"
	"assetdesk-backend/asset-service/services"
	"assetdesk-backend/shared/config"
	"assetdesk-backend/shared/database"
	"assetdesk-backend/shared/utils/cache"

	_ "assetdesk-backend/docs"
)

func main() {
	// Load configuration
	config.LoadConfig()
	cfg := config.GetConfig()

	// Initialize storage service
	storageService, err := services.NewStorageService()
	if err != nil {
		log.Fatalf("❌ Failed to initialize storage service: %v", err)
	}

	if err := storageService.TestConnection(); err != nil {
		log.Fatalf("❌ Storage connection test failed: %v", err)
	}

	// Initialize database
	if err := database.InitDatabase(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDatabase()

	// Seed initial data
	if err := database.SeedDatabase(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	// Cache is best-effort; listings fall through to the database without it
	if err := cache.InitCacheManager(); err != nil {
		log.Printf("❌ Cache unavailable, continuing without it: %v", err)
	}

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter(5 * time.Minute)
	rateConfig := middleware.RateLimitConfig{
		MaxRequests:   cfg.GetRateLimitMaxRequests(),
		TimeWindow:    time.Duration(cfg.GetRateLimitTimeWindowSeconds()) * time.Second,
		BlockDuration: time.Duration(cfg.GetRateLimitBlockDurationMinutes()) * time.Minute,
	}
	uploadRateConfig := middleware.RateLimitConfig{
		MaxRequests:   cfg.GetRateLimitMaxRequests() / 4,
		TimeWindow:    time.Duration(cfg.GetRateLimitTimeWindowSeconds()) * time.Second,
		BlockDuration: time.Duration(cfg.GetRateLimitBlockDurationMinutes()) * time.Minute,
	}

	// Initialize Gin router
	router := gin.Default()

	router.Use(cors.Default())
	router.Use(rateLimiter.RateLimitMiddleware(rateConfig))

	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware())

	// File Routes
	api.GET("/files", handlers.GetFiles)
	api.POST("/files/upload", rateLimiter.UploadRateLimitMiddleware(uploadRateConfig), handlers.UploadFile)
	api.GET("/files/:id/download", handlers.DownloadFile)
	api.DELETE("/files/:id", handlers.DeleteFile)

	// Organization Routes
	api.GET("/organizations", handlers.GetOrganizations)
	api.POST("/organizations", handlers.CreateOrganization)
	api.PUT("/organizations/:id", handlers.UpdateOrganization)
	api.DELETE("/organizations/:id", handlers.DeleteOrganization)
	api.POST("/organizations/:id/invitations", handlers.CreateInvitation)
	api.GET("/organizations/:id/invitations", handlers.GetInvitations)
	api.POST("/invitations/accept", handlers.AcceptInvitation)

	// Persona Routes
	api.GET("/personas", handlers.GetPersonas)
	api.POST("/personas", handlers.CreatePersona)
	api.PUT("/personas/:id", handlers.UpdatePersona)
	api.POST("/personas/:id/archive", handlers.ArchivePersona)
	api.POST("/personas/:id/restore", handlers.RestorePersona)

	// Evidence Routes
	api.GET("/evidences", handlers.GetEvidences)
	api.POST("/evidences", rateLimiter.UploadRateLimitMiddleware(uploadRateConfig), handlers.UploadEvidence)
	api.DELETE("/evidences/:id", handlers.DeleteEvidence)

	// Report Routes
	api.GET("/reports", handlers.GetReports)
	api.POST("/reports", handlers.CreateReport)
	api.DELETE("/reports/:id", handlers.DeleteReport)

	// Workflow Routes
	api.GET("/workflow/items", handlers.GetWorkflowItems)
	api.POST("/workflow/items", handlers.CreateWorkflowItem)
	api.POST("/workflow/items/:id/advance", handlers.AdvanceWorkflowItem)
	api.GET("/workflow/items/:id/transitions", handlers.GetWorkflowTransitions)
	api.GET("/match-zone/files", handlers.GetMatchZoneFiles)

	// Email dispatch
	api.POST("/send-email", handlers.SendEmail)

	// Cache stats
	api.GET("/cache/stats", handlers.GetCacheStats)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "asset-service",
			"message": "Asset service is running",
		})
	})

	// Swagger UI
	if gin.Mode() != gin.ReleaseMode {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Start server
	port := strings.Split(cfg.AssetServiceURL, ":")[2]
	log.Printf("Asset Service starting on port %s...", port)
	router.Run(":" + port)
}
