package routes

import (
	"log"

	"workshop-backend/internal/api/handlers"
	"workshop-backend/internal/api/middleware"
	"workshop-backend/internal/config"
	"workshop-backend/internal/models"
	"workshop-backend/internal/repository"
	"workshop-backend/internal/services"
	"workshop-backend/pkg/cache"
	"workshop-backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func SetupRoutes(router *gin.Engine, db *mongo.Database, cacheManager cache.CacheManager, cfg *config.Config) {
	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	for _, err := range []error{
		userRepo.CreateIndexes(),
		vehicleRepo.CreateIndexes(),
		settingsRepo.CreateIndexes(),
	} {
		if err != nil {
			log.Printf("Warning: failed to create indexes: %v", err)
		}
	}

	jwtUtil := jwt.NewJWTUtil(cfg.JWTSecret, cfg.JWTExpiry)

	// Initialize services
	authService := services.NewAuthService(userRepo, jwtUtil)
	vehicleService := services.NewVehicleService(vehicleRepo)
	settingsService := services.NewSettingsService(settingsRepo)
	documentService := services.NewDocumentService(vehicleRepo, settingsRepo)

	if cacheManager != nil {
		vehicleService.SetCacheManager(cacheManager)
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	vehicleHandler := handlers.NewVehicleHandler(vehicleService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	documentHandler := handlers.NewDocumentHandler(documentService)
	healthHandler := handlers.NewHealthHandler(db)

	// API routes
	api := router.Group("/api/v1")

	api.GET("/health", healthHandler.Health)

	// Public routes
	auth := api.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/register", authHandler.Register)
	}

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(jwtUtil))
	{
		vehicles := protected.Group("/vehicles")
		{
			vehicles.GET("", vehicleHandler.GetVehicles)
			vehicles.POST("", vehicleHandler.CreateVehicle)
			vehicles.GET("/:id", vehicleHandler.GetVehicle)
			vehicles.PUT("/:id", vehicleHandler.UpdateVehicle)
			vehicles.DELETE("/:id", middleware.RequireRole(models.RoleManager), vehicleHandler.DeleteVehicle)
			vehicles.POST("/:id/services", vehicleHandler.AddService)
			vehicles.GET("/:id/report", documentHandler.GetServiceReport)
			vehicles.GET("/:id/invoice", documentHandler.GetInvoice)
		}

		settings := protected.Group("/settings")
		settings.Use(middleware.RequireRole(models.RoleManager))
		{
			settings.GET("", settingsHandler.GetSettings)
			settings.PUT("", settingsHandler.UpdateSettings)
		}
	}
}
