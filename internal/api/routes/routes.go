package routes

import (
	"fmt"
	"time"

	"pc-build-tracker-backend/internal/api/handlers"
	"pc-build-tracker-backend/internal/api/middleware"
	"pc-build-tracker-backend/internal/auth"
	"pc-build-tracker-backend/internal/config"
	"pc-build-tracker-backend/internal/repository"
	"pc-build-tracker-backend/internal/service"
	"pc-build-tracker-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, images storage.ImageStore) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	if cfg.RateLimitRPS > 0 {
		router.Use(middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).Middleware())
	}

	validator := service.NewValidator()

	store := repository.NewStore(db)

	componentService := service.NewComponentService(store, validator)
	buildService := service.NewBuildService(store, images, validator)

	tokens, err := auth.NewTokenService(cfg.JWTSecret, time.Duration(cfg.JWTTTLMinutes)*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	authMiddleware := auth.NewAuthMiddleware(tokens)

	healthHandler := handlers.NewHealthHandler(db)
	componentHandler := handlers.NewComponentHandler(componentService)
	buildHandler := handlers.NewBuildHandler(buildService, cfg.ImageMaxBytes)

	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	v1 := router.Group("/api/v1")

	public := v1.Group("/public")
	public.Use(authMiddleware.OptionalAuth())
	{
		public.GET("/builds/:id", buildHandler.GetPublicBuild)
	}

	secured := v1.Group("")
	secured.Use(authMiddleware.RequireAuth())
	{
		components := secured.Group("/components")
		{
			components.GET("", componentHandler.ListComponents)
			components.POST("", componentHandler.CreateComponent)
			components.GET("/:id", componentHandler.GetComponent)
			components.PATCH("/:id", componentHandler.UpdateComponent)
			components.DELETE("/:id", componentHandler.DeleteComponent)
		}

		builds := secured.Group("/builds")
		{
			builds.GET("", buildHandler.ListBuilds)
			builds.POST("", buildHandler.CreateBuild)
			builds.GET("/:id", buildHandler.GetBuild)
			builds.PATCH("/:id", buildHandler.PatchBuild)
			builds.DELETE("/:id", buildHandler.DeleteBuild)
			builds.POST("/:id/duplicate", buildHandler.DuplicateBuild)
			builds.POST("/:id/components", buildHandler.AddComponent)
			builds.PUT("/:id/components/:componentId", buildHandler.ReplaceComponent)
			builds.DELETE("/:id/components/:componentId", buildHandler.RemoveComponent)
			builds.PUT("/:id/image", buildHandler.SetImage)
			builds.DELETE("/:id/image", buildHandler.ClearImage)
		}
	}

	return router, nil
}
