package routes

import (
	"hackathon-portal-backend/internal/api/handlers"
	"hackathon-portal-backend/internal/api/middleware"
	"hackathon-portal-backend/internal/auth"
	"hackathon-portal-backend/internal/config"
	"hackathon-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the services the HTTP surface is built on
type Dependencies struct {
	Config *config.Config

	Teams       service.TeamServiceInterface
	Users       service.UserServiceInterface
	Settings    service.SettingsServiceInterface
	Logs        service.LogServiceInterface
	SheetSync   service.SheetSyncServiceInterface
	Suggestions service.SuggestionServiceInterface

	Verifier auth.TokenVerifier
	// Login is set only for the local identity provider.
	Login auth.PasswordLogin

	HealthChecks []handlers.HealthCheck
	Version      string
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(deps *Dependencies) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(deps.Config))

	authMiddleware := auth.NewAuthMiddleware(deps.Verifier, deps.Config)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(deps.Version, deps.HealthChecks...)
	authHandler := auth.NewAuthHandler(deps.Login, authMiddleware)
	teamHandler := handlers.NewTeamHandler(deps.Teams, deps.Suggestions)
	userHandler := handlers.NewUserHandler(deps.Users)
	settingsHandler := handlers.NewSettingsHandler(deps.Settings)
	logHandler := handlers.NewLogHandler(deps.Logs)
	sheetsHandler := handlers.NewSheetsHandler(deps.SheetSync)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")

	// Public routes
	{
		if deps.Login != nil {
			api.POST("/auth/login", authHandler.Login)
		}
		api.GET("/settings", settingsHandler.GetSettings)
		// an admin token lets staff register teams while registration is closed
		api.POST("/teams", authMiddleware.OptionalAuth(), teamHandler.CreateTeam)
		api.POST("/teams/check-duplicates", teamHandler.CheckDuplicates)
		api.POST("/teams/suggest-name", teamHandler.SuggestName)
	}

	// Streams accept the token as a query parameter
	streams := api.Group("", authMiddleware.RequireStreamAuth(), authMiddleware.RequireAdmin())
	{
		streams.GET("/settings/stream", settingsHandler.StreamSettings)
		streams.GET("/logs/stream", logHandler.StreamLogs)
	}

	authenticated := api.Group("", authMiddleware.RequireAuth())
	authenticated.GET("/me", authHandler.Me)

	admin := authenticated.Group("", authMiddleware.RequireAdmin())
	{
		teams := admin.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.GET("/by-slug/:slug", teamHandler.GetTeamBySlug)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.PUT("/:id", teamHandler.UpdateTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
		}

		admin.POST("/sheets/sync", sheetsHandler.SyncNow)

		settings := admin.Group("/settings")
		{
			settings.PUT("/registration", settingsHandler.UpdateRegistration)
			settings.DELETE("/registration/schedule", settingsHandler.ClearSchedule)
			settings.PUT("/problems", settingsHandler.UpdateProblems)
		}

		admin.GET("/logs", logHandler.ListLogs)
	}

	superAdmin := authenticated.Group("/users", authMiddleware.RequireSuperAdmin())
	{
		superAdmin.GET("", userHandler.ListUsers)
		superAdmin.POST("", userHandler.UpsertUser)
		superAdmin.DELETE("/:uid", userHandler.DeleteUser)
	}

	return router
}
