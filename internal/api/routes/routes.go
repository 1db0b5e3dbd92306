package routes

import (
	"grow-backend/internal/api/handlers"
	"grow-backend/internal/api/middleware"
	"grow-backend/internal/config"
	"grow-backend/internal/logger"
	"grow-backend/internal/repository"
	"grow-backend/internal/search"
	"grow-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()
	log := logger.New()

	// Initialize repositories
	projectRepo := repository.NewProjectRepository(db)
	acquiredSkillRepo := repository.NewAcquiredSkillRepository(db)
	teamSkillsRepo := repository.NewTeamSkillsRepository(db)

	// Initialize the search index: the hosted service when configured,
	// otherwise direct evaluation over the record store.
	var index search.Index
	if cfg.SearchServiceURL != "" {
		index = search.NewHTTPIndex(search.HTTPIndexOptions{
			BaseURL:     cfg.SearchServiceURL,
			IndexName:   cfg.SearchIndexName,
			IndexerName: cfg.SearchIndexer,
			APIKey:      cfg.SearchAPIKey,
		}, log)
	} else {
		index = search.NewStoreIndex(projectRepo)
	}

	// Initialize services
	projectService := service.NewProjectService(projectRepo, acquiredSkillRepo, index, validator, log)
	discoveryService := service.NewDiscoveryService(index, teamSkillsRepo)
	teamSkillsService := service.NewTeamSkillsService(teamSkillsRepo, validator)
	acquiredSkillService := service.NewAcquiredSkillService(acquiredSkillRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	projectHandler := handlers.NewProjectHandler(projectService)
	discoveryHandler := handlers.NewDiscoveryHandler(discoveryService)
	teamSkillsHandler := handlers.NewTeamSkillsHandler(teamSkillsService)
	acquiredSkillHandler := handlers.NewAcquiredSkillHandler(acquiredSkillService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	v1 := router.Group("/api/v1")
	{
		projects := v1.Group("/projects")
		{
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
			projects.POST("/:id/join", projectHandler.JoinProject)
			projects.POST("/:id/leave", projectHandler.LeaveProject)
			projects.POST("/:id/close", projectHandler.CloseProject)
		}

		v1.GET("/discover", discoveryHandler.Discover)
		v1.GET("/skills", discoveryHandler.UniqueSkills)
		v1.GET("/owners", discoveryHandler.TopOwnerNames)

		teams := v1.Group("/teams")
		{
			teams.GET("/:teamId/skills", teamSkillsHandler.GetTeamSkills)
			teams.PUT("/:teamId/skills", teamSkillsHandler.UpsertTeamSkills)
		}

		v1.GET("/users/:userId/acquired-skills", acquiredSkillHandler.ListAcquiredSkills)
	}

	return router
}
