package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"call-quality-backend/internal/api/handlers"
	"call-quality-backend/internal/api/middleware"
	"call-quality-backend/internal/config"
	"call-quality-backend/internal/pipeline"
	"call-quality-backend/internal/repository"
)

// SetupRoutes configures all the routes for the ops API
func SetupRoutes(db *gorm.DB, cfg *config.Config, metrics *pipeline.Metrics) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())

	callRepo := repository.NewCallRepository(db)
	analysisRepo := repository.NewAnalysisRepository(db)

	healthHandler := handlers.NewHealthHandler(db)
	pipelineHandler := handlers.NewPipelineHandler(callRepo, metrics)
	callsHandler := handlers.NewCallsHandler(callRepo, analysisRepo)

	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)

	api := router.Group("/api/v1")
	{
		api.GET("/pipeline/status", pipelineHandler.Status)
		api.GET("/calls", callsHandler.ListCalls)
		api.GET("/calls/:call_id", callsHandler.GetCall)
	}

	return router
}
