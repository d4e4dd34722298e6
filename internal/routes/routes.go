package routes

import (
	"mentorhub_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the REST API under /api plus the health probe.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api")
	{
		appHandlers.MentorHandler.RegisterRoutes(api)
		appHandlers.MenteeHandler.RegisterRoutes(api)
	}

	appHandlers.HealthHandler.RegisterRoutes(ginRouter)
}
