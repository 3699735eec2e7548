package router

import (
	"github.com/gin-gonic/gin"

	"immodok/internal/handler"
	"immodok/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	processH *handler.ProcessHandler,
	objectsH *handler.ObjectsHandler,
	fileH *handler.FileHandler,
	healthH *handler.HealthHandler,
	corsOrigins []string,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLog())
	r.Use(middleware.CORS(corsOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")
	v1.POST("/process", processH.Process)
	v1.GET("/objects", objectsH.List)
	v1.GET("/files/:id", fileH.Download)

	return r
}
