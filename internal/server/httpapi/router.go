package httpapi

import (
	"github.com/Shivam7262/Writely/internal/logging"
	"github.com/Shivam7262/Writely/internal/server/services"
	"github.com/gin-gonic/gin"
)

// SetupRouter configures the gin engine and mounts the /api routes.
func SetupRouter(logger logging.Logger, users *services.UserService, documents *services.DocumentService) *gin.Engine {
	r := gin.New()
	r.Use(requestLogger(logger), gin.Recovery())

	api := r.Group("/api")

	authHandler := NewAuthHandler(users, logger)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(bearerAuth(users))

	protected.GET("/auth/me", authHandler.Me)

	documentHandler := NewDocumentHandler(documents, logger)
	protected.GET("/documents", documentHandler.List)
	protected.POST("/documents", documentHandler.Create)
	protected.GET("/documents/:id", documentHandler.Get)
	protected.PUT("/documents/:id", documentHandler.Update)
	protected.DELETE("/documents/:id", documentHandler.Delete)

	return r
}
