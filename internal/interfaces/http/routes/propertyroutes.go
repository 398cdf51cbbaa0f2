package routes

import (
	"github.com/gin-gonic/gin"

	propertyhandlers "rentora/internal/interfaces/http/handlers/property"
	"rentora/internal/interfaces/http/middleware"
)

func SetupPropertyRoutes(engine *gin.Engine, handler *propertyhandlers.PropertyHandler, authMW *middleware.AuthMiddleware) {
	properties := engine.Group("/properties")
	properties.Use(authMW.RequireAuth())
	{
		properties.POST("", handler.CreateProperty)
		properties.GET("", handler.ListProperties)

		// action routes before the parameterized catch-alls
		properties.POST("/:id/approve", handler.ApproveProperty)
		properties.POST("/:id/reject", handler.RejectProperty)
		properties.POST("/:id/transfer-ownership", handler.TransferOwnership)

		properties.GET("/:id", handler.GetProperty)
		properties.DELETE("/:id", handler.DeleteProperty)
	}
}
