package routes

import (
	"github.com/gin-gonic/gin"

	maintenancehandlers "rentora/internal/interfaces/http/handlers/maintenance"
	"rentora/internal/interfaces/http/middleware"
)

func SetupMaintenanceRoutes(engine *gin.Engine, handler *maintenancehandlers.MaintenanceHandler, authMW *middleware.AuthMiddleware) {
	maintenance := engine.Group("/maintenance")
	maintenance.Use(authMW.RequireAuth())
	{
		maintenance.POST("", handler.CreateTicket)
		maintenance.GET("", handler.ListTickets)

		maintenance.POST("/:id/assign", handler.AssignStaff)
		maintenance.POST("/:id/complete", handler.CompleteTicket)
		maintenance.POST("/:id/cancel", handler.CancelTicket)
		maintenance.POST("/:id/feedback", handler.AddFeedback)
	}
}
