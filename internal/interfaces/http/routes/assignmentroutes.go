package routes

import (
	"github.com/gin-gonic/gin"

	assignmenthandlers "rentora/internal/interfaces/http/handlers/assignment"
	"rentora/internal/interfaces/http/middleware"
)

func SetupAssignmentRoutes(engine *gin.Engine, handler *assignmenthandlers.AssignmentHandler, authMW *middleware.AuthMiddleware) {
	assignments := engine.Group("/assignments")
	assignments.Use(authMW.RequireAuth())
	{
		assignments.POST("", handler.AssignStaff)
		assignments.GET("", handler.ListAssignments)

		assignments.POST("/:id/accept", handler.AcceptAssignment)
		assignments.POST("/:id/start", handler.StartAssignment)
		assignments.POST("/:id/complete", handler.CompleteAssignment)
		assignments.POST("/:id/cancel", handler.CancelAssignment)
	}
}
