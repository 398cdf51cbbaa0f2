package routes

import (
	"github.com/gin-gonic/gin"

	staffhandlers "rentora/internal/interfaces/http/handlers/staff"
	"rentora/internal/interfaces/http/middleware"
)

func SetupStaffRoutes(engine *gin.Engine, handler *staffhandlers.StaffHandler, authMW *middleware.AuthMiddleware) {
	staff := engine.Group("/staff")
	staff.Use(authMW.RequireAuth())
	{
		staff.POST("", handler.CreateStaff)
		staff.DELETE("/:id", handler.RemoveStaff)
	}
}
