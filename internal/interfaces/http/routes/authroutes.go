package routes

import (
	"github.com/gin-gonic/gin"

	authhandlers "rentora/internal/interfaces/http/handlers/auth"
)

func SetupAuthRoutes(engine *gin.Engine, handler *authhandlers.AuthHandler) {
	auth := engine.Group("/auth")
	{
		auth.POST("/register", handler.Register)
		auth.POST("/login", handler.Login)
		auth.POST("/refresh", handler.Refresh)
	}
}
