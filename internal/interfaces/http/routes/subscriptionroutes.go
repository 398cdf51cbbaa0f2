package routes

import (
	"github.com/gin-gonic/gin"

	subscriptionhandlers "rentora/internal/interfaces/http/handlers/subscription"
	"rentora/internal/interfaces/http/middleware"
)

func SetupSubscriptionRoutes(engine *gin.Engine, handler *subscriptionhandlers.SubscriptionHandler, authMW *middleware.AuthMiddleware) {
	// the plan catalog is public
	engine.GET("/subscriptions/plans", handler.ListPlans)

	subscriptions := engine.Group("/subscriptions")
	subscriptions.Use(authMW.RequireAuth())
	{
		subscriptions.POST("", handler.CreateSubscription)
		subscriptions.GET("", handler.ListSubscriptions)
		subscriptions.POST("/:id/cancel", handler.CancelSubscription)
		subscriptions.GET("/:id", handler.GetSubscription)
	}
}
