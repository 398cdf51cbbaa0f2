package routes

import (
	"github.com/gin-gonic/gin"

	reporthandlers "rentora/internal/interfaces/http/handlers/report"
	"rentora/internal/interfaces/http/middleware"
)

func SetupReportRoutes(engine *gin.Engine, handler *reporthandlers.ReportHandler, authMW *middleware.AuthMiddleware) {
	reports := engine.Group("/reports")
	reports.Use(authMW.RequireAuth())
	{
		reports.POST("", handler.SubmitReport)
		reports.GET("", handler.ListReports)

		reports.POST("/:id/review", handler.ReviewReport)
		reports.POST("/:id/forward", handler.ForwardReport)
		reports.POST("/:id/acknowledge", handler.AcknowledgeReport)
	}
}
