package routes

import (
	"github.com/gin-gonic/gin"

	bookinghandlers "rentora/internal/interfaces/http/handlers/booking"
	"rentora/internal/interfaces/http/middleware"
)

func SetupBookingRoutes(engine *gin.Engine, handler *bookinghandlers.BookingHandler, authMW *middleware.AuthMiddleware) {
	bookings := engine.Group("/bookings")
	bookings.Use(authMW.RequireAuth())
	{
		bookings.POST("", handler.CreateBooking)
		bookings.GET("", handler.ListBookings)

		bookings.POST("/:id/payment", handler.CompletePayment)
		bookings.POST("/:id/confirm", handler.ConfirmBooking)
		bookings.POST("/:id/cancel", handler.CancelBooking)
		bookings.POST("/:id/tickets", handler.AddSupportTicket)
		bookings.POST("/:id/tickets/:index/resolve", handler.ResolveSupportTicket)
	}
}
