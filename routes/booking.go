package routes

import (
	"venuehive/handlers"
	"venuehive/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers client and host booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, h *handlers.BookingHandler) {
	bookings := r.Group("/api/bookings")
	bookings.Use(middleware.JWTAuthMiddleware())
	{
		bookings.POST("", h.CreateBookingHandler)
		bookings.GET("", h.ListMyBookingsHandler)
		bookings.GET("/:id", h.GetBookingHandler)
	}

	host := r.Group("/api/host/bookings")
	host.Use(middleware.JWTAuthMiddleware())
	{
		host.GET("", h.ListHostBookingsHandler)
		host.PATCH("/:id/status", h.UpdateBookingStatusHandler)
	}
}
