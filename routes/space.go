package routes

import (
	"venuehive/handlers"
	"venuehive/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterSpaceRoutes registers listing browse and management endpoints.
func RegisterSpaceRoutes(r *gin.Engine, h *handlers.SpaceHandler, b *handlers.BookingHandler) {
	spaces := r.Group("/api/spaces")
	{
		spaces.GET("", h.ListSpacesHandler)
		spaces.GET("/:id", h.GetSpaceHandler)
		spaces.GET("/:id/availability", b.SpaceAvailabilityHandler)
	}

	hostSpaces := r.Group("/api/spaces")
	hostSpaces.Use(middleware.JWTAuthMiddleware())
	{
		hostSpaces.POST("", h.CreateSpaceHandler)
		hostSpaces.PUT("/:id", h.UpdateSpaceHandler)
		hostSpaces.DELETE("/:id", h.DeleteSpaceHandler)
	}

	host := r.Group("/api/host")
	host.Use(middleware.JWTAuthMiddleware())
	{
		host.GET("/spaces", h.ListMySpacesHandler)
	}
}
