package routes

import (
	"venuehive/handlers"
	"venuehive/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterPaymentRoutes registers checkout initiation and the return-leg
// reconciliation endpoint.
func RegisterPaymentRoutes(r *gin.Engine, h *handlers.CheckoutHandler) {
	checkout := r.Group("/api/checkout")
	checkout.Use(middleware.JWTAuthMiddleware())
	{
		checkout.POST("", h.StartCheckoutHandler)
		checkout.GET("/confirm", h.ConfirmCheckoutHandler)
	}
}
