package handlers

import (
	"errors"
	"net/http"

	spaceRepo "venuehive/database/repository/space"
	"venuehive/middleware"
	"venuehive/services/payment"
	"venuehive/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CheckoutHandler hands clients off to the payment provider and reconciles
// their return.
type CheckoutHandler struct {
	Payments payment.PaymentService
	Logger   *zap.Logger
}

func NewCheckoutHandler(payments payment.PaymentService, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{Payments: payments, Logger: logger}
}

// StartCheckoutHandler creates a payment session and returns its URL. The
// caller is expected to navigate the user there.
func (h *CheckoutHandler) StartCheckoutHandler(c *gin.Context) {
	var input payment.CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if input.SpaceID == "" || input.Price <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "space_id and a positive price are required")
		return
	}

	actor := middleware.ActorFromContext(c)
	url, err := h.Payments.StartCheckout(actor, input)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "space not found", "")
			return
		}
		h.Logger.Error("checkout initiation failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "checkout initiation failed", "the payment provider could not be reached")
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// ConfirmCheckoutHandler reconciles the opaque session reference the payment
// provider redirects back with. A missing match is still a 200: the degraded
// confirmation carries a display reference instead of a booking.
func (h *CheckoutHandler) ConfirmCheckoutHandler(c *gin.Context) {
	sessionRef := c.Query("session_ref")
	if sessionRef == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "session_ref is required")
		return
	}

	actor := middleware.ActorFromContext(c)
	confirmation, err := h.Payments.Reconcile(actor, sessionRef)
	if err != nil {
		h.Logger.Error("payment reconciliation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "reconciliation failed", "payment state could not be confirmed")
		return
	}
	c.JSON(http.StatusOK, confirmation)
}
