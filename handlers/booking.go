package handlers

import (
	"errors"
	"net/http"
	"strconv"

	bookingRepo "venuehive/database/repository/booking"
	spaceRepo "venuehive/database/repository/space"
	"venuehive/middleware"
	"venuehive/models"
	"venuehive/services/booking"
	"venuehive/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes booking creation, reads and lifecycle endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateBookingHandler validates and persists a pending booking. The response
// reports requested vs booked days so a truncated range is visible.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var input booking.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	actor := middleware.ActorFromContext(c)
	result, err := h.Service.CreateBooking(actor, input)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// GetBookingHandler returns one booking visible to the caller.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	b, err := h.Service.GetBooking(actor, c.Param("id"))
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListMyBookingsHandler returns the caller's bookings. An empty list is a
// success, not an error.
func (h *BookingHandler) ListMyBookingsHandler(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	bookings, err := h.Service.ListClientBookings(actor)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ListHostBookingsHandler returns bookings across the caller's spaces.
func (h *BookingHandler) ListHostBookingsHandler(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	bookings, err := h.Service.ListHostBookings(actor)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// UpdateBookingStatusHandler applies a host-driven lifecycle transition.
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	var input struct {
		Status models.BookingStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Status == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "status is required")
		return
	}

	actor := middleware.ActorFromContext(c)
	b, err := h.Service.UpdateStatus(actor, c.Param("id"), input.Status)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// SpaceAvailabilityHandler probes the bookable consecutive range for a space.
func (h *BookingHandler) SpaceAvailabilityHandler(c *gin.Context) {
	start := c.Query("start")
	if start == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "start date is required")
		return
	}
	days := 1
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "days must be a positive integer")
			return
		}
		days = parsed
	}

	result, err := h.Service.ResolveAvailability(c.Param("id"), start, days)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *BookingHandler) respondBookingError(c *gin.Context, err error) {
	var vErr *booking.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "field": vErr.Field, "message": vErr.Message})
	case errors.Is(err, booking.ErrNotAuthorized):
		utils.JSONError(c, http.StatusForbidden, "not authorized", "only the host of this space may change the booking")
	case errors.Is(err, booking.ErrIllegalTransition):
		utils.JSONError(c, http.StatusConflict, "illegal transition", "the requested status change is not allowed")
	case errors.Is(err, booking.ErrDateUnavailable):
		utils.JSONError(c, http.StatusConflict, "date unavailable", "the requested date is already booked or not offered")
	case errors.Is(err, bookingRepo.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking not found", "")
	case errors.Is(err, spaceRepo.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "space not found", "")
	default:
		h.Logger.Error("booking operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "operation failed", "please try again")
	}
}
