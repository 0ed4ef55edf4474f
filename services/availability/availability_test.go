package availability

import (
	"testing"

	"venuehive/models"

	"github.com/stretchr/testify/assert"
)

func blockingBooking(date string) models.Booking {
	return models.Booking{Date: date, Status: models.BookingConfirmed, PaymentStatus: models.PaymentPending}
}

func TestIndexBlockedDates(t *testing.T) {
	space := &models.Space{ID: "s1"}
	idx := NewIndex(space, []models.Booking{
		blockingBooking("2025-06-02"),
		{Date: "2025-06-03", Status: models.BookingPending, PaymentStatus: models.PaymentPaid},
	})

	assert.False(t, idx.IsAvailable("2025-06-02"), "confirmed booking blocks")
	assert.False(t, idx.IsAvailable("2025-06-03"), "paid booking blocks even while status is pending")
	assert.True(t, idx.IsAvailable("2025-06-04"), "unblocked date with no whitelist is available")
}

func TestIndexIgnoresNonBlockingBookings(t *testing.T) {
	idx := NewIndex(&models.Space{}, []models.Booking{
		{Date: "2025-06-02", Status: models.BookingPending, PaymentStatus: models.PaymentPending},
		{Date: "2025-06-03", Status: models.BookingCancelled, PaymentStatus: models.PaymentPending},
	})

	assert.True(t, idx.IsAvailable("2025-06-02"))
	assert.True(t, idx.IsAvailable("2025-06-03"))
}

func TestIndexWhitelist(t *testing.T) {
	space := &models.Space{
		AvailableDates: []string{"2025-06-01", "2025-06-02"},
	}
	idx := NewIndex(space, []models.Booking{blockingBooking("2025-06-02")})

	assert.True(t, idx.IsAvailable("2025-06-01"), "whitelisted and unbooked")
	assert.False(t, idx.IsAvailable("2025-06-02"), "booking blocks even a whitelisted date")
	assert.False(t, idx.IsAvailable("2025-06-03"), "outside the whitelist")
}

func TestIndexMultiDayBookingBlocksWholeSpan(t *testing.T) {
	booking := blockingBooking("2025-07-10")
	booking.Days = 3
	idx := NewIndex(&models.Space{}, []models.Booking{booking})

	assert.False(t, idx.IsAvailable("2025-07-10"))
	assert.False(t, idx.IsAvailable("2025-07-11"))
	assert.False(t, idx.IsAvailable("2025-07-12"))
	assert.True(t, idx.IsAvailable("2025-07-13"), "day after the span is free")
	assert.True(t, idx.IsAvailable("2025-07-09"), "day before the span is free")
}

func TestIndexZeroDaysBlocksStartDate(t *testing.T) {
	// Bookings written before the day count was recorded have Days 0; they
	// still block their own date.
	booking := blockingBooking("2025-07-10")
	booking.Days = 0
	idx := NewIndex(&models.Space{}, []models.Booking{booking})

	assert.False(t, idx.IsAvailable("2025-07-10"))
	assert.True(t, idx.IsAvailable("2025-07-11"))
}

func TestIndexEmptyWhitelistMeansOpen(t *testing.T) {
	idx := NewIndex(&models.Space{AvailableDates: nil}, nil)
	assert.True(t, idx.IsAvailable("2030-01-15"))
}
