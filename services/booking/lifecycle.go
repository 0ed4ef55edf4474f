package booking

import "venuehive/models"

// transitions is the booking lifecycle graph. Completed and cancelled are
// terminal. Backward moves never appear; cancellation is the only exit from
// pending and confirmed.
var transitions = map[models.BookingStatus][]models.BookingStatus{
	models.BookingPending:   {models.BookingConfirmed, models.BookingCancelled},
	models.BookingConfirmed: {models.BookingCompleted, models.BookingCancelled},
}

// CanTransition reports whether the lifecycle graph allows from→to.
func CanTransition(from, to models.BookingStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// healStatus repairs the paid-but-still-pending race between payment
// reconciliation and status reads. Returns true when a repair was applied.
func healStatus(b *models.Booking) bool {
	if b.PaymentStatus == models.PaymentPaid && b.Status == models.BookingPending {
		b.Status = models.BookingConfirmed
		return true
	}
	return false
}
