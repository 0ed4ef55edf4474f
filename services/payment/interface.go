package payment

import "venuehive/models"

// CheckoutInput carries the pricing context for a payment session. BookingID
// and Days are optional; when present they travel in the session metadata.
type CheckoutInput struct {
	SpaceID   string  `json:"space_id"`
	Price     float64 `json:"price"`
	Days      int     `json:"days"`
	BookingID string  `json:"booking_id"`
}

// PaymentService creates checkout sessions and reconciles the provider's
// confirmation callback back onto a booking.
type PaymentService interface {
	// StartCheckout creates an external payment session and returns the URL
	// to hand the user to. Nothing is persisted on failure.
	StartCheckout(actor models.Actor, input CheckoutInput) (string, error)
	// Reconcile matches an opaque session reference to the actor's most
	// recent pending unreferenced booking and advances it to paid/confirmed.
	// When nothing matches it returns a synthesized confirmation instead of
	// an error: the user still needs a confirmation screen.
	Reconcile(actor models.Actor, sessionRef string) (*models.PaymentConfirmation, error)
}
