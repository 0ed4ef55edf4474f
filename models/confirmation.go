package models

// PaymentConfirmation is what the client sees after returning from the
// payment provider. When no pending booking could be matched, Reconciled is
// false and DisplayRef carries a shortened session reference so the user
// still gets a receipt-style screen.
type PaymentConfirmation struct {
	BookingID  string `json:"booking_id,omitempty"`
	SpaceTitle string `json:"space_title,omitempty"`
	DisplayRef string `json:"display_ref"`
	Reconciled bool   `json:"reconciled"`
}

// BookingEvent is published on the change-notification channel whenever a
// booking mutates. Subscribers use it to refresh their view; correctness
// never depends on anyone listening.
type BookingEvent struct {
	BookingID     string        `json:"booking_id"`
	SpaceID       string        `json:"space_id"`
	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
}
