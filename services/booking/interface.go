package booking

import "venuehive/models"

// CreateBookingInput is the client's booking request.
type CreateBookingInput struct {
	SpaceID   string `json:"space_id"`
	Date      string `json:"date"`
	Days      int    `json:"days"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Guests    int    `json:"guests"`
}

// CreateBookingResult reports the persisted booking plus how much of the
// requested range was actually obtained. BookedDays < RequestedDays means the
// range was truncated at a gap; the caller must surface that to the user.
type CreateBookingResult struct {
	Booking       *models.Booking `json:"booking"`
	RequestedDays int             `json:"requested_days"`
	BookedDays    int             `json:"booked_days"`
	Dates         []string        `json:"dates"`
}

// AvailabilityResult is the answer to a range probe on a space page.
type AvailabilityResult struct {
	SpaceID        string   `json:"space_id"`
	StartAvailable bool     `json:"start_available"`
	RequestedDays  int      `json:"requested_days"`
	Dates          []string `json:"dates"`
}

// BookingService governs booking creation, reads and lifecycle transitions.
type BookingService interface {
	CreateBooking(actor models.Actor, input CreateBookingInput) (*CreateBookingResult, error)
	GetBooking(actor models.Actor, id string) (*models.Booking, error)
	ListClientBookings(actor models.Actor) ([]models.Booking, error)
	ListHostBookings(actor models.Actor) ([]models.Booking, error)
	UpdateStatus(actor models.Actor, id string, next models.BookingStatus) (*models.Booking, error)
	ResolveAvailability(spaceID, start string, days int) (*AvailabilityResult, error)
}

// ChangeNotifier is an optional observer invoked after a booking mutates.
// Core behavior must not depend on anyone listening; implementations are
// best-effort.
type ChangeNotifier interface {
	BookingChanged(event models.BookingEvent)
}
