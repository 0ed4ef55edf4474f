package bookingRepo

import (
	"time"

	"venuehive/models"
)

// BookingRepository defines the interface for booking data access.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	// GetByIDForActor returns the booking only if actorID is its client or
	// the host of its space.
	GetByIDForActor(id, actorID string) (*models.Booking, error)
	ListByClient(clientID string) ([]models.Booking, error)
	ListByHost(hostID string) ([]models.Booking, error)
	// ListBlocking returns the bookings that remove dates from a space's
	// availability: status confirmed, or payment already captured.
	ListBlocking(spaceID string) ([]models.Booking, error)
	// UpdateStatusForHost conditionally updates status scoped by host id, so
	// authorization and the write are a single document operation.
	UpdateStatusForHost(id, hostID string, status models.BookingStatus) error
	SetStatus(id string, status models.BookingStatus) error
	// FindLatestPendingUnreferenced returns the client's most recently
	// created booking that is still unpaid and has no payment reference.
	FindLatestPendingUnreferenced(clientID string) (*models.Booking, error)
	// MarkPaidAndConfirmed atomically sets payment_status=paid,
	// status=confirmed and the payment reference on a single booking.
	MarkPaidAndConfirmed(id, paymentRef string) error
	// CancelStalePending cancels pending unpaid bookings created before the
	// cutoff and reports how many were swept.
	CancelStalePending(olderThan time.Time) (int64, error)
}
