package payment

import (
	"errors"
	"fmt"

	bookingRepo "venuehive/database/repository/booking"
	"venuehive/models"
	"venuehive/utils"

	"go.uber.org/zap"
)

// displayRefLength bounds the session reference shown to users.
const displayRefLength = 12

// bookingRepository is the slice of the booking repo reconciliation needs.
type bookingRepository interface {
	FindLatestPendingUnreferenced(clientID string) (*models.Booking, error)
	MarkPaidAndConfirmed(id, paymentRef string) error
}

// changeNotifier mirrors booking.ChangeNotifier without importing it.
type changeNotifier interface {
	BookingChanged(event models.BookingEvent)
}

// Reconcile correlates a returned payment session with the actor's most
// recent pending, unreferenced booking. No session↔booking mapping is stored
// at checkout time, so recency is the matching heuristic; with two checkouts
// pending at once it can pick the wrong one. The session metadata already
// carries the booking id for a future exact match.
func (s *DefaultPaymentService) Reconcile(actor models.Actor, sessionRef string) (*models.PaymentConfirmation, error) {
	logger := utils.GetLogger()

	b, err := s.BookingRepo.FindLatestPendingUnreferenced(actor.ID)
	if errors.Is(err, bookingRepo.ErrNoPendingBooking) {
		// Degraded success: nothing to mutate, but the user paid and must
		// see a confirmation screen.
		logger.Warn("no pending booking matched payment session",
			zap.String("clientID", actor.ID),
			zap.String("sessionRef", sessionRef))
		return &models.PaymentConfirmation{
			DisplayRef: truncateRef(sessionRef),
			Reconciled: false,
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up pending booking: %w", err)
	}

	if err := s.BookingRepo.MarkPaidAndConfirmed(b.ID, sessionRef); err != nil {
		return nil, fmt.Errorf("failed to reconcile payment for booking %s: %w", b.ID, err)
	}
	b.Status = models.BookingConfirmed
	b.PaymentStatus = models.PaymentPaid
	b.PaymentRef = sessionRef

	var spaceTitle string
	if space, err := s.SpaceRepo.GetByID(b.SpaceID); err == nil {
		spaceTitle = space.Title
	} else {
		logger.Warn("failed to fetch space for confirmation",
			zap.String("spaceID", b.SpaceID), zap.Error(err))
	}

	logger.Info("payment reconciled",
		zap.String("bookingID", b.ID),
		zap.String("sessionRef", sessionRef))

	if s.Notifier != nil {
		s.Notifier.BookingChanged(models.BookingEvent{
			BookingID:     b.ID,
			SpaceID:       b.SpaceID,
			Status:        b.Status,
			PaymentStatus: b.PaymentStatus,
		})
	}

	return &models.PaymentConfirmation{
		BookingID:  b.ID,
		SpaceTitle: spaceTitle,
		DisplayRef: truncateRef(sessionRef),
		Reconciled: true,
	}, nil
}

func truncateRef(ref string) string {
	if len(ref) > displayRefLength {
		return ref[:displayRefLength]
	}
	return ref
}
