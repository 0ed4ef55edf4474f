package bookingRepo

import (
	"fmt"
	"time"

	"venuehive/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// UpdateStatusForHost updates the booking status with the host id baked into
// the filter. A non-owner gets ErrNotFound without any write happening.
func (r *MongoBookingRepo) UpdateStatusForHost(id, hostID string, status models.BookingStatus) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "host_id": hostID}
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update booking %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SetStatus updates the booking status without an ownership scope. Used by
// the self-healing read repair.
func (r *MongoBookingRepo) SetStatus(id string, status models.BookingStatus) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update booking %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkPaidAndConfirmed advances payment and booking status together. The
// filter requires the booking to still be pending, unpaid and unreferenced:
// a second reconciliation of the same booking matches nothing, and a booking
// cancelled between lookup and write stays cancelled — terminal states have
// no outgoing transitions.
func (r *MongoBookingRepo) MarkPaidAndConfirmed(id, paymentRef string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"id":             id,
		"status":         models.BookingPending,
		"payment_status": models.PaymentPending,
		"payment_ref":    bson.M{"$in": bson.A{nil, ""}},
	}
	update := bson.M{"$set": bson.M{
		"payment_status": models.PaymentPaid,
		"status":         models.BookingConfirmed,
		"payment_ref":    paymentRef,
		"updated_at":     time.Now(),
	}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to mark booking %s paid: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// CancelStalePending sweeps unpaid pending bookings older than the cutoff.
func (r *MongoBookingRepo) CancelStalePending(olderThan time.Time) (int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"status":         models.BookingPending,
		"payment_status": models.PaymentPending,
		"created_at":     bson.M{"$lt": olderThan},
	}
	update := bson.M{"$set": bson.M{"status": models.BookingCancelled, "updated_at": time.Now()}}

	result, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to cancel stale bookings: %w", err)
	}
	return result.ModifiedCount, nil
}
