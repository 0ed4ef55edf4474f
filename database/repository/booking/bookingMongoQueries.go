package bookingRepo

import (
	"errors"
	"fmt"
	"time"

	"venuehive/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoBookingRepo) findOne(filter bson.M, opts ...*options.FindOneOptions) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	err := r.coll.FindOne(ctx, filter, opts...).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) findMany(filter bson.M, opts ...*options.FindOptions) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// GetByID fetches a booking by its id.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	return r.findOne(bson.M{"id": id})
}

// GetByIDForActor fetches a booking visible to the given actor, either as the
// booking client or as the host of the booked space.
func (r *MongoBookingRepo) GetByIDForActor(id, actorID string) (*models.Booking, error) {
	filter := bson.M{
		"id": id,
		"$or": bson.A{
			bson.M{"client_id": actorID},
			bson.M{"host_id": actorID},
		},
	}
	return r.findOne(filter)
}

// ListByClient returns a client's bookings, newest first.
func (r *MongoBookingRepo) ListByClient(clientID string) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return r.findMany(bson.M{"client_id": clientID}, opts)
}

// ListByHost returns bookings across all of a host's spaces, newest first.
func (r *MongoBookingRepo) ListByHost(hostID string) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return r.findMany(bson.M{"host_id": hostID}, opts)
}

// ListBlocking returns the bookings that block dates for a space: confirmed,
// or paid regardless of status.
func (r *MongoBookingRepo) ListBlocking(spaceID string) ([]models.Booking, error) {
	filter := bson.M{
		"space_id": spaceID,
		"$or": bson.A{
			bson.M{"status": models.BookingConfirmed},
			bson.M{"payment_status": models.PaymentPaid},
		},
	}
	return r.findMany(filter)
}

// FindLatestPendingUnreferenced returns the client's most recently created
// booking that is unpaid and has no payment reference yet. The status filter
// keeps cancelled and completed bookings out of reach: a host cancellation or
// a TTL sweep leaves payment_status pending, and those records must never be
// matched to a payment again.
func (r *MongoBookingRepo) FindLatestPendingUnreferenced(clientID string) (*models.Booking, error) {
	filter := bson.M{
		"client_id":      clientID,
		"status":         models.BookingPending,
		"payment_status": models.PaymentPending,
		"payment_ref":    bson.M{"$in": bson.A{nil, ""}},
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	booking, err := r.findOne(filter, opts)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrNoPendingBooking
	}
	return booking, err
}
