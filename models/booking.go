package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// PaymentStatus tracks whether a booking has been paid for.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// Booking represents a reservation of a space for one date (daily) or a time
// window within a date (hourly).
type Booking struct {
	ID       string `bson:"id" json:"id"`
	SpaceID  string `bson:"space_id" json:"space_id"`
	ClientID string `bson:"client_id" json:"client_id"`
	// HostID is denormalized from the space so host-scoped queries and
	// authorization checks need no join.
	HostID string `bson:"host_id" json:"host_id"`

	Date      string `bson:"date" json:"date"` // "2006-01-02"
	StartTime string `bson:"start_time,omitempty" json:"start_time,omitempty"`
	EndTime   string `bson:"end_time,omitempty" json:"end_time,omitempty"`
	Days      int    `bson:"days" json:"days"`
	Guests    int    `bson:"guests" json:"guests"`

	TotalPrice    float64       `bson:"total_price" json:"total_price"`
	Status        BookingStatus `bson:"status" json:"status"`
	PaymentStatus PaymentStatus `bson:"payment_status" json:"payment_status"`
	PaymentRef    string        `bson:"payment_ref,omitempty" json:"payment_ref,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Blocks reports whether this booking removes its dates from availability.
// Confirmed bookings block, and so do paid ones even if the status write has
// not landed yet.
func (b *Booking) Blocks() bool {
	return b.Status == BookingConfirmed || b.PaymentStatus == PaymentPaid
}

// IsHourly reports whether the booking reserves a time window instead of
// whole days.
func (b *Booking) IsHourly() bool {
	return b.StartTime != "" || b.EndTime != ""
}
