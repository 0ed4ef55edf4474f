package bookingRepo

import "errors"

var (
	// ErrNotFound is returned when no booking matches the query scope.
	ErrNotFound = errors.New("booking not found")
	// ErrNoPendingBooking is returned when reconciliation finds nothing to
	// match a payment session against.
	ErrNoPendingBooking = errors.New("no pending unreferenced booking")
)
