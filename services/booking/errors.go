package booking

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAuthorized is returned when the actor may not perform the
	// requested lifecycle change. Nothing is mutated.
	ErrNotAuthorized = errors.New("actor is not authorized for this booking")
	// ErrIllegalTransition is returned for any status change outside the
	// lifecycle graph.
	ErrIllegalTransition = errors.New("illegal booking status transition")
	// ErrDateUnavailable is returned when the requested start date is
	// already blocked or outside the space's declared availability.
	ErrDateUnavailable = errors.New("requested date is not available")
)

// ValidationError carries a field-level message for input problems. These are
// recovered locally and never reach persistence.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
