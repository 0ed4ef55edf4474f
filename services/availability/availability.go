// Package availability answers date-level bookability questions for a single
// space. An Index is a snapshot of one space and its blocking bookings, built
// fresh per query session; other clients create bookings concurrently, so a
// cached index would under-detect conflicts.
package availability

import (
	"time"

	"venuehive/models"
)

// DateLayout is the wire format for all booking dates.
const DateLayout = "2006-01-02"

// Index answers IsAvailable for a single space snapshot.
type Index struct {
	blocked map[string]struct{}
	allowed map[string]struct{} // nil when the space declares no whitelist
}

// NewIndex builds an index from a space and the bookings that block its
// dates. Bookings that do not block (pending, unpaid, cancelled) are skipped,
// so callers may pass any booking list. A multi-day booking blocks every day
// of its span, not just the start date.
func NewIndex(space *models.Space, bookings []models.Booking) *Index {
	idx := &Index{blocked: make(map[string]struct{}, len(bookings))}

	for i := range bookings {
		if !bookings[i].Blocks() {
			continue
		}
		start, err := time.Parse(DateLayout, bookings[i].Date)
		if err != nil {
			idx.blocked[bookings[i].Date] = struct{}{}
			continue
		}
		days := bookings[i].Days
		if days < 1 {
			days = 1
		}
		for offset := 0; offset < days; offset++ {
			idx.blocked[start.AddDate(0, 0, offset).Format(DateLayout)] = struct{}{}
		}
	}

	if space != nil && len(space.AvailableDates) > 0 {
		idx.allowed = make(map[string]struct{}, len(space.AvailableDates))
		for _, d := range space.AvailableDates {
			idx.allowed[d] = struct{}{}
		}
	}
	return idx
}

// IsAvailable reports whether a date can be booked. A date is available
// unless it is blocked by an existing booking, or the space restricts
// availability to a whitelist the date is not on. Both constraints apply
// independently: a whitelisted date that is already booked stays blocked.
func (idx *Index) IsAvailable(date string) bool {
	if _, ok := idx.blocked[date]; ok {
		return false
	}
	if idx.allowed != nil {
		if _, ok := idx.allowed[date]; !ok {
			return false
		}
	}
	return true
}
