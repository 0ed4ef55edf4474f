package booking

import (
	"fmt"
	"time"

	bookingRepo "venuehive/database/repository/booking"
	spaceRepo "venuehive/database/repository/space"
	"venuehive/models"
	"venuehive/services/availability"
	"venuehive/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const timeLayout = "15:04"

// DefaultBookingService implements BookingService on top of the mongo
// repositories.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	SpaceRepo spaceRepo.SpaceRepository
	Notifier  ChangeNotifier
}

// CreateBooking validates the request against a fresh availability snapshot
// and persists a pending/pending booking. For daily bookings the requested
// run is truncated at the first blocked date; the result reports both counts
// so the caller can tell.
func (s *DefaultBookingService) CreateBooking(actor models.Actor, input CreateBookingInput) (*CreateBookingResult, error) {
	logger := utils.GetLogger()

	space, err := s.SpaceRepo.GetByID(input.SpaceID)
	if err != nil {
		return nil, err
	}

	start, err := time.Parse(availability.DateLayout, input.Date)
	if err != nil {
		return nil, &ValidationError{Field: "date", Message: "must use YYYY-MM-DD format"}
	}
	if input.Guests <= 0 {
		return nil, &ValidationError{Field: "guests", Message: "must be positive"}
	}
	if input.Guests > space.Capacity {
		return nil, &ValidationError{Field: "guests", Message: fmt.Sprintf("space holds at most %d guests", space.Capacity)}
	}

	hourly := input.StartTime != "" || input.EndTime != ""
	var hours float64
	if hourly {
		hours, err = validateTimeWindow(input.StartTime, input.EndTime)
		if err != nil {
			return nil, err
		}
		if space.PricingMode == models.PricingDaily {
			return nil, &ValidationError{Field: "start_time", Message: "space is not bookable by the hour"}
		}
	} else if space.PricingMode == models.PricingHourly {
		return nil, &ValidationError{Field: "days", Message: "space is only bookable by the hour"}
	}

	// Availability must come from a read no earlier than this attempt; other
	// clients book the same space concurrently.
	blocking, err := s.Repo.ListBlocking(space.ID)
	if err != nil {
		return nil, err
	}
	idx := availability.NewIndex(space, blocking)
	if !idx.IsAvailable(input.Date) {
		return nil, ErrDateUnavailable
	}

	requested := input.Days
	if requested < 1 {
		requested = 1
	}

	var dates []string
	var total float64
	if hourly {
		dates = []string{input.Date}
		total = hours * space.HourlyPrice
	} else {
		dates = availability.ResolveRange(start, requested, idx)
		total = float64(len(dates)) * space.DailyPrice
	}

	b := &models.Booking{
		ID:            uuid.New().String(),
		SpaceID:       space.ID,
		ClientID:      actor.ID,
		HostID:        space.HostID,
		Date:          input.Date,
		StartTime:     input.StartTime,
		EndTime:       input.EndTime,
		Days:          len(dates),
		Guests:        input.Guests,
		TotalPrice:    total,
		Status:        models.BookingPending,
		PaymentStatus: models.PaymentPending,
	}
	if err := s.Repo.Create(b); err != nil {
		return nil, err
	}

	logger.Info("booking created",
		zap.String("bookingID", b.ID),
		zap.String("spaceID", b.SpaceID),
		zap.Int("requestedDays", requested),
		zap.Int("bookedDays", b.Days))
	s.notify(b)

	return &CreateBookingResult{
		Booking:       b,
		RequestedDays: requested,
		BookedDays:    b.Days,
		Dates:         dates,
	}, nil
}

// GetBooking returns a booking visible to the actor, repairing the
// paid-but-pending race before handing the record back.
func (s *DefaultBookingService) GetBooking(actor models.Actor, id string) (*models.Booking, error) {
	b, err := s.Repo.GetByIDForActor(id, actor.ID)
	if err != nil {
		return nil, err
	}
	s.heal(b)
	return b, nil
}

// ListClientBookings returns the actor's own bookings.
func (s *DefaultBookingService) ListClientBookings(actor models.Actor) ([]models.Booking, error) {
	bookings, err := s.Repo.ListByClient(actor.ID)
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		s.heal(&bookings[i])
	}
	return bookings, nil
}

// ListHostBookings returns bookings across the actor's spaces.
func (s *DefaultBookingService) ListHostBookings(actor models.Actor) ([]models.Booking, error) {
	bookings, err := s.Repo.ListByHost(actor.ID)
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		s.heal(&bookings[i])
	}
	return bookings, nil
}

// UpdateStatus applies a host-driven lifecycle transition. The actor must be
// the host of the booked space; anything outside the lifecycle graph is
// rejected before any write.
func (s *DefaultBookingService) UpdateStatus(actor models.Actor, id string, next models.BookingStatus) (*models.Booking, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	s.heal(b)

	if b.HostID != actor.ID {
		return nil, ErrNotAuthorized
	}
	if !CanTransition(b.Status, next) {
		return nil, ErrIllegalTransition
	}

	if err := s.Repo.UpdateStatusForHost(id, actor.ID, next); err != nil {
		return nil, err
	}
	b.Status = next
	b.UpdatedAt = time.Now()

	utils.GetLogger().Info("booking status updated",
		zap.String("bookingID", b.ID),
		zap.String("status", string(next)))
	s.notify(b)
	return b, nil
}

// ResolveAvailability probes how many consecutive days are bookable from a
// start date, without creating anything.
func (s *DefaultBookingService) ResolveAvailability(spaceID, startDate string, days int) (*AvailabilityResult, error) {
	space, err := s.SpaceRepo.GetByID(spaceID)
	if err != nil {
		return nil, err
	}
	start, err := time.Parse(availability.DateLayout, startDate)
	if err != nil {
		return nil, &ValidationError{Field: "start", Message: "must use YYYY-MM-DD format"}
	}
	if days < 1 {
		days = 1
	}

	blocking, err := s.Repo.ListBlocking(space.ID)
	if err != nil {
		return nil, err
	}
	idx := availability.NewIndex(space, blocking)

	result := &AvailabilityResult{
		SpaceID:        space.ID,
		StartAvailable: idx.IsAvailable(startDate),
		RequestedDays:  days,
	}
	if result.StartAvailable {
		result.Dates = availability.ResolveRange(start, days, idx)
	}
	return result, nil
}

// heal applies the self-healing status repair and persists it. A failed
// persist is logged and the repaired record is still returned; the next read
// retries the write.
func (s *DefaultBookingService) heal(b *models.Booking) {
	if !healStatus(b) {
		return
	}
	if err := s.Repo.SetStatus(b.ID, models.BookingConfirmed); err != nil {
		utils.GetLogger().Warn("failed to persist status repair",
			zap.String("bookingID", b.ID), zap.Error(err))
	}
}

func (s *DefaultBookingService) notify(b *models.Booking) {
	if s.Notifier == nil {
		return
	}
	s.Notifier.BookingChanged(models.BookingEvent{
		BookingID:     b.ID,
		SpaceID:       b.SpaceID,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
	})
}

func validateTimeWindow(startTime, endTime string) (float64, error) {
	if startTime == "" {
		return 0, &ValidationError{Field: "start_time", Message: "required for hourly bookings"}
	}
	if endTime == "" {
		return 0, &ValidationError{Field: "end_time", Message: "required for hourly bookings"}
	}
	from, err := time.Parse(timeLayout, startTime)
	if err != nil {
		return 0, &ValidationError{Field: "start_time", Message: "must use HH:MM format"}
	}
	to, err := time.Parse(timeLayout, endTime)
	if err != nil {
		return 0, &ValidationError{Field: "end_time", Message: "must use HH:MM format"}
	}
	hours := to.Sub(from).Hours()
	if hours <= 0 {
		return 0, &ValidationError{Field: "end_time", Message: "must be after start time"}
	}
	return hours, nil
}
