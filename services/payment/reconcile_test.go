package payment

import (
	"errors"
	"testing"
	"time"

	bookingRepo "venuehive/database/repository/booking"
	"venuehive/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReconcileRepo implements only the repository slice reconciliation uses.
type fakeReconcileRepo struct {
	bookings []*models.Booking
	markErr  error
}

func (r *fakeReconcileRepo) FindLatestPendingUnreferenced(clientID string) (*models.Booking, error) {
	var latest *models.Booking
	for _, b := range r.bookings {
		if b.ClientID != clientID || b.Status != models.BookingPending ||
			b.PaymentStatus != models.PaymentPending || b.PaymentRef != "" {
			continue
		}
		if latest == nil || b.CreatedAt.After(latest.CreatedAt) {
			latest = b
		}
	}
	if latest == nil {
		return nil, bookingRepo.ErrNoPendingBooking
	}
	clone := *latest
	return &clone, nil
}

func (r *fakeReconcileRepo) MarkPaidAndConfirmed(id, paymentRef string) error {
	if r.markErr != nil {
		return r.markErr
	}
	for _, b := range r.bookings {
		if b.ID == id && b.Status == models.BookingPending &&
			b.PaymentStatus == models.PaymentPending && b.PaymentRef == "" {
			b.PaymentStatus = models.PaymentPaid
			b.Status = models.BookingConfirmed
			b.PaymentRef = paymentRef
			return nil
		}
	}
	return bookingRepo.ErrNotFound
}

type fakeSpaces struct {
	spaces map[string]*models.Space
	err    error
}

func (f *fakeSpaces) GetByID(id string) (*models.Space, error) {
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.spaces[id]
	if !ok {
		return nil, errors.New("space not found")
	}
	return s, nil
}

type captureNotifier struct {
	events []models.BookingEvent
}

func (n *captureNotifier) BookingChanged(e models.BookingEvent) {
	n.events = append(n.events, e)
}

var payer = models.Actor{ID: "client1", Email: "client@example.com"}

func pendingBooking(id string, createdAt time.Time) *models.Booking {
	return &models.Booking{
		ID:            id,
		SpaceID:       "s1",
		ClientID:      payer.ID,
		HostID:        "host1",
		Date:          "2025-07-10",
		Status:        models.BookingPending,
		PaymentStatus: models.PaymentPending,
		CreatedAt:     createdAt,
	}
}

func newReconcileService(repo *fakeReconcileRepo) (*DefaultPaymentService, *captureNotifier) {
	notifier := &captureNotifier{}
	svc := &DefaultPaymentService{
		BookingRepo: repo,
		SpaceRepo: &fakeSpaces{spaces: map[string]*models.Space{
			"s1": {ID: "s1", Title: "Loft on Main"},
		}},
		Notifier: notifier,
	}
	return svc, notifier
}

func TestReconcileMatchesPendingBooking(t *testing.T) {
	repo := &fakeReconcileRepo{bookings: []*models.Booking{
		pendingBooking("b1", time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)),
	}}
	svc, notifier := newReconcileService(repo)

	conf, err := svc.Reconcile(payer, "sess_abc")
	require.NoError(t, err)

	assert.True(t, conf.Reconciled)
	assert.Equal(t, "b1", conf.BookingID)
	assert.Equal(t, "Loft on Main", conf.SpaceTitle)

	b := repo.bookings[0]
	assert.Equal(t, models.PaymentPaid, b.PaymentStatus)
	assert.Equal(t, models.BookingConfirmed, b.Status)
	assert.Equal(t, "sess_abc", b.PaymentRef)
	require.Len(t, notifier.events, 1)
	assert.Equal(t, "b1", notifier.events[0].BookingID)
}

func TestReconcilePicksMostRecent(t *testing.T) {
	repo := &fakeReconcileRepo{bookings: []*models.Booking{
		pendingBooking("older", time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)),
		pendingBooking("newer", time.Date(2025, 7, 1, 11, 0, 0, 0, time.UTC)),
	}}
	svc, _ := newReconcileService(repo)

	conf, err := svc.Reconcile(payer, "sess_abc")
	require.NoError(t, err)
	assert.Equal(t, "newer", conf.BookingID)
}

func TestReconcileDegradedWhenNothingPending(t *testing.T) {
	svc, notifier := newReconcileService(&fakeReconcileRepo{})

	conf, err := svc.Reconcile(payer, "sess_xyz")
	require.NoError(t, err)

	assert.False(t, conf.Reconciled)
	assert.Empty(t, conf.BookingID)
	assert.Equal(t, "sess_xyz", conf.DisplayRef)
	assert.Empty(t, notifier.events, "degraded path mutates nothing")
}

func TestReconcileSecondCallDoesNotConsumeAnotherBooking(t *testing.T) {
	repo := &fakeReconcileRepo{bookings: []*models.Booking{
		pendingBooking("b1", time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)),
	}}
	svc, _ := newReconcileService(repo)

	first, err := svc.Reconcile(payer, "sess_abc")
	require.NoError(t, err)
	require.True(t, first.Reconciled)

	// b1 now carries a payment reference, so the slot is consumed.
	second, err := svc.Reconcile(payer, "sess_xyz")
	require.NoError(t, err)
	assert.False(t, second.Reconciled)
	assert.Equal(t, "sess_abc", repo.bookings[0].PaymentRef, "first match must not be overwritten")
}

func TestReconcileScopedToActor(t *testing.T) {
	other := pendingBooking("b-other", time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC))
	other.ClientID = "someone-else"
	repo := &fakeReconcileRepo{bookings: []*models.Booking{other}}
	svc, _ := newReconcileService(repo)

	conf, err := svc.Reconcile(payer, "sess_abc")
	require.NoError(t, err)
	assert.False(t, conf.Reconciled, "another client's booking must not be matched")
}

func TestReconcileIgnoresCancelledBooking(t *testing.T) {
	// A host can cancel while payment is still pending, and the TTL sweep
	// cancels abandoned checkouts the same way. Neither record may ever be
	// matched to a payment again: cancelled has no outgoing transitions.
	cancelled := pendingBooking("b-cancelled", time.Date(2025, 7, 1, 11, 0, 0, 0, time.UTC))
	cancelled.Status = models.BookingCancelled
	repo := &fakeReconcileRepo{bookings: []*models.Booking{cancelled}}
	svc, notifier := newReconcileService(repo)

	conf, err := svc.Reconcile(payer, "sess_abc")
	require.NoError(t, err)

	assert.False(t, conf.Reconciled)
	assert.Equal(t, models.BookingCancelled, cancelled.Status, "cancelled booking must stay cancelled")
	assert.Equal(t, models.PaymentPending, cancelled.PaymentStatus)
	assert.Empty(t, cancelled.PaymentRef)
	assert.Empty(t, notifier.events)
}

func TestReconcilePrefersLivePendingOverCancelled(t *testing.T) {
	cancelled := pendingBooking("b-cancelled", time.Date(2025, 7, 1, 11, 0, 0, 0, time.UTC))
	cancelled.Status = models.BookingCancelled
	live := pendingBooking("b-live", time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC))
	repo := &fakeReconcileRepo{bookings: []*models.Booking{cancelled, live}}
	svc, _ := newReconcileService(repo)

	conf, err := svc.Reconcile(payer, "sess_abc")
	require.NoError(t, err)

	assert.True(t, conf.Reconciled)
	assert.Equal(t, "b-live", conf.BookingID, "the newer but cancelled booking must be skipped")
	assert.Equal(t, models.BookingCancelled, cancelled.Status)
}

func TestReconcilePersistenceFailure(t *testing.T) {
	repo := &fakeReconcileRepo{
		bookings: []*models.Booking{pendingBooking("b1", time.Now())},
		markErr:  errors.New("write timeout"),
	}
	svc, notifier := newReconcileService(repo)

	_, err := svc.Reconcile(payer, "sess_abc")
	require.Error(t, err)
	assert.Empty(t, notifier.events)
	assert.Equal(t, models.PaymentPending, repo.bookings[0].PaymentStatus)
}

func TestReconcileSurvivesSpaceLookupFailure(t *testing.T) {
	repo := &fakeReconcileRepo{bookings: []*models.Booking{pendingBooking("b1", time.Now())}}
	svc, _ := newReconcileService(repo)
	svc.SpaceRepo = &fakeSpaces{err: errors.New("read timeout")}

	conf, err := svc.Reconcile(payer, "sess_abc")
	require.NoError(t, err)
	assert.True(t, conf.Reconciled)
	assert.Empty(t, conf.SpaceTitle)
}

func TestTruncateRef(t *testing.T) {
	assert.Equal(t, "sess_abc", truncateRef("sess_abc"))
	assert.Equal(t, "cs_test_a1b2", truncateRef("cs_test_a1b2c3d4e5f6g7h8"))
}
