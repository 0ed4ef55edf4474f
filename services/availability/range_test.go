package availability

import (
	"testing"
	"time"

	"venuehive/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, s)
	require.NoError(t, err)
	return d
}

func TestResolveRangeStopsAtFirstGap(t *testing.T) {
	// Confirmed bookings on 06-02 and 06-04; a request from 06-01 must stop
	// before 06-02 even though 06-03 is free.
	idx := NewIndex(&models.Space{}, []models.Booking{
		blockingBooking("2025-06-02"),
		blockingBooking("2025-06-04"),
	})

	dates := ResolveRange(mustDate(t, "2025-06-01"), 3, idx)
	assert.Equal(t, []string{"2025-06-01"}, dates)
}

func TestResolveRangeFullRun(t *testing.T) {
	idx := NewIndex(&models.Space{}, nil)

	dates := ResolveRange(mustDate(t, "2025-07-10"), 5, idx)
	assert.Equal(t, []string{
		"2025-07-10", "2025-07-11", "2025-07-12", "2025-07-13", "2025-07-14",
	}, dates)
}

func TestResolveRangeTruncatesMidRun(t *testing.T) {
	idx := NewIndex(&models.Space{}, []models.Booking{blockingBooking("2025-07-13")})

	dates := ResolveRange(mustDate(t, "2025-07-10"), 5, idx)
	assert.Equal(t, []string{"2025-07-10", "2025-07-11", "2025-07-12"}, dates)
}

func TestResolveRangeAlwaysIncludesStart(t *testing.T) {
	// The start date is appended unconditionally; validating it is the
	// caller's responsibility.
	idx := NewIndex(&models.Space{}, []models.Booking{blockingBooking("2025-07-10")})

	dates := ResolveRange(mustDate(t, "2025-07-10"), 3, idx)
	assert.Equal(t, []string{"2025-07-10", "2025-07-11", "2025-07-12"}, dates,
		"a blocked start does not end the run; only later gaps do")
}

func TestResolveRangeShortDesired(t *testing.T) {
	idx := NewIndex(&models.Space{}, nil)

	assert.Equal(t, []string{"2025-07-10"}, ResolveRange(mustDate(t, "2025-07-10"), 1, idx))
	assert.Equal(t, []string{"2025-07-10"}, ResolveRange(mustDate(t, "2025-07-10"), 0, idx))
	assert.Equal(t, []string{"2025-07-10"}, ResolveRange(mustDate(t, "2025-07-10"), -2, idx))
}

func TestResolveRangeCrossesMonthBoundary(t *testing.T) {
	idx := NewIndex(&models.Space{}, nil)

	dates := ResolveRange(mustDate(t, "2025-06-29"), 4, idx)
	assert.Equal(t, []string{"2025-06-29", "2025-06-30", "2025-07-01", "2025-07-02"}, dates)
}
