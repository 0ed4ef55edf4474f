package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validSpace() Space {
	return Space{
		Title:       "Garden Hall",
		Capacity:    120,
		PricingMode: PricingDaily,
		DailyPrice:  450,
	}
}

func TestSpaceValidatePricingModes(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Space)
		ok     bool
	}{
		{"daily ok", func(s *Space) {}, true},
		{"daily without price", func(s *Space) { s.DailyPrice = 0 }, false},
		{"hourly ok", func(s *Space) { s.PricingMode = PricingHourly; s.HourlyPrice = 60 }, true},
		{"hourly without price", func(s *Space) { s.PricingMode = PricingHourly }, false},
		{"both ok", func(s *Space) { s.PricingMode = PricingBoth; s.HourlyPrice = 60 }, true},
		{"both missing hourly", func(s *Space) { s.PricingMode = PricingBoth }, false},
		{"both missing daily", func(s *Space) { s.PricingMode = PricingBoth; s.DailyPrice = 0; s.HourlyPrice = 60 }, false},
		{"unknown mode", func(s *Space) { s.PricingMode = "weekly" }, false},
		{"no title", func(s *Space) { s.Title = "" }, false},
		{"zero capacity", func(s *Space) { s.Capacity = 0 }, false},
		{"bad available date", func(s *Space) { s.AvailableDates = []string{"June 1"} }, false},
		{"good available dates", func(s *Space) { s.AvailableDates = []string{"2025-06-01"} }, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := validSpace()
			tc.mutate(&s)
			err := s.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestAddressFormat(t *testing.T) {
	assert.Equal(t, "", (*Address)(nil).Format(), "absent location formats as empty")
	assert.Equal(t, "12 Hill St, Leeds", (&Address{Line1: "12 Hill St", City: "Leeds"}).Format())
	assert.Equal(t, "Leeds, UK", (&Address{City: "Leeds", Country: "UK"}).Format())
}

func TestBookingBlocks(t *testing.T) {
	assert.True(t, (&Booking{Status: BookingConfirmed}).Blocks())
	assert.True(t, (&Booking{Status: BookingPending, PaymentStatus: PaymentPaid}).Blocks())
	assert.False(t, (&Booking{Status: BookingPending, PaymentStatus: PaymentPending}).Blocks())
	assert.False(t, (&Booking{Status: BookingCancelled}).Blocks())
}
