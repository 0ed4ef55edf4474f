package models

import (
	"errors"
	"strings"
	"time"
)

// PricingMode determines which of the two price fields a space charges by.
type PricingMode string

const (
	PricingDaily  PricingMode = "daily"
	PricingHourly PricingMode = "hourly"
	PricingBoth   PricingMode = "both"
)

// Address is the structured form of a space location. A nil address means the
// host did not provide one; callers must handle the absent case.
type Address struct {
	Line1   string `bson:"line1" json:"line1"`
	City    string `bson:"city" json:"city"`
	Region  string `bson:"region,omitempty" json:"region,omitempty"`
	Country string `bson:"country,omitempty" json:"country,omitempty"`
}

// Format renders the address for display, skipping empty parts.
func (a *Address) Format() string {
	if a == nil {
		return ""
	}
	parts := make([]string, 0, 4)
	for _, p := range []string{a.Line1, a.City, a.Region, a.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// Space represents a rentable venue listing published by a host.
type Space struct {
	ID          string      `bson:"id" json:"id"`
	HostID      string      `bson:"host_id" json:"host_id"`
	Title       string      `bson:"title" json:"title"`
	Description string      `bson:"description,omitempty" json:"description,omitempty"`
	Capacity    int         `bson:"capacity" json:"capacity"`
	Location    *Address    `bson:"location,omitempty" json:"location,omitempty"`
	PricingMode PricingMode `bson:"pricing_mode" json:"pricing_mode"`
	DailyPrice  float64     `bson:"daily_price,omitempty" json:"daily_price,omitempty"`
	HourlyPrice float64     `bson:"hourly_price,omitempty" json:"hourly_price,omitempty"`

	// AvailableDates is an optional whitelist of "2006-01-02" dates. When
	// empty, every date is offered and only existing bookings block.
	AvailableDates []string `bson:"available_dates,omitempty" json:"available_dates,omitempty"`

	Amenities []string  `bson:"amenities,omitempty" json:"amenities,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Validate checks the listing invariants before it is persisted.
func (s *Space) Validate() error {
	if s.Title == "" {
		return errors.New("title is required")
	}
	if s.Capacity <= 0 {
		return errors.New("capacity must be positive")
	}
	switch s.PricingMode {
	case PricingDaily:
		if s.DailyPrice <= 0 {
			return errors.New("daily price must be positive for daily pricing")
		}
	case PricingHourly:
		if s.HourlyPrice <= 0 {
			return errors.New("hourly price must be positive for hourly pricing")
		}
	case PricingBoth:
		if s.DailyPrice <= 0 || s.HourlyPrice <= 0 {
			return errors.New("daily and hourly prices must be positive for combined pricing")
		}
	default:
		return errors.New("unknown pricing mode")
	}
	for _, d := range s.AvailableDates {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return errors.New("available dates must use YYYY-MM-DD format")
		}
	}
	return nil
}
