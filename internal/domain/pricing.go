package domain

import "time"

// PriceOverride is a staff-accepted price for one room on one date.
// At most one row exists per (RoomID, TargetDate); applying a new price
// replaces the old row (upsert). Overrides affect only what guests are
// quoted for display, never the capacity check.
type PriceOverride struct {
	ID          int64
	HotelID     int64
	RoomID      int64
	TargetDate  time.Time
	CustomPrice float64
	CreatedAt   time.Time
}

// PricingHistoryEntry is one append-only audit record of a computed quote.
// Entries are write-only from the engine's perspective: nothing reads them
// back to make decisions, they exist for staff dashboards and audits.
type PricingHistoryEntry struct {
	ID              int64
	HotelID         int64
	RoomID          int64
	DateForBooking  time.Time
	BasePrice       float64
	CalculatedPrice float64
	OccupancyRate   float64
	DaysUntil       int
	IsWeekend       bool
	IsHoliday       bool
	Season          string
	Multiplier      float64
	Reason          string
	CreatedAt       time.Time
}
