package domain

import "time"

// Room represents a bookable room type of a hotel.
// TotalUnits is a fixed capacity count, not a decrementing counter:
// availability is always derived from the bookings ledger, the field
// changes only through an explicit staff edit.
type Room struct {
	ID         int64
	HotelID    int64
	RoomType   string
	TotalUnits int
	BasePrice  float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasCapacity returns true if the room has at least one unit configured.
func (r *Room) HasCapacity() bool {
	return r.TotalUnits > 0
}

// AvailableUnits returns how many units remain free given the number of
// units already committed by confirmed bookings.
func (r *Room) AvailableUnits(bookedUnits int) int {
	available := r.TotalUnits - bookedUnits
	if available < 0 {
		return 0
	}
	return available
}

// OccupancyRate returns booked units over total units as a percentage (0-100).
// A room with zero configured units reports 0: no capacity means no signal.
func (r *Room) OccupancyRate(bookedUnits int) float64 {
	if r.TotalUnits == 0 {
		return 0
	}
	return float64(bookedUnits) / float64(r.TotalUnits) * 100
}
