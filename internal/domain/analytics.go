package domain

// AnalyticsSummary aggregated booking metrics for one hotel.
// Revenue counts confirmed bookings only: nights multiplied by the room's
// current base price (overrides are display-only and excluded on purpose).
type AnalyticsSummary struct {
	ConfirmedBookings int
	CancelledBookings int
	TotalRevenue      float64
	MostPopularRoom   *RoomPopularity
}

// RoomPopularity a room type and how many confirmed bookings it collected.
type RoomPopularity struct {
	RoomType string
	Bookings int
}
