package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a guest stay reservation for a room.
// The stay interval is half-open: [CheckInDate, CheckOutDate), the checkout
// day is free for new arrivals. Rows are never deleted and dates are never
// edited after creation; the only mutation is confirmed -> cancelled.
type Booking struct {
	ID      int64
	HotelID int64
	RoomID  int64

	GuestName  string
	GuestPhone string

	CheckInDate    time.Time
	CheckOutDate   time.Time
	UnitsRequested int
	Status         BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still holds capacity.
func (b *Booking) IsActive() bool {
	return b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled.
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// Nights returns the length of the stay in nights.
func (b *Booking) Nights() int {
	return int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
}

// Covers reports whether the stay interval contains the given date.
// Checkout day is exclusive.
func (b *Booking) Covers(date time.Time) bool {
	return !b.CheckInDate.After(date) && b.CheckOutDate.After(date)
}

// Overlaps reports whether the stay interval overlaps [start, end).
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.CheckInDate.Before(end) && b.CheckOutDate.After(start)
}

// HotelBookingsFilter фильтр для выборки бронирований отеля
type HotelBookingsFilter struct {
	HotelID         int64      // Обязательный параметр
	RoomID          *int64     // Фильтр по номеру (опционально)
	StartDate       *time.Time // Начало периода заезда (опционально)
	EndDate         *time.Time // Конец периода заезда (опционально)
	Status          *BookingStatus
	IncludeInactive bool // Включать ли отмененные бронирования
}
