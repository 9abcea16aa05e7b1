package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-StayService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetHotelBookingsRequest запрос на получение бронирований отеля
type GetHotelBookingsRequest struct {
	HotelID         int64      `json:"hotelId"`
	RoomID          *int64     `json:"roomId,omitempty"`          // Фильтр по номеру (опционально)
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода заезда (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода заезда (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отмененные бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetHotelBookingsRequest) ToDomainFilter() (domain.HotelBookingsFilter, error) {
	filter := domain.HotelBookingsFilter{
		HotelID:         r.HotelID,
		RoomID:          r.RoomID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID             int64  `json:"id"`
	HotelID        int64  `json:"hotelId"`
	RoomID         int64  `json:"roomId"`
	GuestName      string `json:"guestName"`
	GuestPhone     string `json:"guestPhone"`
	CheckInDate    string `json:"checkInDate"`  // "2026-03-15"
	CheckOutDate   string `json:"checkOutDate"` // "2026-03-18"
	Nights         int    `json:"nights"`
	UnitsRequested int    `json:"unitsRequested"`
	Status         string `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:             b.ID,
		HotelID:        b.HotelID,
		RoomID:         b.RoomID,
		GuestName:      b.GuestName,
		GuestPhone:     b.GuestPhone,
		CheckInDate:    b.CheckInDate.Format(domain.DateFormat),
		CheckOutDate:   b.CheckOutDate.Format(domain.DateFormat),
		Nights:         b.Nights(),
		UnitsRequested: b.UnitsRequested,
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		if dto := FromDomainBooking(b); dto != nil {
			resp.Bookings = append(resp.Bookings, *dto)
		}
	}
	return resp
}

// ToDomainBookingStatus конвертирует строку в domain статус
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(s) {
	case domain.StatusConfirmed:
		return domain.StatusConfirmed, nil
	case domain.StatusCancelled:
		return domain.StatusCancelled, nil
	default:
		return "", ErrInvalidStatus
	}
}
