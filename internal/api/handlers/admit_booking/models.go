package admit_booking

import (
	"time"

	"github.com/m04kA/SMC-StayService/internal/domain"
	admitBooking "github.com/m04kA/SMC-StayService/internal/usecase/admit_booking"
)

// AdmitBookingRequest HTTP request model
type AdmitBookingRequest struct {
	HotelID    int64  `json:"hotelId"`
	RoomID     int64  `json:"roomId"`
	GuestName  string `json:"guestName"`
	GuestPhone string `json:"guestPhone"`
	CheckIn    string `json:"checkInDate"`  // "2026-03-15"
	CheckOut   string `json:"checkOutDate"` // "2026-03-18"
	Units      int    `json:"unitsRequested"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID         int64  `json:"id"`
	HotelID    int64  `json:"hotelId"`
	RoomID     int64  `json:"roomId"`
	GuestName  string `json:"guestName"`
	GuestPhone string `json:"guestPhone"`
	CheckIn    string `json:"checkInDate"`
	CheckOut   string `json:"checkOutDate"`
	Units      int    `json:"unitsRequested"`
	Status     string `json:"status"`
	UnitsLeft  int    `json:"unitsLeft"`
	CreatedAt  string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AdmitBookingRequest) ToUseCaseRequest() (*admitBooking.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &admitBooking.Request{
		HotelID:    r.HotelID,
		RoomID:     r.RoomID,
		GuestName:  r.GuestName,
		GuestPhone: r.GuestPhone,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Units:      r.Units,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *admitBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:         resp.ID,
		HotelID:    resp.HotelID,
		RoomID:     resp.RoomID,
		GuestName:  resp.GuestName,
		GuestPhone: resp.GuestPhone,
		CheckIn:    resp.CheckIn.Format(domain.DateFormat),
		CheckOut:   resp.CheckOut.Format(domain.DateFormat),
		Units:      resp.Units,
		Status:     resp.Status,
		UnitsLeft:  resp.UnitsLeft,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
	}
}
