package models

import "github.com/m04kA/SMC-StayService/internal/domain"

// PopularRoomResponse самый бронируемый тип номера
type PopularRoomResponse struct {
	RoomType string `json:"roomType"`
	Bookings int    `json:"bookings"`
}

// SummaryResponse сводка по отелю
type SummaryResponse struct {
	HotelID           int64                `json:"hotelId"`
	ConfirmedBookings int                  `json:"confirmedBookings"`
	CancelledBookings int                  `json:"cancelledBookings"`
	TotalRevenue      float64              `json:"totalRevenue"`
	MostPopularRoom   *PopularRoomResponse `json:"mostPopularRoom,omitempty"`
}

// FromDomainSummary конвертирует domain модель в DTO
func FromDomainSummary(hotelID int64, s *domain.AnalyticsSummary) *SummaryResponse {
	resp := &SummaryResponse{
		HotelID:           hotelID,
		ConfirmedBookings: s.ConfirmedBookings,
		CancelledBookings: s.CancelledBookings,
		TotalRevenue:      s.TotalRevenue,
	}
	if s.MostPopularRoom != nil {
		resp.MostPopularRoom = &PopularRoomResponse{
			RoomType: s.MostPopularRoom.RoomType,
			Bookings: s.MostPopularRoom.Bookings,
		}
	}
	return resp
}
