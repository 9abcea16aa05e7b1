package models

import (
	"time"

	"github.com/m04kA/SMC-StayService/internal/domain"
)

// Request модели

// ApplyOverrideRequest запрос на установку ручной цены
type ApplyOverrideRequest struct {
	HotelID     int64     `json:"hotelId"`
	RoomID      int64     `json:"roomId"`
	TargetDate  time.Time `json:"targetDate"`
	CustomPrice float64   `json:"customPrice"`
}

// Response модели

// OverrideResponse ответ с данными оверрайда
type OverrideResponse struct {
	ID          int64   `json:"id"`
	HotelID     int64   `json:"hotelId"`
	RoomID      int64   `json:"roomId"`
	TargetDate  string  `json:"targetDate"` // "2026-03-15"
	CustomPrice float64 `json:"customPrice"`
	CreatedAt   string  `json:"createdAt"` // ISO 8601
}

// EffectivePriceResponse действующая цена на дату
type EffectivePriceResponse struct {
	RoomID     int64   `json:"roomId"`
	TargetDate string  `json:"targetDate"`
	Price      float64 `json:"price"`
	Source     string  `json:"source"` // "override" | "base"
}

// HistoryEntryResponse одна запись журнала расчетов
type HistoryEntryResponse struct {
	ID              int64   `json:"id"`
	RoomID          int64   `json:"roomId"`
	DateForBooking  string  `json:"dateForBooking"`
	BasePrice       float64 `json:"basePrice"`
	CalculatedPrice float64 `json:"calculatedPrice"`
	OccupancyRate   float64 `json:"occupancyRate"`
	DaysUntil       int     `json:"daysUntil"`
	IsWeekend       bool    `json:"isWeekend"`
	IsHoliday       bool    `json:"isHoliday"`
	Season          string  `json:"season"`
	Multiplier      float64 `json:"multiplier"`
	Reason          string  `json:"reason"`
	CreatedAt       string  `json:"createdAt"`
}

// HistoryResponse ответ со списком записей журнала
type HistoryResponse struct {
	Entries []HistoryEntryResponse `json:"entries"`
}

// Методы конвертации

// FromDomainOverride конвертирует domain модель в DTO
func FromDomainOverride(o *domain.PriceOverride) *OverrideResponse {
	if o == nil {
		return nil
	}
	return &OverrideResponse{
		ID:          o.ID,
		HotelID:     o.HotelID,
		RoomID:      o.RoomID,
		TargetDate:  o.TargetDate.Format(domain.DateFormat),
		CustomPrice: o.CustomPrice,
		CreatedAt:   o.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainHistory конвертирует список записей журнала в DTO
func FromDomainHistory(entries []*domain.PricingHistoryEntry) *HistoryResponse {
	resp := &HistoryResponse{
		Entries: make([]HistoryEntryResponse, 0, len(entries)),
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, HistoryEntryResponse{
			ID:              e.ID,
			RoomID:          e.RoomID,
			DateForBooking:  e.DateForBooking.Format(domain.DateFormat),
			BasePrice:       e.BasePrice,
			CalculatedPrice: e.CalculatedPrice,
			OccupancyRate:   e.OccupancyRate,
			DaysUntil:       e.DaysUntil,
			IsWeekend:       e.IsWeekend,
			IsHoliday:       e.IsHoliday,
			Season:          e.Season,
			Multiplier:      e.Multiplier,
			Reason:          e.Reason,
			CreatedAt:       e.CreatedAt.Format(time.RFC3339),
		})
	}
	return resp
}
