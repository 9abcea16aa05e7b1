package quote_price

import (
	quotePrice "github.com/m04kA/SMC-StayService/internal/usecase/quote_price"
)

// FactorsResponse сигналы, вошедшие в расчет
type FactorsResponse struct {
	OccupancyRate float64 `json:"occupancyRate"`
	DaysUntil     int     `json:"daysUntil"`
	IsWeekend     bool    `json:"isWeekend"`
	IsHoliday     bool    `json:"isHoliday"`
	VelocitySurge bool    `json:"velocitySurge"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	RoomID               int64           `json:"roomId"`
	TargetDate           string          `json:"targetDate"`
	BasePrice            float64         `json:"basePrice"`
	CalculatedPrice      float64         `json:"calculatedPrice"`
	Multiplier           float64         `json:"multiplier"`
	Factors              FactorsResponse `json:"factors"`
	Reasons              []string        `json:"reasons"`
	PriceIncrease        float64         `json:"priceIncrease"`
	PriceIncreasePercent float64         `json:"priceIncreasePercent"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(roomID int64, targetDate string, resp *quotePrice.Response) *QuoteResponse {
	return &QuoteResponse{
		RoomID:          roomID,
		TargetDate:      targetDate,
		BasePrice:       resp.BasePrice,
		CalculatedPrice: resp.CalculatedPrice,
		Multiplier:      resp.Multiplier,
		Factors: FactorsResponse{
			OccupancyRate: resp.Factors.OccupancyRate,
			DaysUntil:     resp.Factors.DaysUntil,
			IsWeekend:     resp.Factors.IsWeekend,
			IsHoliday:     resp.Factors.IsHoliday,
			VelocitySurge: resp.Factors.VelocitySurge,
		},
		Reasons:              resp.Reasons,
		PriceIncrease:        resp.PriceIncrease,
		PriceIncreasePercent: resp.PriceIncreasePercent,
	}
}
