package recommend_prices

import (
	"github.com/m04kA/SMC-StayService/internal/domain"
	recommendPrices "github.com/m04kA/SMC-StayService/internal/usecase/recommend_prices"
)

// RecommendationResponse одна рекомендация
type RecommendationResponse struct {
	RoomID               int64    `json:"roomId"`
	RoomType             string   `json:"roomType"`
	TargetDate           string   `json:"targetDate"`
	BasePrice            float64  `json:"basePrice"`
	RecommendedPrice     float64  `json:"recommendedPrice"`
	Multiplier           float64  `json:"multiplier"`
	Reasons              []string `json:"reasons"`
	PriceIncrease        float64  `json:"priceIncrease"`
	PriceIncreasePercent float64  `json:"priceIncreasePercent"`
}

// RecommendationsResponse HTTP response model
type RecommendationsResponse struct {
	HotelID         int64                    `json:"hotelId"`
	Days            int                      `json:"days"`
	Recommendations []RecommendationResponse `json:"recommendations"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *recommendPrices.Response) *RecommendationsResponse {
	out := &RecommendationsResponse{
		HotelID:         resp.HotelID,
		Days:            resp.Days,
		Recommendations: make([]RecommendationResponse, 0, len(resp.Recommendations)),
	}
	for _, rec := range resp.Recommendations {
		out.Recommendations = append(out.Recommendations, RecommendationResponse{
			RoomID:               rec.RoomID,
			RoomType:             rec.RoomType,
			TargetDate:           rec.TargetDate.Format(domain.DateFormat),
			BasePrice:            rec.BasePrice,
			RecommendedPrice:     rec.RecommendedPrice,
			Multiplier:           rec.Multiplier,
			Reasons:              rec.Reasons,
			PriceIncrease:        rec.PriceIncrease,
			PriceIncreasePercent: rec.PriceIncreasePercent,
		})
	}
	return out
}
