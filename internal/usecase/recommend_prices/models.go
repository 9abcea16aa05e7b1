package recommend_prices

import "time"

// Request модель запроса рекомендаций по отелю
type Request struct {
	HotelID int64
	Days    int // Горизонт в днях от сегодня; 0 = дефолт
}

// Recommendation одна рекомендация: пара (номер, дата), где расчетная цена
// отличается от базовой
type Recommendation struct {
	RoomID               int64
	RoomType             string
	TargetDate           time.Time
	BasePrice            float64
	RecommendedPrice     float64
	Multiplier           float64
	Reasons              []string
	PriceIncrease        float64
	PriceIncreasePercent float64
}

// Response список рекомендаций
type Response struct {
	HotelID         int64
	Days            int
	Recommendations []Recommendation
}
