package quote_price

import "time"

// Request модель запроса на расчет цены для пары (номер, дата)
type Request struct {
	HotelID    int64
	RoomID     int64
	TargetDate time.Time
}

// Factors сигналы, вошедшие в расчет
type Factors struct {
	OccupancyRate float64
	DaysUntil     int
	IsWeekend     bool
	IsHoliday     bool
	VelocitySurge bool
}

// Response результат расчета цены
type Response struct {
	BasePrice       float64
	CalculatedPrice float64 // Округлена до целой денежной единицы
	Multiplier      float64 // Итоговый мультипликатор до клампа
	Factors         Factors
	Reasons         []string // Порядок = порядку вычисления факторов

	PriceIncrease        float64
	PriceIncreasePercent float64
}
