package pricing

import "math"

// Yield model multipliers and thresholds.
const (
	CriticalOccupancyThreshold = 90.0
	HighOccupancyThreshold     = 70.0
	LowOccupancyThreshold      = 30.0

	CriticalOccupancyMultiplier = 1.40
	HighOccupancyMultiplier     = 1.20
	LowOccupancyMultiplier      = 0.85

	EarlyBirdDays       = 60
	LastMinuteDays      = 3
	FireSaleOccupancy   = 40.0
	EarlyBirdMultiplier = 0.90
	LastMinutePremium   = 1.25
	FireSaleMultiplier  = 0.80

	SurgeVelocityThreshold = 3
	SurgeMultiplier        = 1.20

	HolidayMultiplier = 1.30
	WeekendMultiplier = 1.15

	// Жесткие границы итоговой цены относительно базовой
	MinPriceFactor = 0.7
	MaxPriceFactor = 2.0
)

// Reason strings surfaced to staff dashboards and persisted to history.
const (
	ReasonCriticalCapacity = "Critical capacity (90%+)"
	ReasonHighDemand       = "High demand (70%+)"
	ReasonLowOccupancy     = "Low occupancy (<30%)"
	ReasonEarlyBird        = "Early bird discount"
	ReasonLastMinute       = "Last-minute premium"
	ReasonFireSale         = "Fire sale to fill empty room"
	ReasonSurge            = "SURGE: High booking velocity"
	ReasonHoliday          = "Holiday surcharge"
	ReasonWeekend          = "Weekend premium"
	ReasonPeakSeason       = "Peak season"
	ReasonOffSeason        = "Off-season"
	ReasonPriceFloor       = "Hit minimum price floor"
	ReasonPriceCeiling     = "Hit maximum price ceiling"
	ReasonStandard         = "Standard pricing"
)

// Inputs сигналы yield-модели для одной пары (номер, дата).
type Inputs struct {
	OccupancyRate  float64 // занятость на дату, 0-100
	DaysUntil      int     // дней до заезда, может быть отрицательным
	RecentBookings int     // бронирований за последние 24 часа (любой статус)
	IsHoliday      bool
	IsWeekend      bool
	SeasonalFactor float64 // 1.15 / 0.85 / 1.0
}

// Multipliers four independent factors combined multiplicatively.
type Multipliers struct {
	Occupancy float64
	Timing    float64
	Velocity  float64
	Seasonal  float64

	// Reasons is ordered by evaluation: occupancy, timing, velocity, seasonal.
	Reasons []string
}

// Final returns the combined multiplier.
func (m Multipliers) Final() float64 {
	return m.Occupancy * m.Timing * m.Velocity * m.Seasonal
}

// Calculate применяет yield-модель к сигналам.
// Каждая сработавшая ветка добавляет причину; порядок причин фиксирован
// порядком вычисления факторов.
func Calculate(in Inputs) Multipliers {
	m := Multipliers{Occupancy: 1.0, Timing: 1.0, Velocity: 1.0, Seasonal: 1.0}

	// A. Занятость: ярусы проверяются сверху вниз, применяется один
	switch {
	case in.OccupancyRate >= CriticalOccupancyThreshold:
		m.Occupancy = CriticalOccupancyMultiplier
		m.Reasons = append(m.Reasons, ReasonCriticalCapacity)
	case in.OccupancyRate >= HighOccupancyThreshold:
		m.Occupancy = HighOccupancyMultiplier
		m.Reasons = append(m.Reasons, ReasonHighDemand)
	case in.OccupancyRate < LowOccupancyThreshold:
		m.Occupancy = LowOccupancyMultiplier
		m.Reasons = append(m.Reasons, ReasonLowOccupancy)
	}

	// B. Тайминг: обе last-minute ветки требуют days<=3, но пороги занятости
	// не пересекаются — полоса 40-70% при days<=3 остается на x1.0
	switch {
	case in.DaysUntil > EarlyBirdDays:
		m.Timing = EarlyBirdMultiplier
		m.Reasons = append(m.Reasons, ReasonEarlyBird)
	case in.DaysUntil <= LastMinuteDays && in.OccupancyRate > HighOccupancyThreshold:
		m.Timing = LastMinutePremium
		m.Reasons = append(m.Reasons, ReasonLastMinute)
	case in.DaysUntil <= LastMinuteDays && in.OccupancyRate < FireSaleOccupancy:
		m.Timing = FireSaleMultiplier
		m.Reasons = append(m.Reasons, ReasonFireSale)
	}

	// C. Скорость бронирований (surge)
	if in.RecentBookings >= SurgeVelocityThreshold {
		m.Velocity = SurgeMultiplier
		m.Reasons = append(m.Reasons, ReasonSurge)
	}

	// D. Сезонность и события: праздник имеет приоритет над выходным,
	// сезонный фактор применяется независимо
	if in.IsHoliday {
		m.Seasonal *= HolidayMultiplier
		m.Reasons = append(m.Reasons, ReasonHoliday)
	} else if in.IsWeekend {
		m.Seasonal *= WeekendMultiplier
		m.Reasons = append(m.Reasons, ReasonWeekend)
	}
	if in.SeasonalFactor != 1.0 {
		m.Seasonal *= in.SeasonalFactor
		if in.SeasonalFactor > 1.0 {
			m.Reasons = append(m.Reasons, ReasonPeakSeason)
		} else {
			m.Reasons = append(m.Reasons, ReasonOffSeason)
		}
	}

	return m
}

// Clamp ограничивает рассчитанную цену жесткими границами
// [MinPriceFactor*base, MaxPriceFactor*base] относительно базовой.
// Возвращает цену и причину клампа, если он сработал.
func Clamp(basePrice, calculatedPrice float64) (float64, string) {
	floor := basePrice * MinPriceFactor
	ceiling := basePrice * MaxPriceFactor

	switch {
	case calculatedPrice < floor:
		return floor, ReasonPriceFloor
	case calculatedPrice > ceiling:
		return ceiling, ReasonPriceCeiling
	default:
		return calculatedPrice, ""
	}
}

// RoundPrice rounds a price to the nearest whole currency unit.
func RoundPrice(price float64) float64 {
	return math.Round(price)
}
