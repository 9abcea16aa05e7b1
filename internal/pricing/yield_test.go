package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateOccupancyTiers(t *testing.T) {
	tests := []struct {
		name       string
		occupancy  float64
		multiplier float64
		reason     string
	}{
		{"critical", 95, CriticalOccupancyMultiplier, ReasonCriticalCapacity},
		{"critical boundary", 90, CriticalOccupancyMultiplier, ReasonCriticalCapacity},
		{"high", 75, HighOccupancyMultiplier, ReasonHighDemand},
		{"high boundary", 70, HighOccupancyMultiplier, ReasonHighDemand},
		{"low", 10, LowOccupancyMultiplier, ReasonLowOccupancy},
		{"low boundary excluded", 30, 1.0, ""},
		{"neutral band", 50, 1.0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Calculate(Inputs{OccupancyRate: tt.occupancy, DaysUntil: 30, SeasonalFactor: 1.0})
			assert.Equal(t, tt.multiplier, m.Occupancy)
			if tt.reason != "" {
				assert.Contains(t, m.Reasons, tt.reason)
			}
		})
	}
}

func TestCalculateTimingTiers(t *testing.T) {
	// Early bird: строго больше 60 дней
	m := Calculate(Inputs{OccupancyRate: 50, DaysUntil: 61, SeasonalFactor: 1.0})
	assert.Equal(t, EarlyBirdMultiplier, m.Timing)
	assert.Contains(t, m.Reasons, ReasonEarlyBird)

	m = Calculate(Inputs{OccupancyRate: 50, DaysUntil: 60, SeasonalFactor: 1.0})
	assert.Equal(t, 1.0, m.Timing, "60 days is not early bird")

	// Last-minute premium: <=3 дня при занятости выше 70%
	m = Calculate(Inputs{OccupancyRate: 80, DaysUntil: 2, SeasonalFactor: 1.0})
	assert.Equal(t, LastMinutePremium, m.Timing)
	assert.Contains(t, m.Reasons, ReasonLastMinute)

	// Fire sale: <=3 дня при занятости ниже 40%
	m = Calculate(Inputs{OccupancyRate: 20, DaysUntil: 1, SeasonalFactor: 1.0})
	assert.Equal(t, FireSaleMultiplier, m.Timing)
	assert.Contains(t, m.Reasons, ReasonFireSale)

	// Полоса 40-70% при <=3 днях остается нейтральной
	m = Calculate(Inputs{OccupancyRate: 55, DaysUntil: 1, SeasonalFactor: 1.0})
	assert.Equal(t, 1.0, m.Timing)
}

func TestCalculateVelocitySurge(t *testing.T) {
	m := Calculate(Inputs{OccupancyRate: 50, DaysUntil: 10, RecentBookings: 3, SeasonalFactor: 1.0})
	assert.Equal(t, SurgeMultiplier, m.Velocity)
	assert.Contains(t, m.Reasons, ReasonSurge)

	m = Calculate(Inputs{OccupancyRate: 50, DaysUntil: 10, RecentBookings: 2, SeasonalFactor: 1.0})
	assert.Equal(t, 1.0, m.Velocity)
	assert.NotContains(t, m.Reasons, ReasonSurge)
}

func TestCalculateSeasonalFactors(t *testing.T) {
	// Праздник имеет приоритет над выходным
	m := Calculate(Inputs{OccupancyRate: 50, DaysUntil: 10, IsHoliday: true, IsWeekend: true, SeasonalFactor: 1.0})
	assert.Equal(t, HolidayMultiplier, m.Seasonal)
	assert.Contains(t, m.Reasons, ReasonHoliday)
	assert.NotContains(t, m.Reasons, ReasonWeekend)

	m = Calculate(Inputs{OccupancyRate: 50, DaysUntil: 10, IsWeekend: true, SeasonalFactor: 1.0})
	assert.Equal(t, WeekendMultiplier, m.Seasonal)
	assert.Contains(t, m.Reasons, ReasonWeekend)

	// Сезонный фактор применяется поверх праздничного
	m = Calculate(Inputs{OccupancyRate: 50, DaysUntil: 10, IsHoliday: true, SeasonalFactor: PeakSeasonFactor})
	assert.InDelta(t, HolidayMultiplier*PeakSeasonFactor, m.Seasonal, 1e-9)
	assert.Contains(t, m.Reasons, ReasonPeakSeason)

	m = Calculate(Inputs{OccupancyRate: 50, DaysUntil: 10, SeasonalFactor: LowSeasonFactor})
	assert.Equal(t, LowSeasonFactor, m.Seasonal)
	assert.Contains(t, m.Reasons, ReasonOffSeason)
}

func TestCalculateReasonsOrder(t *testing.T) {
	// Порядок причин фиксирован порядком вычисления факторов:
	// occupancy, timing, velocity, seasonal
	m := Calculate(Inputs{
		OccupancyRate:  95,
		DaysUntil:      2,
		RecentBookings: 5,
		IsHoliday:      true,
		SeasonalFactor: PeakSeasonFactor,
	})

	assert.Equal(t, []string{
		ReasonCriticalCapacity,
		ReasonLastMinute,
		ReasonSurge,
		ReasonHoliday,
		ReasonPeakSeason,
	}, m.Reasons)
}

func TestFinalCombinesMultiplicatively(t *testing.T) {
	m := Multipliers{Occupancy: 1.4, Timing: 1.25, Velocity: 1.2, Seasonal: 1.3}
	assert.InDelta(t, 1.4*1.25*1.2*1.3, m.Final(), 1e-9)

	neutral := Multipliers{Occupancy: 1, Timing: 1, Velocity: 1, Seasonal: 1}
	assert.Equal(t, 1.0, neutral.Final())
}

func TestClamp(t *testing.T) {
	// Худший surge-сценарий: 1.4*1.25*1.2*1.3*1.15 = 2.7
	// Потолок 2x: базовая 5000 дает ровно 10000
	price, reason := Clamp(5000, 5000*2.7)
	assert.Equal(t, 10000.0, price)
	assert.Equal(t, ReasonPriceCeiling, reason)

	// Дно 0.7x
	price, reason = Clamp(5000, 5000*0.85*0.8*0.85)
	assert.Equal(t, 3500.0, price)
	assert.Equal(t, ReasonPriceFloor, reason)

	// В границах цена не трогается
	price, reason = Clamp(5000, 6000)
	assert.Equal(t, 6000.0, price)
	assert.Empty(t, reason)

	// Границы включительно
	price, reason = Clamp(5000, 10000)
	assert.Equal(t, 10000.0, price)
	assert.Empty(t, reason)
}

func TestRoundPrice(t *testing.T) {
	assert.Equal(t, 5750.0, RoundPrice(5750.4))
	assert.Equal(t, 5751.0, RoundPrice(5750.5))
}
