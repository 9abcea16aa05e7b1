// Package pricing чистые функции ценового движка: календарные факторы и
// мультипликативная yield-модель. Пакет не делает I/O и детерминирован,
// все сигналы (занятость, скорость бронирований, "сегодня") передаются снаружи.
package pricing

import "time"

// Holiday календарная дата повторяющегося праздника (месяц + день).
type Holiday struct {
	Month time.Month
	Day   int
}

// fixedHolidays повторяющиеся из года в год праздничные даты.
// Таблица фиксированная; плавающие праздники сюда сознательно не входят.
var fixedHolidays = map[Holiday]struct{}{
	{time.January, 26}:   {},
	{time.March, 8}:      {},
	{time.March, 25}:     {},
	{time.April, 11}:     {},
	{time.April, 17}:     {},
	{time.April, 21}:     {},
	{time.May, 23}:       {},
	{time.August, 15}:    {},
	{time.August, 26}:    {},
	{time.September, 16}: {},
	{time.October, 2}:    {},
	{time.October, 12}:   {},
	{time.October, 24}:   {},
	{time.October, 25}:   {},
	{time.November, 1}:   {},
	{time.December, 25}:  {},
}

// Seasonal factors by month group.
const (
	PeakSeasonFactor = 1.15
	LowSeasonFactor  = 0.85
)

// Season labels persisted to pricing history.
const (
	SeasonPeak   = "peak"
	SeasonLow    = "low"
	SeasonNormal = "normal"
)

// IsHoliday reports whether the date falls on one of the fixed recurring
// holidays.
func IsHoliday(date time.Time) bool {
	_, ok := fixedHolidays[Holiday{Month: date.Month(), Day: date.Day()}]
	return ok
}

// IsWeekend reports whether the date falls on the business weekend.
// Пятница и суббота — дни пиковых заездов, а не календарные выходные.
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Friday || wd == time.Saturday
}

// SeasonalFactor returns the seasonal price factor for the date's month:
// December-February are peak, May-June are low, everything else is neutral.
func SeasonalFactor(date time.Time) float64 {
	switch date.Month() {
	case time.December, time.January, time.February:
		return PeakSeasonFactor
	case time.May, time.June:
		return LowSeasonFactor
	default:
		return 1.0
	}
}

// SeasonLabel returns the history label for the date's seasonal factor.
func SeasonLabel(date time.Time) string {
	switch f := SeasonalFactor(date); {
	case f > 1.0:
		return SeasonPeak
	case f < 1.0:
		return SeasonLow
	default:
		return SeasonNormal
	}
}

// DaysUntil returns the whole-day difference between now and the target date,
// both truncated to date-only. Negative for past dates.
func DaysUntil(now, date time.Time) int {
	return int(DateOnly(date).Sub(DateOnly(now)).Hours() / 24)
}

// DateOnly strips the time-of-day component, keeping the date in UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
