package domain

// Pricing defaults and bounds
const (
	// DefaultBasePrice подстраховочная цена за ночь, когда цена номера
	// недоступна (номер не найден или ошибка чтения). Квота носит
	// рекомендательный характер и не должна падать из-за отсутствия данных.
	DefaultBasePrice = 5000.0

	// DefaultRecommendationDays горизонт рекомендаций по умолчанию
	DefaultRecommendationDays = 7
	// MaxRecommendationDays верхняя граница горизонта рекомендаций
	MaxRecommendationDays = 60
)

// Business validation constants
const (
	MinUnitsRequested  = 1
	MaxUnitsRequested  = 50
	MaxGuestNameLength = 200
	MaxStayNights      = 90
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
