package assistant

// ClassifyRequest запрос на классификацию гостевого вопроса
type ClassifyRequest struct {
	HotelID int64  `json:"hotel_id"`
	Query   string `json:"query"`
}

// Classification результат классификации от ассистента
type Classification struct {
	Intent   string  `json:"intent"` // booking | pricing | availability | amenities | general
	Response string  `json:"response"`
	Score    float64 `json:"score"`
}

// ErrorResponse модель ошибки от ассистента
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
