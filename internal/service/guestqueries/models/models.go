package models

// AskRequest гостевой вопрос
type AskRequest struct {
	HotelID int64  `json:"hotelId"`
	Query   string `json:"query"`
}

// AskResponse ответ гостю
type AskResponse struct {
	Intent   string `json:"intent"`
	Response string `json:"response"`
	Degraded bool   `json:"degraded,omitempty"` // Ассистент был недоступен
}

// IntentCountResponse число вопросов по одному намерению
type IntentCountResponse struct {
	Intent string `json:"intent"`
	Count  int    `json:"count"`
}

// IntentSummaryResponse распределение вопросов по намерениям
type IntentSummaryResponse struct {
	HotelID int64                 `json:"hotelId"`
	Intents []IntentCountResponse `json:"intents"`
}
