package recommend_prices

import "errors"

var (
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("usecase.recommend_prices: invalid input")
	// ErrHotelNotFound в отеле нет ни одного номера
	ErrHotelNotFound = errors.New("usecase.recommend_prices: hotel has no rooms")
	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("usecase.recommend_prices: internal error")
)
