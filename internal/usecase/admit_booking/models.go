package admit_booking

import "time"

// Request модель запроса на допуск бронирования
type Request struct {
	HotelID    int64
	RoomID     int64
	GuestName  string
	GuestPhone string
	CheckIn    time.Time // Дата заезда (без времени)
	CheckOut   time.Time // Дата выезда, не включается в проживание
	Units      int       // Запрошенное количество юнитов номера
}

// Response модель ответа с подтвержденным бронированием
type Response struct {
	ID         int64
	HotelID    int64
	RoomID     int64
	GuestName  string
	GuestPhone string
	CheckIn    time.Time
	CheckOut   time.Time
	Units      int
	Status     string

	// Сколько юнитов осталось свободно на худший день интервала
	// после этого бронирования
	UnitsLeft int

	CreatedAt time.Time
}
