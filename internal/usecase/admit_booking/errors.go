package admit_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("admit_booking: invalid input data")

	// ErrInvalidDateRange возвращается, когда дата выезда не позже даты заезда.
	// Проверяется до любого обращения к хранилищу.
	ErrInvalidDateRange = errors.New("admit_booking: check-out must be after check-in")

	// ErrRoomNotFound возвращается, когда номер не найден в указанном отеле
	ErrRoomNotFound = errors.New("admit_booking: room not found")

	// ErrCapacityExceeded возвращается, когда на запрошенный интервал
	// недостаточно свободных юнитов
	ErrCapacityExceeded = errors.New("admit_booking: not enough units available for these dates")

	// ErrBusy возвращается при конфликте блокировок; попытку можно повторить
	// целиком — частичных записей после отката не остается
	ErrBusy = errors.New("admit_booking: room is busy, retry the request")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("admit_booking: internal error")
)
