package assistant

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("assistant client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("assistant client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что ассистент недоступен и следует отвечать шаблоном
	ErrServiceDegraded = errors.New("assistant unavailable: graceful degradation applied")
)
