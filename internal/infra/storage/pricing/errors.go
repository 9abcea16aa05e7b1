package pricing

import "errors"

var (
	// ErrOverrideNotFound возвращается, когда для пары (номер, дата) нет оверрайда
	ErrOverrideNotFound = errors.New("pricing.repository: price override not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("pricing.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("pricing.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("pricing.repository: failed to scan row")
)
