package analytics

import (
	"context"

	"github.com/m04kA/SMC-StayService/internal/domain"
)

// AnalyticsRepository интерфейс репозитория аналитики
type AnalyticsRepository interface {
	Summary(ctx context.Context, hotelID int64) (*domain.AnalyticsSummary, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
