package get_analytics

import (
	"context"

	"github.com/m04kA/SMC-StayService/internal/service/analytics/models"
)

type AnalyticsService interface {
	Summary(ctx context.Context, hotelID int64) (*models.SummaryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
