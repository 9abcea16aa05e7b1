package get_pricing_history

import (
	"context"

	"github.com/m04kA/SMC-StayService/internal/service/pricing/models"
)

type PricingService interface {
	GetHistory(ctx context.Context, hotelID, roomID int64, limit uint64) (*models.HistoryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
