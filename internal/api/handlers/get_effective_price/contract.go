package get_effective_price

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StayService/internal/service/pricing/models"
)

type PricingService interface {
	EffectivePrice(ctx context.Context, hotelID, roomID int64, targetDate time.Time) (*models.EffectivePriceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
