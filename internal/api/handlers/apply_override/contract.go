package apply_override

import (
	"context"

	"github.com/m04kA/SMC-StayService/internal/service/pricing/models"
)

type PricingService interface {
	ApplyOverride(ctx context.Context, req *models.ApplyOverrideRequest) (*models.OverrideResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
