package guest_query

import (
	"context"

	"github.com/m04kA/SMC-StayService/internal/service/guestqueries/models"
)

type GuestQueryService interface {
	Ask(ctx context.Context, req *models.AskRequest) (*models.AskResponse, error)
	IntentSummary(ctx context.Context, hotelID int64) (*models.IntentSummaryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
