package pricing

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StayService/internal/domain"
)

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByID(ctx context.Context, hotelID, roomID int64) (*domain.Room, error)
}

// PricingRepository интерфейс репозитория оверрайдов и журнала расчетов
type PricingRepository interface {
	UpsertOverride(ctx context.Context, o *domain.PriceOverride) (*domain.PriceOverride, error)
	GetOverride(ctx context.Context, roomID int64, targetDate time.Time) (*domain.PriceOverride, error)
	GetHistoryByRoom(ctx context.Context, roomID int64, limit uint64) ([]*domain.PricingHistoryEntry, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
