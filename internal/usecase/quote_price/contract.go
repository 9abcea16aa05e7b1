package quote_price

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StayService/internal/domain"
)

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByID(ctx context.Context, hotelID, roomID int64) (*domain.Room, error)
}

// CapacityLedger read-side журнала бронирований: занятость и скорость
type CapacityLedger interface {
	BookedUnitsOn(ctx context.Context, roomID int64, date time.Time) (int, error)
	CountCreatedSince(ctx context.Context, roomID int64, since time.Time) (int, error)
}

// PricingRepository интерфейс для записи журнала расчетов
type PricingRepository interface {
	InsertHistory(ctx context.Context, entry *domain.PricingHistoryEntry) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
