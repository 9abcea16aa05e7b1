package admit_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StayService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	BookedUnits(ctx context.Context, roomID int64, start, end time.Time) (int, error)
}

// RoomRepository интерфейс репозитория номеров.
// Внутри транзакции GetByID читает строку номера с FOR UPDATE.
type RoomRepository interface {
	GetByID(ctx context.Context, hotelID, roomID int64) (*domain.Room, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
