package recommend_prices

import (
	"context"

	"github.com/m04kA/SMC-StayService/internal/domain"
	"github.com/m04kA/SMC-StayService/internal/usecase/quote_price"
)

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByHotel(ctx context.Context, hotelID int64) ([]*domain.Room, error)
}

// PriceQuoter расчет цены для одной пары (номер, дата)
type PriceQuoter interface {
	Execute(ctx context.Context, req *quote_price.Request) (*quote_price.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
