package recommend_prices

import (
	"context"

	recommendPrices "github.com/m04kA/SMC-StayService/internal/usecase/recommend_prices"
)

type RecommendPricesUseCase interface {
	Execute(ctx context.Context, req *recommendPrices.Request) (*recommendPrices.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
