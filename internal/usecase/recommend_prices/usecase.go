package recommend_prices

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-StayService/internal/domain"
	"github.com/m04kA/SMC-StayService/internal/pricing"
	"github.com/m04kA/SMC-StayService/internal/usecase/quote_price"
)

// UseCase построение рекомендаций: прогон ценового расчета по сетке
// (все номера отеля) x (горизонт в днях) с фильтрацией позиций, где
// расчетная цена совпала с базовой.
type UseCase struct {
	roomRepo RoomRepository
	quoter   PriceQuoter
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(roomRepo RoomRepository, quoter PriceQuoter, logger Logger) *UseCase {
	return &UseCase{
		roomRepo: roomRepo,
		quoter:   quoter,
		logger:   logger,
	}
}

// Execute возвращает рекомендации по всем номерам отеля на заданный горизонт.
// Сбой расчета по отдельной паре (номер, дата) пропускает пару, не валит
// весь список.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.HotelID <= 0 {
		return nil, fmt.Errorf("%w: hotelID is required", ErrInvalidInput)
	}
	if req.Days < 0 {
		return nil, fmt.Errorf("%w: days must be non-negative", ErrInvalidInput)
	}

	days := req.Days
	if days == 0 {
		days = domain.DefaultRecommendationDays
	}
	if days > domain.MaxRecommendationDays {
		days = domain.MaxRecommendationDays
	}

	rooms, err := uc.roomRepo.GetByHotel(ctx, req.HotelID)
	if err != nil {
		uc.logger.Error("RecommendPrices: failed to get rooms for hotel id=%d: %v", req.HotelID, err)
		return nil, fmt.Errorf("%w: Execute - get rooms: %v", ErrInternal, err)
	}
	if len(rooms) == 0 {
		return nil, fmt.Errorf("%w: hotel id=%d", ErrHotelNotFound, req.HotelID)
	}

	recommendations := make([]Recommendation, 0, len(rooms)*days)

	today := time.Now()
	for _, room := range rooms {
		for offset := 0; offset < days; offset++ {
			targetDate := today.AddDate(0, 0, offset)

			quote, err := uc.quoter.Execute(ctx, &quote_price.Request{
				HotelID:    req.HotelID,
				RoomID:     room.ID,
				TargetDate: targetDate,
			})
			if err != nil {
				uc.logger.Warn("RecommendPrices: quote failed for room id=%d date=%s: %v",
					room.ID, targetDate.Format(domain.DateFormat), err)
				continue
			}

			// Рекомендуем только там, где модель отошла от базовой цены
			if quote.CalculatedPrice == quote.BasePrice {
				continue
			}

			recommendations = append(recommendations, Recommendation{
				RoomID:               room.ID,
				RoomType:             room.RoomType,
				TargetDate:           pricing.DateOnly(targetDate),
				BasePrice:            quote.BasePrice,
				RecommendedPrice:     quote.CalculatedPrice,
				Multiplier:           quote.Multiplier,
				Reasons:              quote.Reasons,
				PriceIncrease:        quote.PriceIncrease,
				PriceIncreasePercent: quote.PriceIncreasePercent,
			})
		}
	}

	uc.logger.Info("RecommendPrices: hotel id=%d days=%d rooms=%d recommendations=%d",
		req.HotelID, days, len(rooms), len(recommendations))

	return &Response{
		HotelID:         req.HotelID,
		Days:            days,
		Recommendations: recommendations,
	}, nil
}
