package quote_price

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-StayService/internal/domain"
	roomRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/room"
	"github.com/m04kA/SMC-StayService/internal/pricing"
)

// velocityWindow трейлинг-окно подсчета скорости бронирований
const velocityWindow = 24 * time.Hour

// UseCase расчет рекомендуемой цены для пары (номер, дата).
//
// Квота носит рекомендательный характер: любая ошибка чтения деградирует до
// дефолтов (fallback базовой цены, нулевая занятость), а не валит расчет.
// Падение записи в журнал истории тоже не фатально. Наружу ошибка уходит
// только при полной недоступности хранилища — и то через лог, не через отказ.
//
// Расчет всегда идет от истинной базовой цены номера, не от оверрайдов:
// рекомендации не компаундятся поверх ранее принятых рекомендаций.
type UseCase struct {
	roomRepo     RoomRepository
	ledger       CapacityLedger
	pricingRepo  PricingRepository
	fallbackBase float64
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// fallbackBase используется как базовая цена, когда номер недоступен;
// нулевое значение заменяется дефолтом.
func NewUseCase(
	roomRepo RoomRepository,
	ledger CapacityLedger,
	pricingRepo PricingRepository,
	fallbackBase float64,
	logger Logger,
) *UseCase {
	if fallbackBase <= 0 {
		fallbackBase = domain.DefaultBasePrice
	}
	return &UseCase{
		roomRepo:     roomRepo,
		ledger:       ledger,
		pricingRepo:  pricingRepo,
		fallbackBase: fallbackBase,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов).
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute рассчитывает цену. Детерминирован при одинаковых входных сигналах
// и одинаковом логическом времени; единственный side effect — запись в журнал.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.HotelID <= 0 || req.RoomID <= 0 || req.TargetDate.IsZero() {
		return nil, fmt.Errorf("%w: hotelID, roomID and targetDate are required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()
	targetDate := pricing.DateOnly(req.TargetDate)

	// 1. Сбор сигналов; каждый сбой деградирует до дефолта
	basePrice, occupancyRate := uc.resolveBaseAndOccupancy(ctx, req.HotelID, req.RoomID, targetDate)

	recentBookings, err := uc.ledger.CountCreatedSince(ctx, req.RoomID, now.Add(-velocityWindow))
	if err != nil {
		uc.logger.Warn("QuotePrice: failed to count recent bookings for room id=%d: %v", req.RoomID, err)
		recentBookings = 0
	}

	daysUntil := pricing.DaysUntil(now, targetDate)
	isHoliday := pricing.IsHoliday(targetDate)
	isWeekend := pricing.IsWeekend(targetDate)
	seasonalFactor := pricing.SeasonalFactor(targetDate)

	// 2. Yield-модель
	multipliers := pricing.Calculate(pricing.Inputs{
		OccupancyRate:  occupancyRate,
		DaysUntil:      daysUntil,
		RecentBookings: recentBookings,
		IsHoliday:      isHoliday,
		IsWeekend:      isWeekend,
		SeasonalFactor: seasonalFactor,
	})

	finalMultiplier := multipliers.Final()

	// 3. Кламп к жестким границам
	calculatedPrice, clampReason := pricing.Clamp(basePrice, basePrice*finalMultiplier)

	reasons := multipliers.Reasons
	if clampReason != "" {
		reasons = append(reasons, clampReason)
	}
	if len(reasons) == 0 {
		reasons = []string{pricing.ReasonStandard}
	}

	// 4. Журнал расчетов; сбой записи не валит квоту
	entry := &domain.PricingHistoryEntry{
		HotelID:         req.HotelID,
		RoomID:          req.RoomID,
		DateForBooking:  targetDate,
		BasePrice:       basePrice,
		CalculatedPrice: calculatedPrice,
		OccupancyRate:   occupancyRate,
		DaysUntil:       daysUntil,
		IsWeekend:       isWeekend,
		IsHoliday:       isHoliday,
		Season:          pricing.SeasonLabel(targetDate),
		Multiplier:      finalMultiplier,
		Reason:          strings.Join(reasons, " | "),
	}
	if err := uc.pricingRepo.InsertHistory(ctx, entry); err != nil {
		uc.logger.Warn("QuotePrice: failed to persist history for room id=%d date=%s: %v",
			req.RoomID, targetDate.Format(domain.DateFormat), err)
	}

	rounded := pricing.RoundPrice(calculatedPrice)

	uc.logger.Info("QuotePrice: room=%d date=%s base=%.0f calculated=%.0f multiplier=%.2f",
		req.RoomID, targetDate.Format(domain.DateFormat), basePrice, rounded, finalMultiplier)

	return &Response{
		BasePrice:       basePrice,
		CalculatedPrice: rounded,
		Multiplier:      finalMultiplier,
		Factors: Factors{
			OccupancyRate: occupancyRate,
			DaysUntil:     daysUntil,
			IsWeekend:     isWeekend,
			IsHoliday:     isHoliday,
			VelocitySurge: recentBookings >= pricing.SurgeVelocityThreshold,
		},
		Reasons:              reasons,
		PriceIncrease:        pricing.RoundPrice(calculatedPrice - basePrice),
		PriceIncreasePercent: (finalMultiplier - 1) * 100,
	}, nil
}

// resolveBaseAndOccupancy читает базовую цену и занятость на дату.
// Отсутствующий номер или нулевая вместимость — не ошибка, а отсутствие
// сигнала: fallback-цена и нулевая занятость.
func (uc *UseCase) resolveBaseAndOccupancy(ctx context.Context, hotelID, roomID int64, date time.Time) (float64, float64) {
	room, err := uc.roomRepo.GetByID(ctx, hotelID, roomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("QuotePrice: room id=%d not found in hotel id=%d, using fallback base price", roomID, hotelID)
		} else {
			uc.logger.Error("QuotePrice: failed to get room id=%d: %v, using fallback base price", roomID, err)
		}
		return uc.fallbackBase, 0
	}

	booked, err := uc.ledger.BookedUnitsOn(ctx, roomID, date)
	if err != nil {
		uc.logger.Warn("QuotePrice: failed to count booked units for room id=%d: %v", roomID, err)
		return room.BasePrice, 0
	}

	return room.BasePrice, room.OccupancyRate(booked)
}
