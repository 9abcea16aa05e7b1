package pricing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-StayService/internal/domain"
	pricingRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/pricing"
	roomRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/room"
	intpricing "github.com/m04kA/SMC-StayService/internal/pricing"
	"github.com/m04kA/SMC-StayService/internal/service/pricing/models"
)

const defaultHistoryLimit = 50

// Service сервис ручного ценообразования: принятые персоналом оверрайды,
// действующая цена на дату и журнал расчетов.
//
// Оверрайды влияют только на то, что видят гости (EffectivePrice);
// yield-модель всегда считает от истинной базовой цены номера.
type Service struct {
	roomRepo    RoomRepository
	pricingRepo PricingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса ценообразования
func NewService(roomRepo RoomRepository, pricingRepo PricingRepository, logger Logger) *Service {
	return &Service{
		roomRepo:    roomRepo,
		pricingRepo: pricingRepo,
		logger:      logger,
	}
}

// ApplyOverride устанавливает ручную цену для пары (номер, дата).
// Повторный вызов для той же пары заменяет предыдущую цену (upsert).
func (s *Service) ApplyOverride(ctx context.Context, req *models.ApplyOverrideRequest) (*models.OverrideResponse, error) {
	if req.HotelID <= 0 || req.RoomID <= 0 {
		return nil, fmt.Errorf("%w: hotelID and roomID are required", ErrInvalidInput)
	}
	if req.TargetDate.IsZero() {
		return nil, fmt.Errorf("%w: targetDate is required", ErrInvalidInput)
	}
	if req.CustomPrice <= 0 {
		return nil, fmt.Errorf("%w: customPrice must be positive", ErrInvalidInput)
	}

	// Номер должен принадлежать отелю
	if _, err := s.roomRepo.GetByID(ctx, req.HotelID, req.RoomID); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("ApplyOverride: room id=%d not found in hotel id=%d", req.RoomID, req.HotelID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("ApplyOverride: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: ApplyOverride - get room: %v", ErrInternal, err)
	}

	override, err := s.pricingRepo.UpsertOverride(ctx, &domain.PriceOverride{
		HotelID:     req.HotelID,
		RoomID:      req.RoomID,
		TargetDate:  intpricing.DateOnly(req.TargetDate),
		CustomPrice: req.CustomPrice,
	})
	if err != nil {
		s.logger.Error("ApplyOverride: failed to upsert override for room id=%d date=%s: %v",
			req.RoomID, req.TargetDate.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: ApplyOverride - upsert: %v", ErrInternal, err)
	}

	s.logger.Info("ApplyOverride: room id=%d date=%s price=%.2f",
		req.RoomID, override.TargetDate.Format(domain.DateFormat), override.CustomPrice)

	return models.FromDomainOverride(override), nil
}

// EffectivePrice возвращает цену, действующую для номера на дату:
// оверрайд, если установлен, иначе базовая цена номера.
func (s *Service) EffectivePrice(ctx context.Context, hotelID, roomID int64, targetDate time.Time) (*models.EffectivePriceResponse, error) {
	if hotelID <= 0 || roomID <= 0 || targetDate.IsZero() {
		return nil, fmt.Errorf("%w: hotelID, roomID and targetDate are required", ErrInvalidInput)
	}

	room, err := s.roomRepo.GetByID(ctx, hotelID, roomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("EffectivePrice: room id=%d not found in hotel id=%d", roomID, hotelID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("EffectivePrice: failed to get room id=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: EffectivePrice - get room: %v", ErrInternal, err)
	}

	date := intpricing.DateOnly(targetDate)

	override, err := s.pricingRepo.GetOverride(ctx, roomID, date)
	if err != nil && !errors.Is(err, pricingRepo.ErrOverrideNotFound) {
		s.logger.Error("EffectivePrice: failed to get override for room id=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: EffectivePrice - get override: %v", ErrInternal, err)
	}

	resp := &models.EffectivePriceResponse{
		RoomID:     roomID,
		TargetDate: date.Format(domain.DateFormat),
	}
	if override != nil {
		resp.Price = override.CustomPrice
		resp.Source = "override"
	} else {
		resp.Price = room.BasePrice
		resp.Source = "base"
	}

	return resp, nil
}

// GetHistory возвращает последние записи журнала расчетов по номеру
func (s *Service) GetHistory(ctx context.Context, hotelID, roomID int64, limit uint64) (*models.HistoryResponse, error) {
	if hotelID <= 0 || roomID <= 0 {
		return nil, fmt.Errorf("%w: hotelID and roomID are required", ErrInvalidInput)
	}
	if limit == 0 {
		limit = defaultHistoryLimit
	}

	if _, err := s.roomRepo.GetByID(ctx, hotelID, roomID); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetHistory: failed to get room id=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: GetHistory - get room: %v", ErrInternal, err)
	}

	entries, err := s.pricingRepo.GetHistoryByRoom(ctx, roomID, limit)
	if err != nil {
		s.logger.Error("GetHistory: repository error for room id=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: GetHistory - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainHistory(entries), nil
}
