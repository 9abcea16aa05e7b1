package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StayService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-StayService/internal/service/bookings/models"
)

// Service сервис для работы с существующими бронированиями:
// чтение, выборки по отелю и отмена. Создание бронирований живет в
// usecase admit_booking, потому что требует блокировки номера.
type Service struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetHotelBookings получает бронирования отеля с гибкой фильтрацией
//
// Примеры использования:
// - Все активные бронирования: GetHotelBookings(ctx, &GetHotelBookingsRequest{HotelID: 1})
// - Бронирования конкретного номера: указать RoomID
// - Заезды за период: StartDate и EndDate
// - Включая отмененные: IncludeInactive = true
func (s *Service) GetHotelBookings(ctx context.Context, req *models.GetHotelBookingsRequest) (*models.BookingListResponse, error) {
	if req.HotelID <= 0 {
		return nil, fmt.Errorf("%w: hotel id is required", ErrInvalidInput)
	}
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, fmt.Errorf("%w: endDate before startDate", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetHotelBookings: invalid filter for hotel=%d: %v", req.HotelID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByHotelWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetHotelBookings: repository error for hotel=%d: %v", req.HotelID, err)
		return nil, fmt.Errorf("%w: GetHotelBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetHotelBookings: fetched %d bookings for hotel=%d", len(bookings), req.HotelID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование. Повторная отмена возвращает ErrAlreadyCancelled.
// Блокировка номера не нужна: отмена только освобождает вместимость, гонка
// с параллельным заселением безопасна в сторону недопродажи.
func (s *Service) Cancel(ctx context.Context, bookingID int64) (*models.BookingResponse, error) {
	if bookingID <= 0 {
		return nil, fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}

	s.logger.Info("Cancel: cancelling booking id=%d", bookingID)

	var cancelled *models.BookingResponse

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		booking, err := s.bookingRepo.GetByID(ctx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Cancel - get booking: %v", ErrInternal, err)
		}

		if booking.IsCancelled() {
			return ErrAlreadyCancelled
		}

		// Сам перевод статуса условный (status = confirmed): параллельная
		// отмена, успевшая первой, оставляет этой 0 строк.
		if err := s.bookingRepo.Cancel(ctx, bookingID); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotActive) {
				return ErrAlreadyCancelled
			}
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		cancelled = models.FromDomainBooking(booking)
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
		case errors.Is(err, ErrAlreadyCancelled):
			s.logger.Warn("Cancel: booking id=%d already cancelled", bookingID)
		default:
			s.logger.Error("Cancel: failed for booking id=%d: %v", bookingID, err)
		}
		return nil, err
	}

	cancelled.Status = string(domain.StatusCancelled)

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return cancelled, nil
}
