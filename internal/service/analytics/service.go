package analytics

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-StayService/internal/service/analytics/models"
)

// Service сервис сводной аналитики по отелю
type Service struct {
	analyticsRepo AnalyticsRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса аналитики
func NewService(analyticsRepo AnalyticsRepository, logger Logger) *Service {
	return &Service{
		analyticsRepo: analyticsRepo,
		logger:        logger,
	}
}

// Summary возвращает сводку по отелю: число подтвержденных и отмененных
// бронирований, выручку по подтвержденным и самый бронируемый тип номера
func (s *Service) Summary(ctx context.Context, hotelID int64) (*models.SummaryResponse, error) {
	if hotelID <= 0 {
		return nil, fmt.Errorf("%w: hotel id is required", ErrInvalidInput)
	}

	summary, err := s.analyticsRepo.Summary(ctx, hotelID)
	if err != nil {
		s.logger.Error("Summary: repository error for hotel id=%d: %v", hotelID, err)
		return nil, fmt.Errorf("%w: Summary - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Summary: hotel id=%d confirmed=%d cancelled=%d revenue=%.2f",
		hotelID, summary.ConfirmedBookings, summary.CancelledBookings, summary.TotalRevenue)

	return models.FromDomainSummary(hotelID, summary), nil
}
