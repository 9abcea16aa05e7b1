package guestqueries

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-StayService/internal/service/guestqueries/models"
)

const maxQueryLength = 2000

// Ответ-шаблон при недоступном ассистенте
const (
	fallbackIntent   = "general"
	fallbackResponse = "Спасибо за ваш вопрос! Сотрудник отеля свяжется с вами в ближайшее время."
)

// Service сервис гостевых вопросов: классификация через ассистента
// и журналирование для последующей аналитики
type Service struct {
	queryRepo GuestQueryRepository
	assistant AssistantClient
	logger    Logger
}

// NewService создает новый экземпляр сервиса гостевых вопросов
func NewService(queryRepo GuestQueryRepository, assistant AssistantClient, logger Logger) *Service {
	return &Service{
		queryRepo: queryRepo,
		assistant: assistant,
		logger:    logger,
	}
}

// Ask обрабатывает гостевой вопрос. Недоступность ассистента не отказ:
// гость получает шаблонный ответ с намерением "general", вопрос все равно
// журналируется.
func (s *Service) Ask(ctx context.Context, req *models.AskRequest) (*models.AskResponse, error) {
	if req.HotelID <= 0 {
		return nil, fmt.Errorf("%w: hotel id is required", ErrInvalidInput)
	}
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", ErrInvalidInput)
	}
	if len(query) > maxQueryLength {
		return nil, fmt.Errorf("%w: query too long", ErrInvalidInput)
	}

	resp := &models.AskResponse{}

	classification, err := s.assistant.ClassifyWithGracefulDegradation(ctx, req.HotelID, query)
	if err != nil {
		// Ошибка уже залогирована клиентом
		resp.Intent = fallbackIntent
		resp.Response = fallbackResponse
		resp.Degraded = true
	} else {
		resp.Intent = classification.Intent
		resp.Response = classification.Response
	}

	// Журналируем вопрос; сбой записи не валит ответ гостю
	if err := s.queryRepo.Insert(ctx, req.HotelID, query, resp.Intent, resp.Response); err != nil {
		s.logger.Warn("Ask: failed to persist guest query for hotel id=%d: %v", req.HotelID, err)
	}

	return resp, nil
}

// IntentSummary возвращает распределение гостевых вопросов по намерениям
func (s *Service) IntentSummary(ctx context.Context, hotelID int64) (*models.IntentSummaryResponse, error) {
	if hotelID <= 0 {
		return nil, fmt.Errorf("%w: hotel id is required", ErrInvalidInput)
	}

	counts, err := s.queryRepo.IntentSummary(ctx, hotelID)
	if err != nil {
		s.logger.Error("IntentSummary: repository error for hotel id=%d: %v", hotelID, err)
		return nil, fmt.Errorf("%w: IntentSummary - repository error: %v", ErrInternal, err)
	}

	resp := &models.IntentSummaryResponse{
		HotelID: hotelID,
		Intents: make([]models.IntentCountResponse, 0, len(counts)),
	}
	for _, c := range counts {
		resp.Intents = append(resp.Intents, models.IntentCountResponse{
			Intent: c.Intent,
			Count:  c.Count,
		})
	}

	return resp, nil
}
