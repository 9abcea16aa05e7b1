package recommend_prices

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StayService/internal/api/handlers"
	recommendPrices "github.com/m04kA/SMC-StayService/internal/usecase/recommend_prices"
)

const (
	msgInvalidHotelID = "некорректный ID отеля"
	msgInvalidDays    = "некорректный параметр days"
	msgHotelNotFound  = "в отеле нет номеров"
	msgInvalidInput   = "некорректные параметры запроса"
)

type Handler struct {
	useCase RecommendPricesUseCase
	logger  Logger
}

func NewHandler(useCase RecommendPricesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/hotels/{hotelId}/recommendations?days=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	hotelID, err := strconv.ParseInt(vars["hotelId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /hotels/{id}/recommendations - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	days := 0
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		days, err = strconv.Atoi(daysStr)
		if err != nil || days < 0 {
			h.logger.Warn("GET /hotels/{id}/recommendations - Invalid days param: %q", daysStr)
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &recommendPrices.Request{
		HotelID: hotelID,
		Days:    days,
	})
	if err != nil {
		switch {
		case errors.Is(err, recommendPrices.ErrHotelNotFound):
			h.logger.Warn("GET /hotels/{id}/recommendations - No rooms: hotel_id=%d", hotelID)
			handlers.RespondNotFound(w, msgHotelNotFound)

		case errors.Is(err, recommendPrices.ErrInvalidInput):
			h.logger.Warn("GET /hotels/{id}/recommendations - Invalid input: hotel_id=%d", hotelID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /hotels/{id}/recommendations - Failed: hotel_id=%d, error=%v", hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /hotels/{id}/recommendations - %d recommendations: hotel_id=%d, days=%d",
		len(result.Recommendations), hotelID, result.Days)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
