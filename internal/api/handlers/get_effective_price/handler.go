package get_effective_price

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StayService/internal/api/handlers"
	"github.com/m04kA/SMC-StayService/internal/domain"
	"github.com/m04kA/SMC-StayService/internal/service/pricing"
)

const (
	msgInvalidHotelID = "некорректный ID отеля"
	msgInvalidRoomID  = "некорректный ID номера"
	msgInvalidDate    = "некорректный параметр date, ожидается YYYY-MM-DD"
	msgRoomNotFound   = "номер не найден"
)

type Handler struct {
	service PricingService
	logger  Logger
}

func NewHandler(service PricingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/hotels/{hotelId}/rooms/{roomId}/price?date=YYYY-MM-DD
// Без параметра date берется сегодняшняя дата
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	hotelID, err := strconv.ParseInt(vars["hotelId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/price - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/price - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	targetDate := time.Now()
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		targetDate, err = time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /rooms/{id}/price - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
	}

	result, err := h.service.EffectivePrice(r.Context(), hotelID, roomID, targetDate)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/price - Room not found: hotel_id=%d, room_id=%d", hotelID, roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, pricing.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/price - Invalid input: room_id=%d", roomID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /rooms/{id}/price - Failed: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{id}/price - Effective price: room_id=%d, price=%.2f, source=%s",
		roomID, result.Price, result.Source)
	handlers.RespondJSON(w, http.StatusOK, result)
}
