package get_pricing_history

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StayService/internal/api/handlers"
	"github.com/m04kA/SMC-StayService/internal/service/pricing"
)

const (
	msgInvalidHotelID = "некорректный ID отеля"
	msgInvalidRoomID  = "некорректный ID номера"
	msgInvalidLimit   = "некорректный параметр limit"
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

// Handle GET /api/v1/hotels/{hotelId}/rooms/{roomId}/pricing-history?limit=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	hotelID, err := strconv.ParseInt(vars["hotelId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/pricing-history - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/pricing-history - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	var limit uint64
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err = strconv.ParseUint(limitStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /rooms/{id}/pricing-history - Invalid limit: %q", limitStr)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
	}

	result, err := h.service.GetHistory(r.Context(), hotelID, roomID, limit)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/pricing-history - Room not found: hotel_id=%d, room_id=%d", hotelID, roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, pricing.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/pricing-history - Invalid input: room_id=%d", roomID)
			handlers.RespondBadRequest(w, msgInvalidRoomID)

		default:
			h.logger.Error("GET /rooms/{id}/pricing-history - Failed: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{id}/pricing-history - %d entries: room_id=%d", len(result.Entries), roomID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
