package apply_override

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StayService/internal/api/handlers"
	"github.com/m04kA/SMC-StayService/internal/api/middleware"
	"github.com/m04kA/SMC-StayService/internal/service/pricing"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidHotelID     = "некорректный ID отеля"
	msgInvalidRoomID      = "некорректный ID номера"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные оверрайда"
	msgRoomNotFound       = "номер не найден"
	msgMissingStaffID     = "отсутствует ID сотрудника"
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

// Handle POST /api/v1/hotels/{hotelId}/rooms/{roomId}/price-override
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	hotelID, err := strconv.ParseInt(vars["hotelId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /rooms/{id}/price-override - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /rooms/{id}/price-override - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	staffID, ok := middleware.GetStaffID(r.Context())
	if !ok {
		h.logger.Warn("POST /rooms/{id}/price-override - Missing staff ID")
		handlers.RespondUnauthorized(w, msgMissingStaffID)
		return
	}

	var req ApplyOverrideRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms/{id}/price-override - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(hotelID, roomID)
	if err != nil {
		h.logger.Warn("POST /rooms/{id}/price-override - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.ApplyOverride(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrRoomNotFound):
			h.logger.Warn("POST /rooms/{id}/price-override - Room not found: hotel_id=%d, room_id=%d", hotelID, roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, pricing.ErrInvalidInput):
			h.logger.Warn("POST /rooms/{id}/price-override - Invalid input: room_id=%d, error=%v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /rooms/{id}/price-override - Failed: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms/{id}/price-override - Override applied: room_id=%d, date=%s, price=%.2f, staff_id=%d",
		roomID, result.TargetDate, result.CustomPrice, staffID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
