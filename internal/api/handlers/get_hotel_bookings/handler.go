package get_hotel_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StayService/internal/api/handlers"
	"github.com/m04kA/SMC-StayService/internal/api/middleware"
	"github.com/m04kA/SMC-StayService/internal/service/bookings"
)

const (
	msgInvalidHotelID = "некорректный ID отеля"
	msgInvalidParams  = "некорректные параметры запроса"
	msgMissingStaffID = "отсутствует ID сотрудника"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/hotels/{hotelId}/bookings
// Query params: roomId, status, startDate, endDate, includeInactive (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем hotelId из URL
	vars := mux.Vars(r)
	hotelIDStr := vars["hotelId"]

	hotelID, err := strconv.ParseInt(hotelIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /hotels/{id}/bookings - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	// Staff-роут: ID сотрудника кладет middleware Auth
	staffID, ok := middleware.GetStaffID(r.Context())
	if !ok {
		h.logger.Warn("GET /hotels/{id}/bookings - Missing staff ID")
		handlers.RespondUnauthorized(w, msgMissingStaffID)
		return
	}

	// Получаем опциональные query параметры
	q := r.URL.Query()
	serviceReq, err := ToServiceRequest(hotelID,
		q.Get("roomId"), q.Get("status"), q.Get("startDate"), q.Get("endDate"), q.Get("includeInactive"))
	if err != nil {
		h.logger.Warn("GET /hotels/{id}/bookings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.GetHotelBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /hotels/{id}/bookings - Invalid input: hotel_id=%d", hotelID)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /hotels/{id}/bookings - Failed to get bookings: hotel_id=%d, error=%v", hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /hotels/{id}/bookings - Retrieved %d bookings: hotel_id=%d, staff_id=%d",
		len(result.Bookings), hotelID, staffID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
