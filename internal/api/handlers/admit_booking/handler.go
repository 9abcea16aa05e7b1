package admit_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StayService/internal/api/handlers"
	admitBooking "github.com/m04kA/SMC-StayService/internal/usecase/admit_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные бронирования"
	msgInvalidDateRange   = "дата выезда должна быть позже даты заезда"
	msgRoomNotFound       = "номер не найден"
	msgCapacityExceeded   = "недостаточно свободных номеров на выбранные даты"
	msgBusy               = "номер занят другим запросом, повторите попытку"
)

type Handler struct {
	useCase AdmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase AdmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AdmitBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, admitBooking.ErrInvalidDateRange):
			h.logger.Warn("POST /bookings - Invalid date range: room_id=%d", req.RoomID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, admitBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: hotel_id=%d, room_id=%d, error=%v",
				req.HotelID, req.RoomID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, admitBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: hotel_id=%d, room_id=%d", req.HotelID, req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, admitBooking.ErrCapacityExceeded):
			h.logger.Warn("POST /bookings - Capacity exceeded: room_id=%d, units=%d", req.RoomID, req.Units)
			handlers.RespondError(w, http.StatusConflict, msgCapacityExceeded)

		case errors.Is(err, admitBooking.ErrBusy):
			h.logger.Warn("POST /bookings - Room busy: room_id=%d", req.RoomID)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgBusy)

		default:
			h.logger.Error("POST /bookings - Failed to admit booking: hotel_id=%d, room_id=%d, error=%v",
				req.HotelID, req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking admitted successfully: booking_id=%d, room_id=%d, units_left=%d",
		result.ID, result.RoomID, result.UnitsLeft)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
