package quote_price

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StayService/internal/api/handlers"
	"github.com/m04kA/SMC-StayService/internal/domain"
	quotePrice "github.com/m04kA/SMC-StayService/internal/usecase/quote_price"
)

const (
	msgInvalidHotelID = "некорректный ID отеля"
	msgInvalidRoomID  = "некорректный ID номера"
	msgInvalidDate    = "некорректный параметр date, ожидается YYYY-MM-DD"
	msgInvalidInput   = "некорректные параметры запроса"
)

type Handler struct {
	useCase QuotePriceUseCase
	logger  Logger
}

func NewHandler(useCase QuotePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/hotels/{hotelId}/rooms/{roomId}/quote?date=YYYY-MM-DD
// Без параметра date котируется сегодняшняя дата
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	hotelID, err := strconv.ParseInt(vars["hotelId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/quote - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/quote - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	targetDate := time.Now()
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		targetDate, err = time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /rooms/{id}/quote - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &quotePrice.Request{
		HotelID:    hotelID,
		RoomID:     roomID,
		TargetDate: targetDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, quotePrice.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/quote - Invalid input: hotel_id=%d, room_id=%d", hotelID, roomID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /rooms/{id}/quote - Failed to quote: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{id}/quote - Quote calculated: room_id=%d, price=%.0f, multiplier=%.2f",
		roomID, result.CalculatedPrice, result.Multiplier)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(roomID, targetDate.Format(domain.DateFormat), result))
}
