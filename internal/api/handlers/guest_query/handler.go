package guest_query

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StayService/internal/api/handlers"
	"github.com/m04kA/SMC-StayService/internal/service/guestqueries"
	"github.com/m04kA/SMC-StayService/internal/service/guestqueries/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidHotelID     = "некорректный ID отеля"
	msgInvalidQuery       = "некорректный текст вопроса"
)

type Handler struct {
	service GuestQueryService
	logger  Logger
}

func NewHandler(service GuestQueryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// GuestQueryRequest HTTP request model
type GuestQueryRequest struct {
	Query string `json:"query"`
}

// Handle POST /api/v1/hotels/{hotelId}/guest-query
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	hotelID, err := strconv.ParseInt(vars["hotelId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /hotels/{id}/guest-query - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	var req GuestQueryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /hotels/{id}/guest-query - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Ask(r.Context(), &models.AskRequest{
		HotelID: hotelID,
		Query:   req.Query,
	})
	if err != nil {
		switch {
		case errors.Is(err, guestqueries.ErrInvalidInput):
			h.logger.Warn("POST /hotels/{id}/guest-query - Invalid query: hotel_id=%d", hotelID)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("POST /hotels/{id}/guest-query - Failed: hotel_id=%d, error=%v", hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /hotels/{id}/guest-query - Answered: hotel_id=%d, intent=%s, degraded=%t",
		hotelID, result.Intent, result.Degraded)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleSummary GET /api/v1/hotels/{hotelId}/guest-queries/summary
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	hotelID, err := strconv.ParseInt(vars["hotelId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /hotels/{id}/guest-queries/summary - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	result, err := h.service.IntentSummary(r.Context(), hotelID)
	if err != nil {
		switch {
		case errors.Is(err, guestqueries.ErrInvalidInput):
			h.logger.Warn("GET /hotels/{id}/guest-queries/summary - Invalid input: hotel_id=%d", hotelID)
			handlers.RespondBadRequest(w, msgInvalidHotelID)

		default:
			h.logger.Error("GET /hotels/{id}/guest-queries/summary - Failed: hotel_id=%d, error=%v", hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /hotels/{id}/guest-queries/summary - %d intents: hotel_id=%d", len(result.Intents), hotelID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
