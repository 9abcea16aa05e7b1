package apply_override

import (
	"time"

	"github.com/m04kA/SMC-StayService/internal/domain"
	"github.com/m04kA/SMC-StayService/internal/service/pricing/models"
)

// ApplyOverrideRequest HTTP request model
type ApplyOverrideRequest struct {
	TargetDate  string  `json:"targetDate"` // "2026-03-15"
	CustomPrice float64 `json:"customPrice"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *ApplyOverrideRequest) ToServiceRequest(hotelID, roomID int64) (*models.ApplyOverrideRequest, error) {
	targetDate, err := time.Parse(domain.DateFormat, r.TargetDate)
	if err != nil {
		return nil, err
	}

	return &models.ApplyOverrideRequest{
		HotelID:     hotelID,
		RoomID:      roomID,
		TargetDate:  targetDate,
		CustomPrice: r.CustomPrice,
	}, nil
}
