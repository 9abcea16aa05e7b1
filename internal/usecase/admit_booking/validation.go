package admit_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-StayService/internal/domain"
	"github.com/m04kA/SMC-StayService/internal/pricing"
)

// validateRequest валидирует входные данные запроса.
// Все проверки выполняются до открытия транзакции.
func validateRequest(req *Request) error {
	if req.HotelID <= 0 {
		return fmt.Errorf("%w: hotelID must be positive", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.GuestName) == "" {
		return fmt.Errorf("%w: guest name is required", ErrInvalidInput)
	}

	if len(req.GuestName) > domain.MaxGuestNameLength {
		return fmt.Errorf("%w: guest name is too long", ErrInvalidInput)
	}

	if strings.TrimSpace(req.GuestPhone) == "" {
		return fmt.Errorf("%w: guest phone is required", ErrInvalidInput)
	}

	if req.Units < domain.MinUnitsRequested || req.Units > domain.MaxUnitsRequested {
		return fmt.Errorf("%w: units must be between %d and %d",
			ErrInvalidInput, domain.MinUnitsRequested, domain.MaxUnitsRequested)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: check-in and check-out dates are required", ErrInvalidInput)
	}

	// Интервал полуоткрытый [check_in, check_out): выезд строго позже заезда
	if !req.CheckOut.After(req.CheckIn) {
		return ErrInvalidDateRange
	}

	nights := int(pricing.DateOnly(req.CheckOut).Sub(pricing.DateOnly(req.CheckIn)).Hours() / 24)
	if nights > domain.MaxStayNights {
		return fmt.Errorf("%w: stay cannot exceed %d nights", ErrInvalidInput, domain.MaxStayNights)
	}

	return nil
}
