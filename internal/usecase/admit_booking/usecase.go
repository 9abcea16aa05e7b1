package admit_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StayService/internal/domain"
	roomRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/room"
	"github.com/m04kA/SMC-StayService/internal/pricing"
	"github.com/m04kA/SMC-StayService/pkg/txmanager"
)

// UseCase admission-протокол бронирования.
//
// Весь критический участок выполняется в одной транзакции под эксклюзивной
// блокировкой строки номера (FOR UPDATE): чтение вместимости, подсчет занятых
// юнитов по журналу бронирований и вставка новой записи. Блокировка на весь
// номер, а не на диапазон дат — конкурентные заявки по одному номеру
// сериализуются независимо от дат. Это жертвует параллелизмом
// непересекающихся диапазонов ради простоты и корректности.
//
// Вместимость всегда выводится из журнала; никакие счетчики не декрементируются.
type UseCase struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет допуск бронирования.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AdmitBooking: hotel=%d, room=%d, guest=%s, check_in=%s, check_out=%s, units=%d",
		req.HotelID, req.RoomID, req.GuestName,
		req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat), req.Units)

	// 1. Валидация до любого I/O
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AdmitBooking: validation failed: %v", err)
		return nil, err
	}

	checkIn := pricing.DateOnly(req.CheckIn)
	checkOut := pricing.DateOnly(req.CheckOut)

	var result *domain.Booking
	var unitsLeft int

	// 2. Критический участок: блокировка номера, проверка, вставка
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Строка номера с FOR UPDATE — точка сериализации
		room, err := uc.roomRepo.GetByID(txCtx, req.HotelID, req.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("AdmitBooking: room id=%d not found in hotel id=%d", req.RoomID, req.HotelID)
				return ErrRoomNotFound
			}
			uc.logger.Error("AdmitBooking: failed to lock room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}

		// 2.2. Занятость по журналу за весь интервал [check_in, check_out).
		// Сумма пересекающихся подтвержденных бронирований — консервативная
		// достаточная проверка худшего дня диапазона.
		booked, err := uc.bookingRepo.BookedUnits(txCtx, req.RoomID, checkIn, checkOut)
		if err != nil {
			uc.logger.Error("AdmitBooking: failed to count booked units for room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to count booked units: %v", ErrInternal, err)
		}

		// 2.3. Проверка вместимости
		available := room.TotalUnits - booked
		if available <= 0 || req.Units > available {
			uc.logger.Warn("AdmitBooking: capacity exceeded for room id=%d: requested=%d, available=%d/%d",
				req.RoomID, req.Units, available, room.TotalUnits)
			return ErrCapacityExceeded
		}

		uc.logger.Info("AdmitBooking: room id=%d has %d/%d units free for the range",
			req.RoomID, available, room.TotalUnits)

		// 2.4. Вставка бронирования в статусе confirmed
		booking := &domain.Booking{
			HotelID:        req.HotelID,
			RoomID:         req.RoomID,
			GuestName:      req.GuestName,
			GuestPhone:     req.GuestPhone,
			CheckInDate:    checkIn,
			CheckOutDate:   checkOut,
			UnitsRequested: req.Units,
			Status:         domain.StatusConfirmed,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("AdmitBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		unitsLeft = available - req.Units
		return nil
	})

	if err != nil {
		// Конфликт блокировки или сериализации: транзакция откачена,
		// вызывающая сторона может повторить попытку целиком
		if errors.Is(err, txmanager.ErrTxConflict) {
			uc.logger.Warn("AdmitBooking: transaction conflict for room id=%d: %v", req.RoomID, err)
			return nil, ErrBusy
		}
		return nil, err
	}

	uc.logger.Info("AdmitBooking: successfully admitted booking id=%d", result.ID)

	return &Response{
		ID:         result.ID,
		HotelID:    result.HotelID,
		RoomID:     result.RoomID,
		GuestName:  result.GuestName,
		GuestPhone: result.GuestPhone,
		CheckIn:    result.CheckInDate,
		CheckOut:   result.CheckOutDate,
		Units:      result.UnitsRequested,
		Status:     string(result.Status),
		UnitsLeft:  unitsLeft,
		CreatedAt:  result.CreatedAt,
	}, nil
}
