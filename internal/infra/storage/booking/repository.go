package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-StayService/internal/domain"
	"github.com/m04kA/SMC-StayService/pkg/dbmetrics"
	"github.com/m04kA/SMC-StayService/pkg/psqlbuilder"
)

// Repository репозиторий бронирований. Таблица bookings append/flip-only:
// строки не удаляются, даты не редактируются, единственная мутация —
// перевод статуса confirmed -> cancelled.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование в статусе confirmed.
// Вызывается только из admission-протокола внутри транзакции с удержанной
// блокировкой номера: сам insert проверок вместимости не делает.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"hotel_id",
			"room_id",
			"guest_name",
			"guest_phone",
			"check_in_date",
			"check_out_date",
			"units_requested",
			"status",
		).
		Values(
			b.HotelID,
			b.RoomID,
			b.GuestName,
			b.GuestPhone,
			b.CheckInDate,
			b.CheckOutDate,
			b.UnitsRequested,
			b.Status,
		).
		Suffix("RETURNING booking_id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"booking_id",
		"hotel_id",
		"room_id",
		"guest_name",
		"guest_phone",
		"check_in_date",
		"check_out_date",
		"units_requested",
		"status",
		"created_at",
		"updated_at",
	).
		From("bookings").
		Where(squirrel.Eq{"booking_id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.Booking
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&b.HotelID,
		&b.RoomID,
		&b.GuestName,
		&b.GuestPhone,
		&b.CheckInDate,
		&b.CheckOutDate,
		&b.UnitsRequested,
		&b.Status,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

// BookedUnits считает, сколько юнитов номера уже занято подтвержденными
// бронированиями, пересекающимися с полуоткрытым интервалом [start, end).
// Тест пересечения: check_in < end AND check_out > start — день выезда
// свободен для новых заездов.
//
// Метод одинаково работает снапшотным чтением (квотирование) и внутри
// транзакции admission-протокола: исполнитель берется из контекста.
func (r *Repository) BookedUnits(ctx context.Context, roomID int64, start, end time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(units_requested), 0)").
		From("bookings").
		Where(squirrel.Eq{"room_id": roomID, "status": domain.StatusConfirmed}).
		Where(squirrel.Lt{"check_in_date": end}).
		Where(squirrel.Gt{"check_out_date": start}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: BookedUnits - build select query: %v", ErrBuildQuery, err)
	}

	var booked int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&booked); err != nil {
		return 0, fmt.Errorf("%w: BookedUnits - scan sum: %v", ErrScanRow, err)
	}

	return booked, nil
}

// BookedUnitsOn считает занятые юниты на одну дату: [date, date+1).
func (r *Repository) BookedUnitsOn(ctx context.Context, roomID int64, date time.Time) (int, error) {
	return r.BookedUnits(ctx, roomID, date, date.AddDate(0, 0, 1))
}

// CountCreatedSince считает бронирования номера, созданные после since,
// независимо от статуса. Сигнал скорости бронирований для surge-прайсинга,
// не проверка вместимости.
func (r *Repository) CountCreatedSince(ctx context.Context, roomID int64, since time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.GtOrEq{"created_at": since}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountCreatedSince - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountCreatedSince - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// GetByHotelWithFilter получает бронирования отеля с гибкой фильтрацией
// по номеру, периоду заезда и статусу. Для дашборда персонала.
func (r *Repository) GetByHotelWithFilter(ctx context.Context, filter domain.HotelBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"booking_id",
		"hotel_id",
		"room_id",
		"guest_name",
		"guest_phone",
		"check_in_date",
		"check_out_date",
		"units_requested",
		"status",
		"created_at",
		"updated_at",
	).
		From("bookings").
		Where(squirrel.Eq{"hotel_id": filter.HotelID})

	if filter.RoomID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_id": *filter.RoomID})
	}

	// Фильтрация по периоду заезда
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"check_in_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"check_in_date": *filter.EndDate})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": domain.StatusConfirmed})
	}

	selectBuilder = selectBuilder.OrderBy("created_at DESC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByHotelWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByHotelWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// Cancel переводит бронирование в статус cancelled.
// Поля дат не трогаются: освобождение вместимости выводится из статуса.
// Условие status = confirmed делает перевод атомарным: при гонке двух
// отмен вторая получает 0 строк и ErrBookingNotActive.
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"booking_id": id}).
		Where(squirrel.Eq{"status": domain.StatusConfirmed}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotActive
	}

	return nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var b domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&b.HotelID,
			&b.RoomID,
			&b.GuestName,
			&b.GuestPhone,
			&b.CheckInDate,
			&b.CheckOutDate,
			&b.UnitsRequested,
			&b.Status,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		b.CreatedAt = createdAt.Time
		b.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
