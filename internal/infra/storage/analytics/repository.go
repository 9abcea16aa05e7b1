package analytics

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-StayService/internal/domain"
	"github.com/m04kA/SMC-StayService/pkg/dbmetrics"
	"github.com/m04kA/SMC-StayService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository агрегирующие запросы для дашборда персонала.
// Только чтение поверх журнала бронирований.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория аналитики
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Summary собирает сводку по отелю: количество подтвержденных и отмененных
// бронирований, выручку (ночи x базовая цена по подтвержденным) и самый
// популярный тип номера.
func (r *Repository) Summary(ctx context.Context, hotelID int64) (*domain.AnalyticsSummary, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	summary := &domain.AnalyticsSummary{}

	// Счетчики по статусам и выручка одним запросом
	query, args, err := psqlbuilder.Select(
		fmt.Sprintf("COUNT(*) FILTER (WHERE b.status = '%s')", domain.StatusConfirmed),
		fmt.Sprintf("COUNT(*) FILTER (WHERE b.status = '%s')", domain.StatusCancelled),
		fmt.Sprintf(`COALESCE(SUM(CASE WHEN b.status = '%s'
			THEN (b.check_out_date - b.check_in_date) * b.units_requested * r.base_price
			ELSE 0 END), 0)`, domain.StatusConfirmed),
	).
		From("bookings b").
		Join("rooms r ON b.room_id = r.room_id").
		Where(squirrel.Eq{"b.hotel_id": hotelID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Summary - build counters query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&summary.ConfirmedBookings,
		&summary.CancelledBookings,
		&summary.TotalRevenue,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Summary - scan counters: %v", ErrScanRow, err)
	}

	// Самый популярный тип номера среди подтвержденных бронирований
	query, args, err = psqlbuilder.Select(
		"r.room_type",
		"COUNT(*) AS bookings",
	).
		From("bookings b").
		Join("rooms r ON b.room_id = r.room_id").
		Where(squirrel.Eq{"b.hotel_id": hotelID, "b.status": domain.StatusConfirmed}).
		GroupBy("r.room_type").
		OrderBy("bookings DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Summary - build popular room query: %v", ErrBuildQuery, err)
	}

	var popular domain.RoomPopularity
	err = executor.QueryRowContext(ctx, query, args...).Scan(&popular.RoomType, &popular.Bookings)
	if err == sql.ErrNoRows {
		// У отеля еще нет подтвержденных бронирований
		return summary, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Summary - scan popular room: %v", ErrScanRow, err)
	}

	summary.MostPopularRoom = &popular

	return summary, nil
}
