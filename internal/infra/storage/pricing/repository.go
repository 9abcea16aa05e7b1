package pricing

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

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий ценовых оверрайдов и истории расчетов.
// Оверрайды обновляются upsert'ом по уникальному ключу (room_id, target_date);
// история — чистый append-only журнал.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория прайсинга
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// UpsertOverride вставляет или заменяет оверрайд цены для (номер, дата).
// Конкурентные записи одного и того же ключа сериализуются уникальным
// ограничением таблицы; created_at обновляется при замене.
func (r *Repository) UpsertOverride(ctx context.Context, o *domain.PriceOverride) (*domain.PriceOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("room_price_overrides").
		Columns(
			"hotel_id",
			"room_id",
			"target_date",
			"custom_price",
		).
		Values(
			o.HotelID,
			o.RoomID,
			o.TargetDate,
			o.CustomPrice,
		).
		Suffix(`ON CONFLICT (room_id, target_date)
			DO UPDATE SET custom_price = EXCLUDED.custom_price, created_at = CURRENT_TIMESTAMP
			RETURNING override_id, created_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertOverride - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&o.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertOverride - execute upsert: %v", ErrExecQuery, err)
	}

	o.CreatedAt = createdAt.Time

	return o, nil
}

// GetOverride получает оверрайд цены для (номер, дата)
func (r *Repository) GetOverride(ctx context.Context, roomID int64, targetDate time.Time) (*domain.PriceOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"override_id",
		"hotel_id",
		"room_id",
		"target_date",
		"custom_price",
		"created_at",
	).
		From("room_price_overrides").
		Where(squirrel.Eq{"room_id": roomID, "target_date": targetDate}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOverride - build select query: %v", ErrBuildQuery, err)
	}

	var o domain.PriceOverride
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&o.ID,
		&o.HotelID,
		&o.RoomID,
		&o.TargetDate,
		&o.CustomPrice,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrOverrideNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverride - scan override: %v", ErrScanRow, err)
	}

	o.CreatedAt = createdAt.Time

	return &o, nil
}

// InsertHistory добавляет запись в журнал расчетов.
// Журнал append-only: записи никогда не изменяются и не удаляются.
func (r *Repository) InsertHistory(ctx context.Context, e *domain.PricingHistoryEntry) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("pricing_history").
		Columns(
			"hotel_id",
			"room_id",
			"date_for_booking",
			"base_price",
			"calculated_price",
			"occupancy_rate",
			"days_until",
			"is_weekend",
			"is_holiday",
			"season",
			"multiplier",
			"reason",
		).
		Values(
			e.HotelID,
			e.RoomID,
			e.DateForBooking,
			e.BasePrice,
			e.CalculatedPrice,
			e.OccupancyRate,
			e.DaysUntil,
			e.IsWeekend,
			e.IsHoliday,
			e.Season,
			e.Multiplier,
			e.Reason,
		).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: InsertHistory - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: InsertHistory - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetHistoryByRoom получает последние записи журнала по номеру
func (r *Repository) GetHistoryByRoom(ctx context.Context, roomID int64, limit uint64) ([]*domain.PricingHistoryEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"history_id",
		"hotel_id",
		"room_id",
		"date_for_booking",
		"base_price",
		"calculated_price",
		"occupancy_rate",
		"days_until",
		"is_weekend",
		"is_holiday",
		"season",
		"multiplier",
		"reason",
		"created_at",
	).
		From("pricing_history").
		Where(squirrel.Eq{"room_id": roomID}).
		OrderBy("created_at DESC").
		Limit(limit).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetHistoryByRoom - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetHistoryByRoom - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.PricingHistoryEntry, 0)
	for rows.Next() {
		var e domain.PricingHistoryEntry
		var createdAt sql.NullTime

		err := rows.Scan(
			&e.ID,
			&e.HotelID,
			&e.RoomID,
			&e.DateForBooking,
			&e.BasePrice,
			&e.CalculatedPrice,
			&e.OccupancyRate,
			&e.DaysUntil,
			&e.IsWeekend,
			&e.IsHoliday,
			&e.Season,
			&e.Multiplier,
			&e.Reason,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetHistoryByRoom - scan row: %v", ErrScanRow, err)
		}

		e.CreatedAt = createdAt.Time

		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetHistoryByRoom - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}
