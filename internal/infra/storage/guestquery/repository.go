package guestquery

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-StayService/pkg/dbmetrics"
	"github.com/m04kA/SMC-StayService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// IntentCount количество запросов гостей по одному интенту
type IntentCount struct {
	Intent string
	Count  int
}

// Repository журнал запросов гостей к ассистенту.
// Ядро бронирования и прайсинга от этих данных не зависит.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория запросов гостей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Insert сохраняет запрос гостя вместе с распознанным интентом и ответом
func (r *Repository) Insert(ctx context.Context, hotelID int64, queryText, intent, response string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("guest_queries").
		Columns(
			"hotel_id",
			"query_text",
			"intent_detected",
			"response_text",
		).
		Values(
			hotelID,
			queryText,
			intent,
			response,
		).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Insert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Insert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// IntentSummary возвращает распределение запросов гостей по интентам
func (r *Repository) IntentSummary(ctx context.Context, hotelID int64) ([]IntentCount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"intent_detected",
		"COUNT(*) AS count",
	).
		From("guest_queries").
		Where(squirrel.Eq{"hotel_id": hotelID}).
		GroupBy("intent_detected").
		OrderBy("count DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: IntentSummary - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: IntentSummary - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make([]IntentCount, 0)
	for rows.Next() {
		var ic IntentCount
		if err := rows.Scan(&ic.Intent, &ic.Count); err != nil {
			return nil, fmt.Errorf("%w: IntentSummary - scan row: %v", ErrScanRow, err)
		}
		counts = append(counts, ic)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: IntentSummary - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}
