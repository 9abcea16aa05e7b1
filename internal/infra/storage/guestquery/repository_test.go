package guestquery

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func TestInsertColumnList(t *testing.T) {
	repo, mock := newMockRepo(t)

	// Список колонок зафиксирован: должен совпадать со схемой guest_queries.
	mock.ExpectExec(`INSERT INTO guest_queries \(hotel_id,query_text,intent_detected,response_text\) VALUES \(\$1,\$2,\$3,\$4\)`).
		WithArgs(int64(10), "есть ли парковка?", "amenities", "Да, парковка есть.").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Insert(context.Background(), 10, "есть ли парковка?", "amenities", "Да, парковка есть.")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIntentSummaryGroupsByIntent(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows([]string{"intent_detected", "count"}).
		AddRow("booking", 5).
		AddRow("amenities", 2)

	mock.ExpectQuery(`SELECT intent_detected, COUNT\(\*\) AS count FROM guest_queries WHERE hotel_id = \$1 GROUP BY intent_detected ORDER BY count DESC`).
		WithArgs(int64(10)).
		WillReturnRows(rows)

	summary, err := repo.IntentSummary(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, summary, 2)
	assert.Equal(t, "booking", summary[0].Intent)
	assert.Equal(t, 5, summary[0].Count)
	assert.Equal(t, "amenities", summary[1].Intent)
	assert.NoError(t, mock.ExpectationsWereMet())
}
