package booking

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayService/internal/domain"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func TestBookedUnitsQuery(t *testing.T) {
	repo, mock := newMockRepo(t)

	start := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 7, 13, 0, 0, 0, 0, time.UTC)

	// squirrel сортирует ключи Eq: room_id идет раньше status.
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(units_requested\), 0\) FROM bookings WHERE room_id = \$1 AND status = \$2 AND check_in_date < \$3 AND check_out_date > \$4`).
		WithArgs(int64(42), domain.StatusConfirmed, end, start).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(7))

	booked, err := repo.BookedUnits(context.Background(), 42, start, end)

	require.NoError(t, err)
	assert.Equal(t, 7, booked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookedUnitsOnSingleDay(t *testing.T) {
	repo, mock := newMockRepo(t)

	date := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)

	// Одна дата превращается в полуоткрытый интервал [date, date+1).
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(units_requested\), 0\) FROM bookings`).
		WithArgs(int64(42), domain.StatusConfirmed, date.AddDate(0, 0, 1), date).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(3))

	booked, err := repo.BookedUnitsOn(context.Background(), 42, date)

	require.NoError(t, err)
	assert.Equal(t, 3, booked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountCreatedSinceIgnoresStatus(t *testing.T) {
	repo, mock := newMockRepo(t)

	since := time.Date(2026, 7, 9, 12, 0, 0, 0, time.UTC)

	// Сигнал скорости: считаются и отмененные бронирования, фильтра по
	// статусу в запросе нет.
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings WHERE room_id = \$1 AND created_at >= \$2`).
		WithArgs(int64(42), since).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	count, err := repo.CountCreatedSince(context.Background(), 42, since)

	require.NoError(t, err)
	assert.Equal(t, 5, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT booking_id, hotel_id, room_id, .+ FROM bookings WHERE booking_id = \$1`).
		WithArgs(int64(999)).
		WillReturnRows(sqlmock.NewRows([]string{"booking_id"}))

	_, err := repo.GetByID(context.Background(), 999)

	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelFlipsStatus(t *testing.T) {
	repo, mock := newMockRepo(t)

	// Перевод статуса условный: отменяется только confirmed-строка.
	mock.ExpectExec(`UPDATE bookings SET status = \$1, updated_at = NOW\(\) WHERE booking_id = \$2 AND status = \$3`).
		WithArgs(domain.StatusCancelled, int64(17), domain.StatusConfirmed).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Cancel(context.Background(), 17)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelAlreadyInactive(t *testing.T) {
	repo, mock := newMockRepo(t)

	// 0 строк: бронирование либо уже отменено, либо отсутствует.
	mock.ExpectExec(`UPDATE bookings SET status = \$1, updated_at = NOW\(\)`).
		WithArgs(domain.StatusCancelled, int64(404), domain.StatusConfirmed).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Cancel(context.Background(), 404)

	assert.ErrorIs(t, err, ErrBookingNotActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByHotelWithFilterDefaultsToConfirmed(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"booking_id", "hotel_id", "room_id", "guest_name", "guest_phone",
		"check_in_date", "check_out_date", "units_requested", "status",
		"created_at", "updated_at",
	}).AddRow(
		int64(1), int64(10), int64(42), "Иван Петров", "+79990001122",
		time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 7, 13, 0, 0, 0, 0, time.UTC),
		2, string(domain.StatusConfirmed), now, now,
	)

	// Без явного статуса и IncludeInactive выборка сужается до confirmed.
	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE hotel_id = \$1 AND status = \$2 ORDER BY created_at DESC`).
		WithArgs(int64(10), domain.StatusConfirmed).
		WillReturnRows(rows)

	bookings, err := repo.GetByHotelWithFilter(context.Background(), domain.HotelBookingsFilter{HotelID: 10})

	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, int64(1), bookings[0].ID)
	assert.Equal(t, "Иван Петров", bookings[0].GuestName)
	assert.Equal(t, domain.StatusConfirmed, bookings[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
