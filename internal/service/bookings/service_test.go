package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-StayService/internal/service/bookings/models"
	"github.com/m04kA/SMC-StayService/pkg/ptr"
)

// Фейки

type fakeBookingRepo struct {
	booking   *domain.Booking
	getErr    error
	cancelErr error
	cancelled []int64

	lastFilter domain.HotelBookingsFilter
	list       []*domain.Booking
	listErr    error
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) GetByHotelWithFilter(_ context.Context, filter domain.HotelBookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	return f.list, f.listErr
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelled = append(f.cancelled, id)
	return nil
}

type fakeTxManager struct{ called bool }

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.called = true
	return fn(ctx)
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (f *fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func confirmedBooking() *domain.Booking {
	return &domain.Booking{
		ID:             11,
		HotelID:        1,
		RoomID:         7,
		GuestName:      "Пётр Иванов",
		GuestPhone:     "+79990001122",
		CheckInDate:    time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC),
		CheckOutDate:   time.Date(2026, time.March, 18, 0, 0, 0, 0, time.UTC),
		UnitsRequested: 2,
		Status:         domain.StatusConfirmed,
	}
}

func TestCancelConfirmedBooking(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	tx := &fakeTxManager{}
	svc := NewService(repo, tx, nopLogger{})

	resp, err := svc.Cancel(context.Background(), 11)
	require.NoError(t, err)

	assert.True(t, tx.called, "guard and update must share one transaction")
	assert.Equal(t, []int64{11}, repo.cancelled)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
}

func TestCancelAlreadyCancelled(t *testing.T) {
	b := confirmedBooking()
	b.Status = domain.StatusCancelled
	repo := &fakeBookingRepo{booking: b}
	svc := NewService(repo, &fakeTxManager{}, nopLogger{})

	_, err := svc.Cancel(context.Background(), 11)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
	assert.Empty(t, repo.cancelled, "idempotent-cancel guard must not touch the row")
}

func TestCancelConcurrentLosesRace(t *testing.T) {
	// Чтение показало confirmed, но параллельная отмена успела первой:
	// условный UPDATE затронул 0 строк. Клиент получает ErrAlreadyCancelled,
	// а не успех.
	repo := &fakeBookingRepo{
		booking:   confirmedBooking(),
		cancelErr: bookingRepo.ErrBookingNotActive,
	}
	svc := NewService(repo, &fakeTxManager{}, nopLogger{})

	_, err := svc.Cancel(context.Background(), 11)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestCancelNotFound(t *testing.T) {
	repo := &fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}
	svc := NewService(repo, &fakeTxManager{}, nopLogger{})

	_, err := svc.Cancel(context.Background(), 404)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByID(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	svc := NewService(repo, &fakeTxManager{}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 11)
	require.NoError(t, err)

	assert.Equal(t, int64(11), resp.ID)
	assert.Equal(t, "2026-03-15", resp.CheckInDate)
	assert.Equal(t, "2026-03-18", resp.CheckOutDate)
	assert.Equal(t, 3, resp.Nights)
}

func TestGetByIDNotFound(t *testing.T) {
	repo := &fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}
	svc := NewService(repo, &fakeTxManager{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetHotelBookingsFilter(t *testing.T) {
	repo := &fakeBookingRepo{list: []*domain.Booking{confirmedBooking()}}
	svc := NewService(repo, &fakeTxManager{}, nopLogger{})

	resp, err := svc.GetHotelBookings(context.Background(), &models.GetHotelBookingsRequest{
		HotelID: 1,
		RoomID:  ptr.Ptr(int64(7)),
		Status:  ptr.Ptr("confirmed"),
	})
	require.NoError(t, err)

	assert.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(1), repo.lastFilter.HotelID)
	require.NotNil(t, repo.lastFilter.RoomID)
	assert.Equal(t, int64(7), *repo.lastFilter.RoomID)
	require.NotNil(t, repo.lastFilter.Status)
	assert.Equal(t, domain.StatusConfirmed, *repo.lastFilter.Status)
}

func TestGetHotelBookingsInvalidStatus(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, &fakeTxManager{}, nopLogger{})

	_, err := svc.GetHotelBookings(context.Background(), &models.GetHotelBookingsRequest{
		HotelID: 1,
		Status:  ptr.Ptr("pending"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetHotelBookingsInvalidPeriod(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, &fakeTxManager{}, nopLogger{})

	start := time.Date(2026, time.March, 18, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	_, err := svc.GetHotelBookings(context.Background(), &models.GetHotelBookingsRequest{
		HotelID:   1,
		StartDate: &start,
		EndDate:   &end,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
