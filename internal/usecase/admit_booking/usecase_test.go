package admit_booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayService/internal/domain"
	roomRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/room"
	"github.com/m04kA/SMC-StayService/pkg/txmanager"
)

// Фейки

type fakeBookingRepo struct {
	bookedUnits    int
	bookedUnitsErr error
	created        *domain.Booking
	createErr      error

	lastStart time.Time
	lastEnd   time.Time
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *b
	created.ID = 101
	created.CreatedAt = time.Now()
	f.created = &created
	return &created, nil
}

func (f *fakeBookingRepo) BookedUnits(_ context.Context, _ int64, start, end time.Time) (int, error) {
	f.lastStart, f.lastEnd = start, end
	return f.bookedUnits, f.bookedUnitsErr
}

type fakeRoomRepo struct {
	room *domain.Room
	err  error
}

func (f *fakeRoomRepo) GetByID(_ context.Context, _, _ int64) (*domain.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.room, nil
}

// fakeTxManager выполняет функцию без транзакции; err подменяет результат
type fakeTxManager struct {
	err    error
	called bool
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.called = true
	if f.err != nil {
		return f.err
	}
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		HotelID:    1,
		RoomID:     7,
		GuestName:  "Анна Сергеева",
		GuestPhone: "+79990001122",
		CheckIn:    time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2026, time.March, 18, 0, 0, 0, 0, time.UTC),
		Units:      2,
	}
}

func newUseCase(br *fakeBookingRepo, rr *fakeRoomRepo, tx *fakeTxManager) *UseCase {
	return NewUseCase(br, rr, tx, nopLogger{})
}

func TestExecuteAdmitsWithinCapacity(t *testing.T) {
	br := &fakeBookingRepo{bookedUnits: 3}
	rr := &fakeRoomRepo{room: &domain.Room{ID: 7, HotelID: 1, TotalUnits: 10, BasePrice: 5000}}
	tx := &fakeTxManager{}

	resp, err := newUseCase(br, rr, tx).Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, tx.called, "admission must run inside a transaction")
	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	// 10 всего - 3 занято - 2 запрошено = 5 свободно
	assert.Equal(t, 5, resp.UnitsLeft)
	require.NotNil(t, br.created)
	assert.Equal(t, domain.StatusConfirmed, br.created.Status)
}

func TestExecuteExactFitAdmitted(t *testing.T) {
	// Ровно столько юнитов, сколько осталось — допускается
	br := &fakeBookingRepo{bookedUnits: 8}
	rr := &fakeRoomRepo{room: &domain.Room{ID: 7, TotalUnits: 10}}

	resp, err := newUseCase(br, rr, &fakeTxManager{}).Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, 0, resp.UnitsLeft)
}

func TestExecuteCapacityExceeded(t *testing.T) {
	br := &fakeBookingRepo{bookedUnits: 9}
	rr := &fakeRoomRepo{room: &domain.Room{ID: 7, TotalUnits: 10}}

	_, err := newUseCase(br, rr, &fakeTxManager{}).Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Nil(t, br.created, "no booking row may be written on rejection")
}

func TestExecuteFullRoomRejected(t *testing.T) {
	br := &fakeBookingRepo{bookedUnits: 10}
	rr := &fakeRoomRepo{room: &domain.Room{ID: 7, TotalUnits: 10}}

	_, err := newUseCase(br, rr, &fakeTxManager{}).Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestExecuteRangeIsHalfOpen(t *testing.T) {
	// Подсчет занятости идет по полуинтервалу [check_in, check_out):
	// границы, переданные в журнал, совпадают с датами заявки без сдвигов
	br := &fakeBookingRepo{}
	rr := &fakeRoomRepo{room: &domain.Room{ID: 7, TotalUnits: 10}}

	req := validRequest()
	_, err := newUseCase(br, rr, &fakeTxManager{}).Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, req.CheckIn, br.lastStart)
	assert.Equal(t, req.CheckOut, br.lastEnd)
}

func TestExecuteRoomNotFound(t *testing.T) {
	br := &fakeBookingRepo{}
	rr := &fakeRoomRepo{err: roomRepo.ErrRoomNotFound}

	_, err := newUseCase(br, rr, &fakeTxManager{}).Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecuteBusyOnTxConflict(t *testing.T) {
	br := &fakeBookingRepo{}
	rr := &fakeRoomRepo{room: &domain.Room{ID: 7, TotalUnits: 10}}
	tx := &fakeTxManager{err: fmt.Errorf("%w: could not obtain lock", txmanager.ErrTxConflict)}

	_, err := newUseCase(br, rr, tx).Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBusy)
	assert.Nil(t, br.created)
}

func TestExecuteValidation(t *testing.T) {
	rr := &fakeRoomRepo{room: &domain.Room{ID: 7, TotalUnits: 10}}

	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{"missing hotel", func(r *Request) { r.HotelID = 0 }, ErrInvalidInput},
		{"missing room", func(r *Request) { r.RoomID = 0 }, ErrInvalidInput},
		{"empty guest name", func(r *Request) { r.GuestName = "" }, ErrInvalidInput},
		{"empty phone", func(r *Request) { r.GuestPhone = "" }, ErrInvalidInput},
		{"zero units", func(r *Request) { r.Units = 0 }, ErrInvalidInput},
		{"too many units", func(r *Request) { r.Units = domain.MaxUnitsRequested + 1 }, ErrInvalidInput},
		{"checkout equals checkin", func(r *Request) { r.CheckOut = r.CheckIn }, ErrInvalidDateRange},
		{"checkout before checkin", func(r *Request) { r.CheckOut = r.CheckIn.AddDate(0, 0, -1) }, ErrInvalidDateRange},
		{"stay too long", func(r *Request) { r.CheckOut = r.CheckIn.AddDate(0, 0, domain.MaxStayNights+1) }, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			br := &fakeBookingRepo{}
			tx := &fakeTxManager{}
			req := validRequest()
			tt.mutate(req)

			_, err := newUseCase(br, rr, tx).Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.False(t, tx.called, "validation must fail before any I/O")
		})
	}
}
