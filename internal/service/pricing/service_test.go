package pricing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayService/internal/domain"
	pricingRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/pricing"
	roomRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/room"
	"github.com/m04kA/SMC-StayService/internal/service/pricing/models"
)

// Фейки

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

type fakePricingRepo struct {
	override    *domain.PriceOverride
	overrideErr error
	upserts     []*domain.PriceOverride
	history     []*domain.PricingHistoryEntry
}

func (f *fakePricingRepo) UpsertOverride(_ context.Context, o *domain.PriceOverride) (*domain.PriceOverride, error) {
	f.upserts = append(f.upserts, o)
	saved := *o
	saved.ID = int64(len(f.upserts))
	saved.CreatedAt = time.Now()
	return &saved, nil
}

func (f *fakePricingRepo) GetOverride(_ context.Context, _ int64, _ time.Time) (*domain.PriceOverride, error) {
	if f.overrideErr != nil {
		return nil, f.overrideErr
	}
	return f.override, nil
}

func (f *fakePricingRepo) GetHistoryByRoom(_ context.Context, _ int64, _ uint64) ([]*domain.PricingHistoryEntry, error) {
	return f.history, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testDate = time.Date(2026, time.April, 7, 0, 0, 0, 0, time.UTC)

func testRoom() *domain.Room {
	return &domain.Room{ID: 7, HotelID: 1, RoomType: "standard", TotalUnits: 10, BasePrice: 5000}
}

func TestApplyOverride(t *testing.T) {
	pr := &fakePricingRepo{}
	svc := NewService(&fakeRoomRepo{room: testRoom()}, pr, nopLogger{})

	resp, err := svc.ApplyOverride(context.Background(), &models.ApplyOverrideRequest{
		HotelID:     1,
		RoomID:      7,
		TargetDate:  testDate.Add(15 * time.Hour), // время суток отбрасывается
		CustomPrice: 6500,
	})
	require.NoError(t, err)

	require.Len(t, pr.upserts, 1)
	assert.Equal(t, testDate, pr.upserts[0].TargetDate)
	assert.Equal(t, 6500.0, resp.CustomPrice)
	assert.Equal(t, "2026-04-07", resp.TargetDate)
}

func TestApplyOverrideRoomNotInHotel(t *testing.T) {
	pr := &fakePricingRepo{}
	svc := NewService(&fakeRoomRepo{err: roomRepo.ErrRoomNotFound}, pr, nopLogger{})

	_, err := svc.ApplyOverride(context.Background(), &models.ApplyOverrideRequest{
		HotelID:     2,
		RoomID:      7,
		TargetDate:  testDate,
		CustomPrice: 6500,
	})
	assert.ErrorIs(t, err, ErrRoomNotFound)
	assert.Empty(t, pr.upserts)
}

func TestApplyOverrideValidation(t *testing.T) {
	svc := NewService(&fakeRoomRepo{room: testRoom()}, &fakePricingRepo{}, nopLogger{})

	_, err := svc.ApplyOverride(context.Background(), &models.ApplyOverrideRequest{
		HotelID: 1, RoomID: 7, TargetDate: testDate, CustomPrice: 0,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.ApplyOverride(context.Background(), &models.ApplyOverrideRequest{
		HotelID: 1, RoomID: 7, CustomPrice: 6500,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEffectivePricePrefersOverride(t *testing.T) {
	pr := &fakePricingRepo{override: &domain.PriceOverride{
		RoomID:      7,
		TargetDate:  testDate,
		CustomPrice: 7777,
	}}
	svc := NewService(&fakeRoomRepo{room: testRoom()}, pr, nopLogger{})

	resp, err := svc.EffectivePrice(context.Background(), 1, 7, testDate)
	require.NoError(t, err)

	assert.Equal(t, 7777.0, resp.Price)
	assert.Equal(t, "override", resp.Source)
}

func TestEffectivePriceFallsBackToBase(t *testing.T) {
	pr := &fakePricingRepo{overrideErr: pricingRepo.ErrOverrideNotFound}
	svc := NewService(&fakeRoomRepo{room: testRoom()}, pr, nopLogger{})

	resp, err := svc.EffectivePrice(context.Background(), 1, 7, testDate)
	require.NoError(t, err)

	assert.Equal(t, 5000.0, resp.Price)
	assert.Equal(t, "base", resp.Source)
}

func TestGetHistory(t *testing.T) {
	pr := &fakePricingRepo{history: []*domain.PricingHistoryEntry{
		{ID: 1, RoomID: 7, DateForBooking: testDate, BasePrice: 5000, CalculatedPrice: 6000, Season: "normal"},
	}}
	svc := NewService(&fakeRoomRepo{room: testRoom()}, pr, nopLogger{})

	resp, err := svc.GetHistory(context.Background(), 1, 7, 0)
	require.NoError(t, err)

	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "2026-04-07", resp.Entries[0].DateForBooking)
	assert.Equal(t, 6000.0, resp.Entries[0].CalculatedPrice)
}
