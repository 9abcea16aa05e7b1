package quote_price

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayService/internal/domain"
	roomRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/room"
	"github.com/m04kA/SMC-StayService/internal/pricing"
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

type fakeLedger struct {
	bookedOn  int
	bookedErr error
	recent    int
	recentErr error
}

func (f *fakeLedger) BookedUnitsOn(_ context.Context, _ int64, _ time.Time) (int, error) {
	return f.bookedOn, f.bookedErr
}

func (f *fakeLedger) CountCreatedSince(_ context.Context, _ int64, _ time.Time) (int, error) {
	return f.recent, f.recentErr
}

type fakePricingRepo struct {
	entries   []*domain.PricingHistoryEntry
	insertErr error
}

func (f *fakePricingRepo) InsertHistory(_ context.Context, e *domain.PricingHistoryEntry) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.entries = append(f.entries, e)
	return nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// 2026-04-07 вторник, не праздник, нейтральный сезон
var (
	testNow  = time.Date(2026, time.March, 20, 12, 0, 0, 0, time.UTC)
	testDate = time.Date(2026, time.April, 7, 0, 0, 0, 0, time.UTC)
)

func newQuoteUseCase(rr *fakeRoomRepo, ledger *fakeLedger, pr *fakePricingRepo) *UseCase {
	return NewUseCase(rr, ledger, pr, 0, nopLogger{}).WithTimeProvider(fixedTime{now: testNow})
}

func TestExecuteNeutralSignals(t *testing.T) {
	rr := &fakeRoomRepo{room: &domain.Room{ID: 7, TotalUnits: 10, BasePrice: 4000}}
	ledger := &fakeLedger{bookedOn: 5} // 50%, нейтральная полоса

	uc := newQuoteUseCase(rr, ledger, &fakePricingRepo{})
	resp, err := uc.Execute(context.Background(), &Request{HotelID: 1, RoomID: 7, TargetDate: testDate})
	require.NoError(t, err)

	assert.Equal(t, 4000.0, resp.BasePrice)
	assert.Equal(t, 4000.0, resp.CalculatedPrice)
	assert.Equal(t, 1.0, resp.Multiplier)
	assert.Equal(t, []string{pricing.ReasonStandard}, resp.Reasons)
	assert.Equal(t, 0.0, resp.PriceIncrease)
}

func TestExecuteDeterministic(t *testing.T) {
	rr := &fakeRoomRepo{room: &domain.Room{ID: 7, TotalUnits: 10, BasePrice: 5000}}
	ledger := &fakeLedger{bookedOn: 8, recent: 4}
	uc := newQuoteUseCase(rr, ledger, &fakePricingRepo{})

	req := &Request{HotelID: 1, RoomID: 7, TargetDate: testDate}
	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.CalculatedPrice, second.CalculatedPrice)
	assert.Equal(t, first.Multiplier, second.Multiplier)
	assert.Equal(t, first.Reasons, second.Reasons)
}

func TestExecuteHighDemandWithSurge(t *testing.T) {
	rr := &fakeRoomRepo{room: &domain.Room{ID: 7, TotalUnits: 10, BasePrice: 5000}}
	ledger := &fakeLedger{bookedOn: 8, recent: 3} // 80% + surge

	uc := newQuoteUseCase(rr, ledger, &fakePricingRepo{})
	resp, err := uc.Execute(context.Background(), &Request{HotelID: 1, RoomID: 7, TargetDate: testDate})
	require.NoError(t, err)

	// 1.20 * 1.20 = 1.44
	assert.InDelta(t, 1.44, resp.Multiplier, 1e-9)
	assert.Equal(t, 7200.0, resp.CalculatedPrice)
	assert.Equal(t, []string{pricing.ReasonHighDemand, pricing.ReasonSurge}, resp.Reasons)
	assert.True(t, resp.Factors.VelocitySurge)
}

func TestExecuteClampCeiling(t *testing.T) {
	rr := &fakeRoomRepo{room: &domain.Room{ID: 7, TotalUnits: 10, BasePrice: 5000}}
	// Полный номер, surge, ранняя бронь на праздник в пиковый сезон:
	// 1.4*0.9*1.2*1.3*1.15 = 2.26 -> кламп до 2x
	ledger := &fakeLedger{bookedOn: 10, recent: 5}
	holidayPeak := time.Date(2026, time.December, 25, 0, 0, 0, 0, time.UTC)

	uc := newQuoteUseCase(rr, ledger, &fakePricingRepo{})
	resp, err := uc.Execute(context.Background(), &Request{HotelID: 1, RoomID: 7, TargetDate: holidayPeak})
	require.NoError(t, err)

	assert.Equal(t, 10000.0, resp.CalculatedPrice)
	assert.Contains(t, resp.Reasons, pricing.ReasonPriceCeiling)
	assert.Greater(t, resp.Multiplier, pricing.MaxPriceFactor, "raw multiplier is reported before clamping")
}

func TestExecuteFallbackWhenRoomMissing(t *testing.T) {
	rr := &fakeRoomRepo{err: roomRepo.ErrRoomNotFound}
	ledger := &fakeLedger{}

	uc := newQuoteUseCase(rr, ledger, &fakePricingRepo{})
	resp, err := uc.Execute(context.Background(), &Request{HotelID: 1, RoomID: 404, TargetDate: testDate})
	require.NoError(t, err, "missing room degrades to fallback price, not an error")

	assert.Equal(t, domain.DefaultBasePrice, resp.BasePrice)
	assert.Equal(t, 0.0, resp.Factors.OccupancyRate)
}

func TestExecuteFallbackWhenLedgerFails(t *testing.T) {
	rr := &fakeRoomRepo{room: &domain.Room{ID: 7, TotalUnits: 10, BasePrice: 3000}}
	ledger := &fakeLedger{bookedErr: errors.New("connection reset"), recentErr: errors.New("connection reset")}

	uc := newQuoteUseCase(rr, ledger, &fakePricingRepo{})
	resp, err := uc.Execute(context.Background(), &Request{HotelID: 1, RoomID: 7, TargetDate: testDate})
	require.NoError(t, err)

	assert.Equal(t, 3000.0, resp.BasePrice, "base price survives, occupancy degrades to zero")
	assert.Equal(t, 0.0, resp.Factors.OccupancyRate)
	assert.False(t, resp.Factors.VelocitySurge)
}

func TestExecuteHistoryWriteFailureTolerated(t *testing.T) {
	rr := &fakeRoomRepo{room: &domain.Room{ID: 7, TotalUnits: 10, BasePrice: 5000}}
	pr := &fakePricingRepo{insertErr: errors.New("disk full")}

	uc := newQuoteUseCase(rr, &fakeLedger{bookedOn: 5}, pr)
	resp, err := uc.Execute(context.Background(), &Request{HotelID: 1, RoomID: 7, TargetDate: testDate})

	require.NoError(t, err, "history is an audit trail, not part of the quote")
	assert.Equal(t, 5000.0, resp.CalculatedPrice)
}

func TestExecuteWritesHistory(t *testing.T) {
	rr := &fakeRoomRepo{room: &domain.Room{ID: 7, TotalUnits: 10, BasePrice: 5000}}
	pr := &fakePricingRepo{}

	uc := newQuoteUseCase(rr, &fakeLedger{bookedOn: 8}, pr)
	_, err := uc.Execute(context.Background(), &Request{HotelID: 1, RoomID: 7, TargetDate: testDate})
	require.NoError(t, err)

	require.Len(t, pr.entries, 1)
	entry := pr.entries[0]
	assert.Equal(t, int64(7), entry.RoomID)
	assert.Equal(t, pricing.DateOnly(testDate), entry.DateForBooking)
	assert.Equal(t, 5000.0, entry.BasePrice)
	assert.Equal(t, 80.0, entry.OccupancyRate)
	assert.Equal(t, pricing.SeasonNormal, entry.Season)
	assert.Equal(t, pricing.ReasonHighDemand, entry.Reason)
}

func TestExecuteInvalidInput(t *testing.T) {
	uc := newQuoteUseCase(&fakeRoomRepo{}, &fakeLedger{}, &fakePricingRepo{})

	_, err := uc.Execute(context.Background(), &Request{HotelID: 0, RoomID: 7, TargetDate: testDate})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{HotelID: 1, RoomID: 7})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
