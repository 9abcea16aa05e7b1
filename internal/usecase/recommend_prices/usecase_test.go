package recommend_prices

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayService/internal/domain"
	"github.com/m04kA/SMC-StayService/internal/usecase/quote_price"
)

// Фейки

type fakeRoomRepo struct {
	rooms []*domain.Room
	err   error
}

func (f *fakeRoomRepo) GetByHotel(_ context.Context, _ int64) ([]*domain.Room, error) {
	return f.rooms, f.err
}

// fakeQuoter отдает заранее заданные цены по roomID; zero-цена = базовая
type fakeQuoter struct {
	prices map[int64]float64 // calculated price на все даты номера
	base   float64
	err    error
	calls  int
}

func (f *fakeQuoter) Execute(_ context.Context, req *quote_price.Request) (*quote_price.Response, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	calculated, ok := f.prices[req.RoomID]
	if !ok {
		calculated = f.base
	}
	return &quote_price.Response{
		BasePrice:       f.base,
		CalculatedPrice: calculated,
		Multiplier:      calculated / f.base,
		Reasons:         []string{"test"},
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecuteFiltersUnchangedPrices(t *testing.T) {
	rr := &fakeRoomRepo{rooms: []*domain.Room{
		{ID: 1, RoomType: "standard", BasePrice: 5000},
		{ID: 2, RoomType: "deluxe", BasePrice: 5000},
	}}
	// Номер 1 отклонился от базы, номер 2 — нет
	quoter := &fakeQuoter{base: 5000, prices: map[int64]float64{1: 6000, 2: 5000}}

	uc := NewUseCase(rr, quoter, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{HotelID: 1, Days: 3})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Days)
	assert.Equal(t, 2*3, quoter.calls, "every (room, date) pair is quoted")
	require.Len(t, resp.Recommendations, 3, "only deviating pairs are recommended")
	for _, rec := range resp.Recommendations {
		assert.Equal(t, int64(1), rec.RoomID)
		assert.Equal(t, 6000.0, rec.RecommendedPrice)
	}
}

func TestExecuteDefaultAndCappedDays(t *testing.T) {
	rr := &fakeRoomRepo{rooms: []*domain.Room{{ID: 1, RoomType: "standard", BasePrice: 5000}}}
	quoter := &fakeQuoter{base: 5000}

	uc := NewUseCase(rr, quoter, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{HotelID: 1})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultRecommendationDays, resp.Days)

	resp, err = uc.Execute(context.Background(), &Request{HotelID: 1, Days: 365})
	require.NoError(t, err)
	assert.Equal(t, domain.MaxRecommendationDays, resp.Days, "horizon is capped")
}

func TestExecuteQuoteFailureSkipsPair(t *testing.T) {
	rr := &fakeRoomRepo{rooms: []*domain.Room{{ID: 1, RoomType: "standard", BasePrice: 5000}}}
	quoter := &fakeQuoter{err: errors.New("storage down")}

	uc := NewUseCase(rr, quoter, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{HotelID: 1, Days: 2})

	require.NoError(t, err, "per-pair failures do not fail the listing")
	assert.Empty(t, resp.Recommendations)
}

func TestExecuteHotelWithoutRooms(t *testing.T) {
	uc := NewUseCase(&fakeRoomRepo{}, &fakeQuoter{base: 5000}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{HotelID: 42})
	assert.ErrorIs(t, err, ErrHotelNotFound)
}

func TestExecuteInvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeRoomRepo{}, &fakeQuoter{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{HotelID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{HotelID: 1, Days: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
