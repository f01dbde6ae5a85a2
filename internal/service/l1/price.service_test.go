package l1_service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/loiclinais34/aimarkets-sub003/internal"
	"github.com/loiclinais34/aimarkets-sub003/internal/domain"
	"github.com/loiclinais34/aimarkets-sub003/internal/repository"
	mock_repository "github.com/loiclinais34/aimarkets-sub003/internal/repository/mocks"
	"github.com/loiclinais34/aimarkets-sub003/internal/util"
)

func newTestCache() *PriceCache {
	// Jan 2024: 1st is a holiday, 6th/7th a weekend
	tradingDays := []time.Time{
		util.NewDate(2024, 1, 2),
		util.NewDate(2024, 1, 3),
		util.NewDate(2024, 1, 4),
		util.NewDate(2024, 1, 5),
		util.NewDate(2024, 1, 8),
		util.NewDate(2024, 1, 9),
	}
	prices := map[string]map[string]float64{
		"AAPL": {
			"2024-01-02": 100,
			"2024-01-03": 101,
			"2024-01-04": 102,
			"2024-01-05": 103,
			"2024-01-08": 104,
			"2024-01-09": 105,
		},
	}
	return NewPriceCacheFromPrices(prices, tradingDays)
}

func Test_PriceCacheGet(t *testing.T) {
	cache := newTestCache()

	t.Run("exact day", func(t *testing.T) {
		price, err := cache.Get("AAPL", util.NewDate(2024, 1, 3))
		require.NoError(t, err)
		require.Equal(t, 101.0, price)
	})

	t.Run("weekend falls back to friday close", func(t *testing.T) {
		price, err := cache.Get("AAPL", util.NewDate(2024, 1, 7))
		require.NoError(t, err)
		require.Equal(t, 103.0, price)
	})

	t.Run("miss is DataUnavailable", func(t *testing.T) {
		_, err := cache.Get("MSFT", util.NewDate(2024, 1, 3))
		require.Error(t, err)
		require.ErrorAs(t, err, &internal.DataUnavailableError{})
	})
}

func Test_PriceCacheGetExact(t *testing.T) {
	cache := newTestCache()

	_, err := cache.GetExact("AAPL", util.NewDate(2024, 1, 7))
	require.Error(t, err)
	require.ErrorAs(t, err, &internal.DataUnavailableError{})

	price, err := cache.GetExact("AAPL", util.NewDate(2024, 1, 8))
	require.NoError(t, err)
	require.Equal(t, 104.0, price)
}

func Test_AdvanceTradingDays(t *testing.T) {
	cache := newTestCache()

	t.Run("skips the weekend", func(t *testing.T) {
		// 1 trading day after Friday the 5th is Monday the 8th
		target, err := cache.AdvanceTradingDays(util.NewDate(2024, 1, 5), 1)
		require.NoError(t, err)
		require.Equal(t, util.NewDate(2024, 1, 8), target)
	})

	t.Run("multi-day horizon", func(t *testing.T) {
		target, err := cache.AdvanceTradingDays(util.NewDate(2024, 1, 2), 3)
		require.NoError(t, err)
		require.Equal(t, util.NewDate(2024, 1, 5), target)
	})

	t.Run("from a non-trading day", func(t *testing.T) {
		target, err := cache.AdvanceTradingDays(util.NewDate(2024, 1, 6), 1)
		require.NoError(t, err)
		require.Equal(t, util.NewDate(2024, 1, 8), target)
	})

	t.Run("beyond the calendar is NotYetMatured", func(t *testing.T) {
		_, err := cache.AdvanceTradingDays(util.NewDate(2024, 1, 9), 5)
		require.Error(t, err)
		require.ErrorAs(t, err, &internal.NotYetMaturedError{})
	})

	t.Run("non-positive horizon is rejected", func(t *testing.T) {
		_, err := cache.AdvanceTradingDays(util.NewDate(2024, 1, 2), 0)
		require.Error(t, err)
	})
}

func Test_LoadPriceCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	priceRepository := mock_repository.NewMockEodPriceRepository(ctrl)

	priceRepository.EXPECT().
		GetMany(gomock.Any()).
		DoAndReturn(func(inputs []repository.GetManyInput) ([]domain.AssetPrice, error) {
			require.Len(t, inputs, 1)
			// 7 day backward buffer
			require.Equal(t, util.NewDate(2023, 12, 27), inputs[0].MinDate)
			// forward buffer covers the horizon in calendar days
			require.True(t, inputs[0].MaxDate.After(util.NewDate(2024, 1, 5)))
			return []domain.AssetPrice{
				{Symbol: "AAPL", Date: util.NewDate(2024, 1, 3), Price: decimal.NewFromInt(101)},
			}, nil
		})
	priceRepository.EXPECT().
		ListTradingDays(gomock.Any(), gomock.Any()).
		Return([]time.Time{util.NewDate(2024, 1, 3)}, nil)

	svc := NewPriceService(nil, priceRepository)
	cache, err := svc.LoadPriceCache(context.Background(), []LoadPriceCacheInput{
		{Symbol: "AAPL", Date: util.NewDate(2024, 1, 3)},
	}, 5)
	require.NoError(t, err)

	price, err := cache.Get("AAPL", util.NewDate(2024, 1, 3))
	require.NoError(t, err)
	require.Equal(t, 101.0, price)
}

func Test_LoadPriceCacheEmptyInputs(t *testing.T) {
	svc := NewPriceService(nil, nil)
	cache, err := svc.LoadPriceCache(context.Background(), nil, 0)
	require.NoError(t, err)
	require.Empty(t, cache.TradingDays())
}
