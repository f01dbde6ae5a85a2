package l1_service

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/loiclinais34/aimarkets-sub003/internal"
	"github.com/loiclinais34/aimarkets-sub003/internal/db/models/postgres/public/model"
	"github.com/loiclinais34/aimarkets-sub003/internal/logger"
	"github.com/loiclinais34/aimarkets-sub003/internal/repository"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

/**

behavior - when the engine asks for a price, it should figure out the
price without db lookups. the cache is preloaded for the whole batch,
including a backward buffer so weekends/holidays resolve to the most
recent close, and a forward buffer so horizon advances resolve without
a second load.

the backward fallback only ever looks at earlier dates, which is what
keeps generation point-in-time safe.

*/

type PriceService interface {
	LoadPriceCache(ctx context.Context, inputs []LoadPriceCacheInput, horizonTradingDays int) (*PriceCache, error)
}

type LoadPriceCacheInput struct {
	Date   time.Time
	Symbol string
}

type priceServiceHandler struct {
	Db                 *sql.DB
	EodPriceRepository repository.EodPriceRepository
}

func NewPriceService(db *sql.DB, eodPriceRepository repository.EodPriceRepository) PriceService {
	return &priceServiceHandler{
		Db:                 db,
		EodPriceRepository: eodPriceRepository,
	}
}

type PriceCache struct {
	// symbol -> date (time.DateOnly) -> close
	prices      map[string]map[string]float64
	tradingDays []time.Time
}

func NewPriceCacheFromPrices(prices map[string]map[string]float64, tradingDays []time.Time) *PriceCache {
	return &PriceCache{
		prices:      prices,
		tradingDays: tradingDays,
	}
}

// Get retrieves the price for an asset on the given day, falling back
// to the most recent close within the prior 7 calendar days
func (pr *PriceCache) Get(symbol string, date time.Time) (float64, error) {
	symbolPrices, ok := pr.prices[symbol]
	if !ok {
		return 0, internal.DataUnavailableError{Err: fmt.Errorf("no prices loaded for %s", symbol)}
	}

	current := date
	for i := 0; i <= 7; i++ {
		if price, ok := symbolPrices[current.Format(time.DateOnly)]; ok {
			return price, nil
		}
		current = current.AddDate(0, 0, -1)
	}

	return 0, internal.DataUnavailableError{Err: fmt.Errorf("price cache miss %s %s", symbol, date.Format(time.DateOnly))}
}

// GetExact has no backward fallback. validation reads use this so a
// target date whose price hasn't been ingested yet reads as missing
// rather than as a stale close
func (pr *PriceCache) GetExact(symbol string, date time.Time) (float64, error) {
	if symbolPrices, ok := pr.prices[symbol]; ok {
		if price, ok := symbolPrices[date.Format(time.DateOnly)]; ok {
			return price, nil
		}
	}

	return 0, internal.DataUnavailableError{Err: fmt.Errorf("no price for %s on %s", symbol, date.Format(time.DateOnly))}
}

// AdvanceTradingDays returns the nth trading day strictly after from.
// horizons are always counted in trading days - counting calendar days
// systematically shortens horizons that cross weekends
func (pr *PriceCache) AdvanceTradingDays(from time.Time, n int) (time.Time, error) {
	if n <= 0 {
		return time.Time{}, fmt.Errorf("horizon must be positive, got %d", n)
	}

	fromKey := from.Format(time.DateOnly)
	i := sort.Search(len(pr.tradingDays), func(i int) bool {
		return pr.tradingDays[i].Format(time.DateOnly) > fromKey
	})

	target := i + n - 1
	if target >= len(pr.tradingDays) {
		return time.Time{}, internal.NotYetMaturedError{
			Err: fmt.Errorf("%d trading days after %s is beyond the known calendar", n, fromKey),
		}
	}

	return pr.tradingDays[target], nil
}

func (pr *PriceCache) TradingDays() []time.Time {
	return pr.tradingDays
}

type minMax struct {
	min *time.Time
	max *time.Time
}

// LoadPriceCache preloads every price the batch will ask for. the span
// per symbol is [min-7d, max+buffer] where the buffer covers
// horizonTradingDays trading days worth of calendar time
func (h *priceServiceHandler) LoadPriceCache(ctx context.Context, inputs []LoadPriceCacheInput, horizonTradingDays int) (*PriceCache, error) {
	if len(inputs) == 0 {
		return &PriceCache{
			prices:      map[string]map[string]float64{},
			tradingDays: []time.Time{},
		}, nil
	}

	absMin, absMax, minMaxMap := constructMinMaxMap(inputs)

	// ~5 trading days per 7 calendar days, plus slack for holiday runs
	bufferDays := 0
	if horizonTradingDays > 0 {
		bufferDays = horizonTradingDays*7/5 + 7
	}

	getInputs := []repository.GetManyInput{}
	for symbol, minMaxValues := range minMaxMap {
		getInputs = append(getInputs, repository.GetManyInput{
			Symbol:  symbol,
			MinDate: (*minMaxValues.min).AddDate(0, 0, -7),
			MaxDate: (*minMaxValues.max).AddDate(0, 0, bufferDays),
		})
	}

	prices, err := h.EodPriceRepository.GetMany(getInputs)
	if err != nil {
		return nil, fmt.Errorf("failed to load price cache: %w", err)
	}

	tradingDays, err := h.EodPriceRepository.ListTradingDays(
		(*absMin).AddDate(0, 0, -7),
		(*absMax).AddDate(0, 0, bufferDays),
	)
	if err != nil {
		return nil, err
	}

	cache := make(map[string]map[string]float64)
	for _, p := range prices {
		if _, ok := cache[p.Symbol]; !ok {
			cache[p.Symbol] = make(map[string]float64)
		}
		cache[p.Symbol][p.Date.Format(time.DateOnly)] = p.Price.InexactFloat64()
	}

	return &PriceCache{
		prices:      cache,
		tradingDays: tradingDays,
	}, nil
}

func constructMinMaxMap(inputs []LoadPriceCacheInput) (*time.Time, *time.Time, map[string]*minMax) {
	var (
		absMin *time.Time
		absMax *time.Time
	)

	minMaxMap := map[string]*minMax{}
	for _, in := range inputs {
		date := in.Date

		if _, ok := minMaxMap[in.Symbol]; !ok {
			minMaxMap[in.Symbol] = &minMax{}
		}

		mp := minMaxMap[in.Symbol]
		if mp.min == nil || in.Date.Before(*mp.min) {
			mp.min = &date
		}
		if mp.max == nil || in.Date.After(*mp.max) {
			mp.max = &date
		}
		if absMin == nil || in.Date.Before(*absMin) {
			absMin = &date
		}
		if absMax == nil || in.Date.After(*absMax) {
			absMax = &date
		}
	}

	return absMin, absMax, minMaxMap
}

func IngestPrices(
	tx *sql.Tx,
	symbol string,
	eodPriceRepository repository.EodPriceRepository,
	start *time.Time,
) error {
	s := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	if start != nil {
		s = *start
	}
	now := time.Now()
	params := &chart.Params{
		Start:    datetime.New(&s),
		End:      datetime.New(&now),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	models := []model.EodPrice{}

	for iter.Next() {
		models = append(models, model.EodPrice{
			Symbol:    symbol,
			Date:      time.Unix(int64(iter.Bar().Timestamp), 0).UTC(),
			Price:     iter.Bar().AdjClose,
			CreatedAt: time.Now().UTC(),
		})
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to get prices for %s: %w", symbol, err)
	}

	err := eodPriceRepository.Add(tx, models)
	if err != nil {
		return err
	}

	return nil
}

func UpdateUniversePrices(
	ctx context.Context,
	db *sql.DB,
	tickerRepository repository.TickerRepository,
	eodPriceRepository repository.EodPriceRepository,
) error {
	assets, err := tickerRepository.List()
	if err != nil {
		return err
	}
	if len(assets) == 0 {
		return fmt.Errorf("no assets found in universe")
	}

	symbols := []string{}
	for _, a := range assets {
		symbols = append(symbols, a.Symbol)
	}

	return asyncIngestPrices(ctx, db, symbols, eodPriceRepository)
}

// each worker gets its own transaction - sql.Tx is not safe to share
// across goroutines, and a failed symbol shouldn't poison the others
func asyncIngestPrices(ctx context.Context, db *sql.DB, symbols []string, eodPriceRepository repository.EodPriceRepository) error {
	log := logger.FromContext(ctx)
	numGoroutines := 10

	inputCh := make(chan string, len(symbols))

	var wg sync.WaitGroup
	for _, f := range symbols {
		wg.Add(1)
		inputCh <- f
	}
	close(inputCh)

	ingestOne := func(symbol string) error {
		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin tx: %w", err)
		}
		defer tx.Rollback()

		if err := IngestPrices(tx, symbol, eodPriceRepository, nil); err != nil {
			return err
		}
		return tx.Commit()
	}

	for i := 0; i < numGoroutines; i++ {
		go func() {
			for {
				select {
				case <-ctx.Done():
					// drain so wg.Wait below can't hang on queued symbols
					for range inputCh {
						wg.Done()
					}
					return
				case symbol, ok := <-inputCh:
					if !ok {
						return
					}
					if err := ingestOne(symbol); err != nil {
						log.Warnf("failed to ingest price for %s: %s", symbol, err.Error())
					}
					wg.Done()
				}
			}
		}()
	}

	wg.Wait()

	return nil
}
