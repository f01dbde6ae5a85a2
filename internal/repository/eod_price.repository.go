package repository

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/loiclinais34/aimarkets-sub003/internal/db/models/postgres/public/model"
	. "github.com/loiclinais34/aimarkets-sub003/internal/db/models/postgres/public/table"
	"github.com/loiclinais34/aimarkets-sub003/internal/domain"

	. "github.com/go-jet/jet/v2/postgres"
)

type priceCache map[string]map[time.Time]float64

func (h *EodPriceRepositoryHandler) getFromCache(symbol string, date time.Time) *float64 {
	pc := h.Cache
	h.ReadMutex.RLock()
	defer h.ReadMutex.RUnlock()
	if _, ok := pc[symbol]; ok {
		if price, ok := pc[symbol][date]; ok {
			return &price
		}
	}
	return nil
}

func (h *EodPriceRepositoryHandler) addToCache(symbol string, date time.Time, price float64) {
	pc := h.Cache
	h.ReadMutex.Lock()
	if _, ok := pc[symbol]; !ok {
		pc[symbol] = map[time.Time]float64{}
	}
	pc[symbol][date] = price
	h.ReadMutex.Unlock()
}

type GetManyInput struct {
	Symbol  string
	MinDate time.Time
	MaxDate time.Time
}

type EodPriceRepository interface {
	Add(tx *sql.Tx, prices []model.EodPrice) error
	Get(symbol string, date time.Time) (float64, error)
	GetMany(inputs []GetManyInput) ([]domain.AssetPrice, error)
	List(symbols []string, start, end time.Time) ([]domain.AssetPrice, error)
	ListTradingDays(start, end time.Time) ([]time.Time, error)
	LatestTradingDay() (*time.Time, error)
}

func NewEodPriceRepository(db *sql.DB) EodPriceRepository {
	return &EodPriceRepositoryHandler{
		Db:        db,
		Cache:     make(priceCache),
		ReadMutex: &sync.RWMutex{},
	}
}

type EodPriceRepositoryHandler struct {
	Db        *sql.DB
	Cache     priceCache
	ReadMutex *sync.RWMutex
}

func (h *EodPriceRepositoryHandler) Add(tx *sql.Tx, prices []model.EodPrice) error {
	if len(prices) == 0 {
		return nil
	}

	query := EodPrice.
		INSERT(EodPrice.AllColumns).
		MODELS(prices).
		ON_CONFLICT(
			EodPrice.Symbol, EodPrice.Date,
		).DO_UPDATE(
		SET(
			EodPrice.Price.SET(EodPrice.EXCLUDED.Price),
		),
	)

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to add eod prices to db: %w", err)
	}

	return nil
}

// Get returns the price on the given date, falling back to the most
// recent price within the prior 7 days so weekends and holidays
// resolve to the last close. the fallback only ever looks backward
func (h *EodPriceRepositoryHandler) Get(symbol string, date time.Time) (float64, error) {
	if pc := h.getFromCache(symbol, date); pc != nil {
		return *pc, nil
	}

	minDate := DateT(date.AddDate(0, 0, -7))
	maxDate := DateT(date)
	query := EodPrice.
		SELECT(EodPrice.AllColumns).
		WHERE(
			AND(
				EodPrice.Symbol.EQ(String(symbol)),
				EodPrice.Date.BETWEEN(minDate, maxDate),
			),
		).
		ORDER_BY(EodPrice.Date.DESC()).
		LIMIT(1)

	result := model.EodPrice{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return 0, fmt.Errorf("failed to query price for %s on %v: %w", symbol, date, err)
	}

	price := result.Price.InexactFloat64()
	h.addToCache(symbol, date, price)
	return price, nil
}

func (h *EodPriceRepositoryHandler) GetMany(inputs []GetManyInput) ([]domain.AssetPrice, error) {
	expressions := []BoolExpression{}
	for _, in := range inputs {
		expressions = append(expressions, AND(
			EodPrice.Symbol.EQ(String(in.Symbol)),
			EodPrice.Date.BETWEEN(DateT(in.MinDate), DateT(in.MaxDate)),
		))
	}

	query := EodPrice.
		SELECT(EodPrice.AllColumns).
		WHERE(OR(expressions...)).
		ORDER_BY(EodPrice.Symbol.ASC(), EodPrice.Date.ASC())

	result := []model.EodPrice{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get prices: %w", err)
	}

	out := []domain.AssetPrice{}
	for _, p := range result {
		out = append(out, domain.AssetPrice{
			Symbol: p.Symbol,
			Date:   p.Date,
			Price:  p.Price,
		})
	}

	return out, nil
}

func (h *EodPriceRepositoryHandler) List(symbols []string, start, end time.Time) ([]domain.AssetPrice, error) {
	symbolExpressions := []Expression{}
	for _, s := range symbols {
		symbolExpressions = append(symbolExpressions, String(s))
	}

	query := EodPrice.
		SELECT(EodPrice.AllColumns).
		WHERE(
			AND(
				EodPrice.Symbol.IN(symbolExpressions...),
				EodPrice.Date.BETWEEN(DateT(start), DateT(end)),
			),
		).
		ORDER_BY(EodPrice.Date.ASC())

	result := []model.EodPrice{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list prices: %w", err)
	}

	out := []domain.AssetPrice{}
	for _, p := range result {
		out = append(out, domain.AssetPrice{
			Symbol: p.Symbol,
			Date:   p.Date,
			Price:  p.Price,
		})
	}

	return out, nil
}

// ListTradingDays treats any date with more than 10 priced symbols as
// a trading day - cheap and good enough, given the universe is a few
// hundred names
func (h *EodPriceRepositoryHandler) ListTradingDays(start, end time.Time) ([]time.Time, error) {
	query := EodPrice.
		SELECT(EodPrice.Date).
		WHERE(
			EodPrice.Date.BETWEEN(DateT(start), DateT(end)),
		).
		GROUP_BY(EodPrice.Date).
		HAVING(COUNT(String("*")).GT(Int(10))).
		ORDER_BY(EodPrice.Date.ASC())

	q, args := query.Sql()

	rows, err := h.Db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list trading days: %w", err)
	}
	defer rows.Close()

	out := []time.Time{}
	for rows.Next() {
		var d time.Time
		err := rows.Scan(&d)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		out = append(out, d)
	}

	return out, nil
}

func (h *EodPriceRepositoryHandler) LatestTradingDay() (*time.Time, error) {
	days, err := h.ListTradingDays(time.Now().UTC().AddDate(0, 0, -14), time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("no trading days found in the last 14 days")
	}

	return &days[len(days)-1], nil
}
