package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/loiclinais34/aimarkets-sub003/internal/db/models/postgres/public/model"
	"github.com/loiclinais34/aimarkets-sub003/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type TickerRepository interface {
	Get(tickerID uuid.UUID) (*model.Ticker, error)
	List() ([]model.Ticker, error)
	GetOrCreate(tx *sql.Tx, t model.Ticker) (*model.Ticker, error)
}

type tickerRepositoryHandler struct {
	Db *sql.DB
}

func NewTickerRepository(db *sql.DB) TickerRepository {
	return tickerRepositoryHandler{Db: db}
}

func (h tickerRepositoryHandler) List() ([]model.Ticker, error) {
	query := table.Ticker.SELECT(table.Ticker.AllColumns).
		ORDER_BY(table.Ticker.Symbol.ASC())
	result := []model.Ticker{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list universe symbols: %w", err)
	}

	return result, nil
}

func (h tickerRepositoryHandler) Get(tickerID uuid.UUID) (*model.Ticker, error) {
	query := table.Ticker.
		SELECT(table.Ticker.AllColumns).
		WHERE(table.Ticker.TickerID.EQ(
			postgres.UUID(tickerID),
		))

	result := model.Ticker{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get ticker %s: %w", tickerID, err)
	}

	return &result, nil
}

func (h tickerRepositoryHandler) GetOrCreate(tx *sql.Tx, t model.Ticker) (*model.Ticker, error) {
	query := table.Ticker.
		SELECT(table.Ticker.AllColumns).
		WHERE(table.Ticker.Symbol.EQ(postgres.String(t.Symbol)))

	existing := model.Ticker{}
	err := query.Query(tx, &existing)
	if err == nil {
		return &existing, nil
	}
	if err != qrm.ErrNoRows {
		return nil, fmt.Errorf("failed to look up ticker %s: %w", t.Symbol, err)
	}

	t.TickerID = uuid.New()
	t.CreatedAt = time.Now().UTC()
	t.UpdatedAt = time.Now().UTC()
	insert := table.Ticker.
		INSERT(table.Ticker.AllColumns).
		MODEL(t).
		RETURNING(table.Ticker.AllColumns)

	created := model.Ticker{}
	err = insert.Query(tx, &created)
	if err != nil {
		return nil, fmt.Errorf("failed to create ticker %s: %w", t.Symbol, err)
	}

	return &created, nil
}
