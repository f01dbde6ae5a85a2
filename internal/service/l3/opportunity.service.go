package l3_service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/loiclinais34/aimarkets-sub003/internal"
	"github.com/loiclinais34/aimarkets-sub003/internal/calculator"
	"github.com/loiclinais34/aimarkets-sub003/internal/db/models/postgres/public/model"
	"github.com/loiclinais34/aimarkets-sub003/internal/domain"
	"github.com/loiclinais34/aimarkets-sub003/internal/repository"
	l1_service "github.com/loiclinais34/aimarkets-sub003/internal/service/l1"
	l2_service "github.com/loiclinais34/aimarkets-sub003/internal/service/l2"
)

type ItemStatus string

const (
	ItemStatusPending   ItemStatus = "PENDING"
	ItemStatusGenerated ItemStatus = "GENERATED"
	ItemStatusSkipped   ItemStatus = "SKIPPED"
	ItemStatusFailed    ItemStatus = "FAILED"
)

type GenerateItemResult struct {
	Symbol string
	Date   time.Time
	Status ItemStatus
	Err    error
}

type GenerateForDateInput struct {
	Date      time.Time
	Symbols   []string
	Cache     *l1_service.PriceCache
	Collector l2_service.AnalysisCollectorService
	Config    calculator.ScoringConfig
	Force     bool
}

type OpportunityService interface {
	// GenerateForDate processes every symbol for one as-of date inside
	// a single transaction. a failed date can be retried later without
	// re-touching dates that already committed
	GenerateForDate(ctx context.Context, in GenerateForDateInput) ([]GenerateItemResult, error)
}

type opportunityServiceHandler struct {
	Db                    *sql.DB
	OpportunityRepository repository.OpportunityRepository
}

func NewOpportunityService(db *sql.DB, opportunityRepository repository.OpportunityRepository) OpportunityService {
	return opportunityServiceHandler{
		Db:                    db,
		OpportunityRepository: opportunityRepository,
	}
}

type snapshotWorkResult struct {
	Symbol      string
	Opportunity *model.Opportunity
	Err         error
}

func (h opportunityServiceHandler) GenerateForDate(ctx context.Context, in GenerateForDateInput) ([]GenerateItemResult, error) {
	// compute phase is parallel and pure - no store access, so the
	// workers don't need isolated db sessions. all writes happen on
	// the single date transaction below, in deterministic order
	computed := h.buildSnapshots(ctx, in)

	results := []GenerateItemResult{}
	tx, err := h.Db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin tx for %s: %w", in.Date.Format(time.DateOnly), err)
	}
	defer tx.Rollback()

	for _, symbol := range in.Symbols {
		result := GenerateItemResult{
			Symbol: symbol,
			Date:   in.Date,
			Status: ItemStatusPending,
		}
		work := computed[symbol]

		switch {
		case work == nil:
			result.Status = ItemStatusFailed
			result.Err = fmt.Errorf("no snapshot computed for %s", symbol)
		case errors.As(work.Err, &internal.DataUnavailableError{}):
			result.Status = ItemStatusSkipped
			result.Err = work.Err
		case work.Err != nil:
			result.Status = ItemStatusFailed
			result.Err = work.Err
		default:
			status, err := h.upsertSnapshot(tx, work.Opportunity, in.Force)
			result.Status = status
			result.Err = err
		}

		results = append(results, result)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit opportunities for %s: %w", in.Date.Format(time.DateOnly), err)
	}

	return results, nil
}

// upsertSnapshot enforces the (symbol, date) key semantics: without
// force an existing record is left untouched; with force every field
// is replaced in place, never duplicated
func (h opportunityServiceHandler) upsertSnapshot(tx *sql.Tx, opportunity *model.Opportunity, force bool) (ItemStatus, error) {
	if !force {
		existing, err := h.OpportunityRepository.Get(opportunity.Symbol, opportunity.Date)
		if err != nil {
			return ItemStatusFailed, err
		}
		if existing != nil {
			return ItemStatusGenerated, nil
		}
	}

	if err := h.OpportunityRepository.Upsert(tx, opportunity); err != nil {
		return ItemStatusFailed, err
	}

	return ItemStatusGenerated, nil
}

func (h opportunityServiceHandler) buildSnapshots(ctx context.Context, in GenerateForDateInput) map[string]*snapshotWorkResult {
	inputCh := make(chan string, len(in.Symbols))
	resultCh := make(chan *snapshotWorkResult, len(in.Symbols))
	numGoroutines := 10
	var wg sync.WaitGroup
	for _, symbol := range in.Symbols {
		wg.Add(1)
		inputCh <- symbol
	}
	close(inputCh)

	for i := 0; i < numGoroutines; i++ {
		go func() {
			for {
				select {
				case <-ctx.Done():
					// every queued symbol still gets a result, otherwise
					// wg.Wait never releases the collector below
					for symbol := range inputCh {
						resultCh <- &snapshotWorkResult{
							Symbol: symbol,
							Err:    ctx.Err(),
						}
						wg.Done()
					}
					return
				case symbol, ok := <-inputCh:
					if !ok {
						return
					}
					opportunity, err := BuildSnapshot(ctx, in.Cache, in.Collector, symbol, in.Date, in.Config)
					resultCh <- &snapshotWorkResult{
						Symbol:      symbol,
						Opportunity: opportunity,
						Err:         err,
					}
					wg.Done()
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	out := map[string]*snapshotWorkResult{}
	for res := range resultCh {
		out[res.Symbol] = res
	}

	return out
}

// BuildSnapshot assembles one opportunity record: point-in-time price,
// whatever signals are available, and the composite score over them.
// no price means DataUnavailable - the caller skips the item
func BuildSnapshot(
	ctx context.Context,
	cache *l1_service.PriceCache,
	collector l2_service.AnalysisCollectorService,
	symbol string,
	asOfDate time.Time,
	cfg calculator.ScoringConfig,
) (*model.Opportunity, error) {
	price, err := cache.Get(symbol, asOfDate)
	if err != nil {
		return nil, err
	}
	if price <= 0 {
		return nil, internal.ComputationError{
			Err: fmt.Errorf("degenerate price %f for %s on %s", price, symbol, asOfDate.Format(time.DateOnly)),
		}
	}

	signals, err := collector.Collect(ctx, symbol, asOfDate)
	if err != nil {
		return nil, err
	}

	score, err := calculator.CalculateCompositeScore(signals, cfg)
	if err != nil {
		return nil, err
	}

	opportunity := &model.Opportunity{
		Symbol:            symbol,
		Date:              asOfDate,
		CompositeScore:    score.CompositeScore,
		ConfidenceLevel:   score.ConfidenceLevel,
		Recommendation:    string(score.Recommendation),
		RiskLevel:         string(score.RiskLevel),
		PriceAtGeneration: decimal.NewFromFloat(price),
	}
	setSignalColumns(opportunity, signals)

	return opportunity, nil
}

// setSignalColumns maps the sparse signal map onto nullable column
// pairs - nil means the signal was absent, not zero
func setSignalColumns(opportunity *model.Opportunity, signals domain.SignalScores) {
	set := func(signalType domain.SignalType, score, confidence **float64) {
		if detail, ok := signals[signalType]; ok {
			s := detail.Score
			c := detail.Confidence
			*score = &s
			*confidence = &c
		}
	}

	set(domain.SignalTypeTechnical, &opportunity.TechnicalScore, &opportunity.TechnicalConfidence)
	set(domain.SignalTypeSentiment, &opportunity.SentimentScore, &opportunity.SentimentConfidence)
	set(domain.SignalTypeMarket, &opportunity.MarketScore, &opportunity.MarketConfidence)
	set(domain.SignalTypeMl, &opportunity.MlScore, &opportunity.MlConfidence)
}

// SignalScoresFromColumns is the inverse of setSignalColumns, used
// when reading records back out for the API
func SignalScoresFromColumns(opportunity model.Opportunity) domain.SignalScores {
	out := domain.SignalScores{}
	get := func(signalType domain.SignalType, score, confidence *float64) {
		if score != nil {
			detail := domain.ScoreDetail{Score: *score}
			if confidence != nil {
				detail.Confidence = *confidence
			}
			out[signalType] = detail
		}
	}

	get(domain.SignalTypeTechnical, opportunity.TechnicalScore, opportunity.TechnicalConfidence)
	get(domain.SignalTypeSentiment, opportunity.SentimentScore, opportunity.SentimentConfidence)
	get(domain.SignalTypeMarket, opportunity.MarketScore, opportunity.MarketConfidence)
	get(domain.SignalTypeMl, opportunity.MlScore, opportunity.MlConfidence)

	return out
}
