package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/loiclinais34/aimarkets-sub003/internal"
	"github.com/loiclinais34/aimarkets-sub003/internal/calculator"
	"github.com/loiclinais34/aimarkets-sub003/internal/db/models/postgres/public/model"
	"github.com/loiclinais34/aimarkets-sub003/internal/domain"
	"github.com/loiclinais34/aimarkets-sub003/internal/repository"
	l1_service "github.com/loiclinais34/aimarkets-sub003/internal/service/l1"
	l2_service "github.com/loiclinais34/aimarkets-sub003/internal/service/l2"
	l3_service "github.com/loiclinais34/aimarkets-sub003/internal/service/l3"
	"github.com/loiclinais34/aimarkets-sub003/internal/util"
)

const (
	defaultChunkSize = 50

	// enough calendar history before the first as-of date for the
	// analysis providers' lookback windows
	analysisLookbackCalendarDays = 45
)

type ProgressUpdate struct {
	Processed   int    `json:"processedCount"`
	Total       int    `json:"totalCount"`
	Succeeded   int    `json:"succeededCount"`
	Failed      int    `json:"failedCount"`
	CurrentItem string `json:"currentItem"`
}

type BatchItemError struct {
	Item    string `json:"item"`
	Message string `json:"error"`
	Err     error  `json:"-"`
}

type BatchReport struct {
	Total      int              `json:"total"`
	Succeeded  int              `json:"succeeded"`
	Failed     int              `json:"failed"`
	Errors     []BatchItemError `json:"errors"`
	DurationMs int64            `json:"durationMs"`
}

type GenerateBatchInput struct {
	// Symbols defaults to every known ticker when empty
	Symbols   []string
	StartDate time.Time
	EndDate   time.Time
	Force     bool
	Config    calculator.ScoringConfig
	ChunkSize int
	// Progress receives best-effort updates; sends never block, a slow
	// consumer just sees fewer intermediate states
	Progress chan<- ProgressUpdate
}

type ValidateBatchInput struct {
	Symbols []string
	// nil bounds leave that side of the window open
	StartDate *time.Time
	EndDate   *time.Time
	Horizons  []int
	ChunkSize int
	Progress  chan<- ProgressUpdate
}

type BatchRunner interface {
	RunGeneration(ctx context.Context, in GenerateBatchInput) (*BatchReport, error)
	RunValidation(ctx context.Context, in ValidateBatchInput) (*BatchReport, error)
}

type batchRunnerHandler struct {
	Db                    *sql.DB
	TickerRepository      repository.TickerRepository
	OpportunityRepository repository.OpportunityRepository
	PriceService          l1_service.PriceService
	OpportunityService    l3_service.OpportunityService
	ValidationService     l3_service.ValidationService
	// Providers constructs the analysis providers bound to a freshly
	// loaded cache, so every batch sees one consistent price snapshot
	Providers func(cache *l1_service.PriceCache) []l2_service.AnalysisProvider
}

func NewBatchRunner(
	db *sql.DB,
	tickerRepository repository.TickerRepository,
	opportunityRepository repository.OpportunityRepository,
	priceService l1_service.PriceService,
	opportunityService l3_service.OpportunityService,
	validationService l3_service.ValidationService,
	providers func(cache *l1_service.PriceCache) []l2_service.AnalysisProvider,
) BatchRunner {
	return batchRunnerHandler{
		Db:                    db,
		TickerRepository:      tickerRepository,
		OpportunityRepository: opportunityRepository,
		PriceService:          priceService,
		OpportunityService:    opportunityService,
		ValidationService:     validationService,
		Providers:             providers,
	}
}

// RunGeneration walks the symbol x date grid in bounded chunks. one
// chunk failing never aborts later chunks; the report carries every
// per-item error. config problems surface before any work starts
func (h batchRunnerHandler) RunGeneration(ctx context.Context, in GenerateBatchInput) (*BatchReport, error) {
	start := time.Now()
	if err := in.Config.Validate(); err != nil {
		return nil, err
	}
	if in.EndDate.Before(in.StartDate) {
		return nil, internal.ConfigurationError{
			Err: fmt.Errorf("end date %s precedes start date %s", in.EndDate.Format(time.DateOnly), in.StartDate.Format(time.DateOnly)),
		}
	}
	chunkSize := in.ChunkSize
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}

	profile, endProfile := domain.GetProfile(ctx)
	defer endProfile()

	symbols, err := h.resolveSymbols(in.Symbols)
	if err != nil {
		return nil, err
	}

	_, endSpan := profile.StartNewSpan("load price cache")
	cache, err := h.loadGenerationCache(ctx, symbols, in.StartDate, in.EndDate)
	endSpan()
	if err != nil {
		return nil, err
	}

	collector := l2_service.NewAnalysisCollectorService(h.Providers(cache))

	dates := []time.Time{}
	for _, day := range cache.TradingDays() {
		if !day.Before(in.StartDate) && !day.After(in.EndDate) {
			dates = append(dates, day)
		}
	}

	report := &BatchReport{
		Total:  len(dates) * len(symbols),
		Errors: []BatchItemError{},
	}

	_, endSpan = profile.StartNewSpan("generate opportunities")
	defer endSpan()
	processed := 0
	for _, date := range dates {
		for _, chunk := range chunkSymbols(symbols, chunkSize) {
			if ctx.Err() != nil {
				report.DurationMs = time.Since(start).Milliseconds()
				return report, ctx.Err()
			}

			var results []l3_service.GenerateItemResult
			err := util.Retry(ctx, 3, 250*time.Millisecond, isTransientStoreError, func() error {
				var genErr error
				results, genErr = h.OpportunityService.GenerateForDate(ctx, l3_service.GenerateForDateInput{
					Date:      date,
					Symbols:   chunk,
					Cache:     cache,
					Collector: collector,
					Config:    in.Config,
					Force:     in.Force,
				})
				return genErr
			})
			if err != nil {
				for _, symbol := range chunk {
					processed++
					report.Failed++
					report.Errors = append(report.Errors, newItemError(itemKey(symbol, date), err))
				}
				emitProgress(in.Progress, progressUpdate(processed, report, itemKey(chunk[len(chunk)-1], date)))
				continue
			}

			for _, result := range results {
				processed++
				if result.Status == l3_service.ItemStatusGenerated {
					report.Succeeded++
				} else {
					report.Failed++
					report.Errors = append(report.Errors, newItemError(itemKey(result.Symbol, result.Date), result.Err))
				}
				emitProgress(in.Progress, progressUpdate(processed, report, itemKey(result.Symbol, result.Date)))
			}
		}
	}

	report.DurationMs = time.Since(start).Milliseconds()
	return report, nil
}

// RunValidation scores every opportunity in the window against the
// requested horizons. an opportunity succeeds when no horizon fails;
// unmatured horizons are silently left for a later pass
func (h batchRunnerHandler) RunValidation(ctx context.Context, in ValidateBatchInput) (*BatchReport, error) {
	start := time.Now()
	chunkSize := in.ChunkSize
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}
	horizons := in.Horizons
	if len(horizons) == 0 {
		horizons = l3_service.DefaultValidationHorizons
	}
	maxHorizon := 0
	for _, horizon := range horizons {
		if horizon <= 0 {
			return nil, internal.ConfigurationError{
				Err: fmt.Errorf("validation horizon must be positive, got %d", horizon),
			}
		}
		if horizon > maxHorizon {
			maxHorizon = horizon
		}
	}

	profile, endProfile := domain.GetProfile(ctx)
	defer endProfile()

	opportunities, err := h.OpportunityRepository.List(repository.OpportunityListFilter{
		Symbols: in.Symbols,
		MinDate: in.StartDate,
		MaxDate: in.EndDate,
	})
	if err != nil {
		return nil, err
	}

	_, endSpan := profile.StartNewSpan("load price cache")
	cacheInputs := []l1_service.LoadPriceCacheInput{}
	for _, opportunity := range opportunities {
		cacheInputs = append(cacheInputs, l1_service.LoadPriceCacheInput{
			Symbol: opportunity.Symbol,
			Date:   opportunity.Date,
		})
	}
	cache, err := h.PriceService.LoadPriceCache(ctx, cacheInputs, maxHorizon)
	endSpan()
	if err != nil {
		return nil, err
	}

	report := &BatchReport{
		Total:  len(opportunities),
		Errors: []BatchItemError{},
	}

	_, endSpan = profile.StartNewSpan("validate opportunities")
	defer endSpan()
	processed := 0
	for _, chunk := range chunkOpportunities(opportunities, chunkSize) {
		for _, opportunity := range chunk {
			if ctx.Err() != nil {
				report.DurationMs = time.Since(start).Milliseconds()
				return report, ctx.Err()
			}

			results := h.ValidationService.ValidateOpportunity(ctx, l3_service.ValidateOpportunityInput{
				Opportunity: opportunity,
				Horizons:    horizons,
				Cache:       cache,
			})

			processed++
			failed := false
			for _, result := range results {
				if result.Status == l3_service.ValidationStatusFailed {
					failed = true
					report.Errors = append(report.Errors, newItemError(
						fmt.Sprintf("%s horizon=%d", itemKey(result.Symbol, result.Date), result.HorizonTradingDays),
						result.Err,
					))
				}
			}
			if failed {
				report.Failed++
			} else {
				report.Succeeded++
			}
			emitProgress(in.Progress, progressUpdate(processed, report, itemKey(opportunity.Symbol, opportunity.Date)))
		}
	}

	report.DurationMs = time.Since(start).Milliseconds()
	return report, nil
}

func (h batchRunnerHandler) resolveSymbols(symbols []string) ([]string, error) {
	if len(symbols) > 0 {
		return symbols, nil
	}
	tickers, err := h.TickerRepository.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list tickers: %w", err)
	}
	out := []string{}
	for _, ticker := range tickers {
		out = append(out, ticker.Symbol)
	}
	if len(out) == 0 {
		return nil, internal.ConfigurationError{Err: fmt.Errorf("no symbols to process")}
	}
	return out, nil
}

func (h batchRunnerHandler) loadGenerationCache(ctx context.Context, symbols []string, startDate, endDate time.Time) (*l1_service.PriceCache, error) {
	inputs := []l1_service.LoadPriceCacheInput{}
	for _, symbol := range symbols {
		// the early date widens the window so providers can look back
		// past the first as-of date
		inputs = append(inputs,
			l1_service.LoadPriceCacheInput{Symbol: symbol, Date: startDate.AddDate(0, 0, -analysisLookbackCalendarDays)},
			l1_service.LoadPriceCacheInput{Symbol: symbol, Date: endDate},
		)
	}
	return h.PriceService.LoadPriceCache(ctx, inputs, 0)
}

func isTransientStoreError(err error) bool {
	return !internal.IsDomainError(err)
}

func itemKey(symbol string, date time.Time) string {
	return fmt.Sprintf("%s@%s", symbol, date.Format(time.DateOnly))
}

func newItemError(item string, err error) BatchItemError {
	message := "unknown error"
	if err != nil {
		message = err.Error()
	}
	return BatchItemError{Item: item, Message: message, Err: err}
}

func progressUpdate(processed int, report *BatchReport, currentItem string) ProgressUpdate {
	return ProgressUpdate{
		Processed:   processed,
		Total:       report.Total,
		Succeeded:   report.Succeeded,
		Failed:      report.Failed,
		CurrentItem: currentItem,
	}
}

// emitProgress never blocks the batch on a slow listener
func emitProgress(ch chan<- ProgressUpdate, update ProgressUpdate) {
	if ch == nil {
		return
	}
	select {
	case ch <- update:
	default:
	}
}

func chunkSymbols(symbols []string, size int) [][]string {
	out := [][]string{}
	for start := 0; start < len(symbols); start += size {
		end := start + size
		if end > len(symbols) {
			end = len(symbols)
		}
		out = append(out, symbols[start:end])
	}
	return out
}

func chunkOpportunities(opportunities []model.Opportunity, size int) [][]model.Opportunity {
	out := [][]model.Opportunity{}
	for start := 0; start < len(opportunities); start += size {
		end := start + size
		if end > len(opportunities) {
			end = len(opportunities)
		}
		out = append(out, opportunities[start:end])
	}
	return out
}
