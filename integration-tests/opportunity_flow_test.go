package integration_tests

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/loiclinais34/aimarkets-sub003/internal"
	"github.com/loiclinais34/aimarkets-sub003/internal/app"
	"github.com/loiclinais34/aimarkets-sub003/internal/calculator"
	"github.com/loiclinais34/aimarkets-sub003/internal/db/models/postgres/public/model"
	"github.com/loiclinais34/aimarkets-sub003/internal/db/models/postgres/public/table"
	"github.com/loiclinais34/aimarkets-sub003/internal/repository"
	l1_service "github.com/loiclinais34/aimarkets-sub003/internal/service/l1"
	l2_service "github.com/loiclinais34/aimarkets-sub003/internal/service/l2"
	l3_service "github.com/loiclinais34/aimarkets-sub003/internal/service/l3"
	"github.com/loiclinais34/aimarkets-sub003/internal/util"
)

// the trading-day detector requires more than 10 priced symbols per
// day, so the seed universe carries 12 names: half trending up, half
// trending down. NOPX exists as a ticker but never gets prices
var seedSymbols = func() []string {
	out := []string{}
	for i := 0; i < 12; i++ {
		out = append(out, fmt.Sprintf("TST%02d", i))
	}
	return out
}()

const symbolWithoutPrices = "NOPX"

func cleanupOpportunities(db *sql.DB) error {
	if _, err := table.OpportunityValidation.DELETE().WHERE(postgres.Bool(true)).Exec(db); err != nil {
		return err
	}
	if _, err := table.Opportunity.DELETE().WHERE(postgres.Bool(true)).Exec(db); err != nil {
		return err
	}
	if _, err := table.EodPrice.DELETE().WHERE(postgres.Bool(true)).Exec(db); err != nil {
		return err
	}
	if _, err := table.Ticker.DELETE().WHERE(postgres.Bool(true)).Exec(db); err != nil {
		return err
	}
	return nil
}

func seedTickers(tx *sql.Tx, tickerRepository repository.TickerRepository) error {
	for _, symbol := range append(append([]string{}, seedSymbols...), symbolWithoutPrices) {
		if _, err := tickerRepository.GetOrCreate(tx, model.Ticker{Symbol: symbol}); err != nil {
			return err
		}
	}
	return nil
}

// seedPrices writes weekday closes from Jan 2 through Mar 15 2024.
// even-indexed symbols drift up 0.5/day from 100, odd ones drift down
// 0.5/day from 200
func seedPrices(tx *sql.Tx, eodPriceRepository repository.EodPriceRepository) error {
	prices := []model.EodPrice{}
	day := 0
	for _, d := range util.DatesBetween(util.NewDate(2024, 1, 2), util.NewDate(2024, 3, 15)) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		for i, symbol := range seedSymbols {
			price := 100 + 0.5*float64(day)
			if i%2 == 1 {
				price = 200 - 0.5*float64(day)
			}
			prices = append(prices, model.EodPrice{
				Symbol:    symbol,
				Date:      d,
				Price:     decimal.NewFromFloat(price),
				CreatedAt: time.Now().UTC(),
			})
		}
		day++
	}
	return eodPriceRepository.Add(tx, prices)
}

func newTestRunner(db *sql.DB) (app.BatchRunner, repository.OpportunityRepository, repository.OpportunityValidationRepository) {
	tickerRepository := repository.NewTickerRepository(db)
	eodPriceRepository := repository.NewEodPriceRepository(db)
	opportunityRepository := repository.NewOpportunityRepository(db)
	opportunityValidationRepository := repository.NewOpportunityValidationRepository(db)

	priceService := l1_service.NewPriceService(db, eodPriceRepository)
	opportunityService := l3_service.NewOpportunityService(db, opportunityRepository)
	validationService := l3_service.NewValidationService(db, opportunityValidationRepository)

	providers := func(cache *l1_service.PriceCache) []l2_service.AnalysisProvider {
		return []l2_service.AnalysisProvider{
			l2_service.NewTechnicalProvider(cache),
		}
	}

	runner := app.NewBatchRunner(
		db,
		tickerRepository,
		opportunityRepository,
		priceService,
		opportunityService,
		validationService,
		providers,
	)

	return runner, opportunityRepository, opportunityValidationRepository
}

func Test_opportunityFlow(t *testing.T) {
	db, err := internal.NewTestDb()
	require.NoError(t, err)
	require.NoError(t, cleanupOpportunities(db))

	tx, err := db.Begin()
	require.NoError(t, err)
	defer tx.Rollback()
	require.NoError(t, seedTickers(tx, repository.NewTickerRepository(db)))
	require.NoError(t, seedPrices(tx, repository.NewEodPriceRepository(db)))
	require.NoError(t, tx.Commit())

	runner, opportunityRepository, validationRepository := newTestRunner(db)
	ctx := context.Background()

	startDate := util.NewDate(2024, 3, 4)
	endDate := util.NewDate(2024, 3, 6)
	symbols := append(append([]string{}, seedSymbols...), symbolWithoutPrices)

	report, err := runner.RunGeneration(ctx, app.GenerateBatchInput{
		Symbols:   symbols,
		StartDate: startDate,
		EndDate:   endDate,
		Config:    calculator.DefaultScoringConfig(),
	})
	require.NoError(t, err)

	// 13 symbols x 3 trading days; NOPX has no prices so its 3 items
	// are skipped with a data-unavailable error
	require.Equal(t, 39, report.Total)
	require.Equal(t, 36, report.Succeeded)
	require.Equal(t, 3, report.Failed)
	for _, itemError := range report.Errors {
		require.ErrorAs(t, itemError.Err, &internal.DataUnavailableError{})
	}

	stored, err := opportunityRepository.List(repository.OpportunityListFilter{})
	require.NoError(t, err)
	require.Len(t, stored, 36)
	for _, opportunity := range stored {
		require.GreaterOrEqual(t, opportunity.CompositeScore, 0.0)
		require.LessOrEqual(t, opportunity.CompositeScore, 1.0)
		require.NotEmpty(t, opportunity.Recommendation)
		require.NotEmpty(t, opportunity.RiskLevel)
		require.NotNil(t, opportunity.TechnicalScore)
	}

	// rising names should score above falling ones
	rising, err := opportunityRepository.Get("TST00", startDate)
	require.NoError(t, err)
	falling, err := opportunityRepository.Get("TST01", startDate)
	require.NoError(t, err)
	require.Greater(t, rising.CompositeScore, falling.CompositeScore)

	t.Run("regeneration without force is a no-op", func(t *testing.T) {
		before, err := opportunityRepository.Get("TST00", startDate)
		require.NoError(t, err)

		_, err = runner.RunGeneration(ctx, app.GenerateBatchInput{
			Symbols:   symbols,
			StartDate: startDate,
			EndDate:   endDate,
			Config:    calculator.DefaultScoringConfig(),
		})
		require.NoError(t, err)

		after, err := opportunityRepository.Get("TST00", startDate)
		require.NoError(t, err)
		require.Equal(t, before.OpportunityID, after.OpportunityID)
		require.Equal(t, before.UpdatedAt, after.UpdatedAt)
	})

	t.Run("forced regeneration replaces in place", func(t *testing.T) {
		before, err := opportunityRepository.Get("TST00", startDate)
		require.NoError(t, err)

		_, err = runner.RunGeneration(ctx, app.GenerateBatchInput{
			Symbols:   symbols,
			StartDate: startDate,
			EndDate:   endDate,
			Force:     true,
			Config:    calculator.DefaultScoringConfig(),
		})
		require.NoError(t, err)

		after, err := opportunityRepository.Get("TST00", startDate)
		require.NoError(t, err)
		require.Equal(t, before.OpportunityID, after.OpportunityID)
		require.True(t, after.UpdatedAt.After(before.UpdatedAt))

		count, err := opportunityRepository.List(repository.OpportunityListFilter{})
		require.NoError(t, err)
		require.Len(t, count, 36)
	})

	t.Run("validation records realized outcomes", func(t *testing.T) {
		validationReport, err := runner.RunValidation(ctx, app.ValidateBatchInput{
			Horizons: []int{1, 5},
		})
		require.NoError(t, err)
		require.Equal(t, 36, validationReport.Total)
		require.Equal(t, 36, validationReport.Succeeded)

		opportunity, err := opportunityRepository.Get("TST00", startDate)
		require.NoError(t, err)
		validations, err := validationRepository.ListForOpportunity(opportunity.OpportunityID)
		require.NoError(t, err)
		require.Len(t, validations, 2)

		// TST00 rises 0.5/day, so every horizon realizes a gain
		for _, validation := range validations {
			require.Greater(t, validation.RealizedReturn, 0.0)
			require.NotEmpty(t, validation.PerformanceCategory)
		}

		// re-running is idempotent
		secondReport, err := runner.RunValidation(ctx, app.ValidateBatchInput{
			Horizons: []int{1, 5},
		})
		require.NoError(t, err)
		require.Equal(t, 36, secondReport.Succeeded)
		validationsAgain, err := validationRepository.ListForOpportunity(opportunity.OpportunityID)
		require.NoError(t, err)
		require.Len(t, validationsAgain, 2)
	})
}
