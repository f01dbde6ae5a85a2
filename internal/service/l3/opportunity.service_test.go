package l3_service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/loiclinais34/aimarkets-sub003/internal"
	"github.com/loiclinais34/aimarkets-sub003/internal/calculator"
	"github.com/loiclinais34/aimarkets-sub003/internal/db/models/postgres/public/model"
	"github.com/loiclinais34/aimarkets-sub003/internal/domain"
	mock_repository "github.com/loiclinais34/aimarkets-sub003/internal/repository/mocks"
	"github.com/loiclinais34/aimarkets-sub003/internal/util"
)

type fixedCollector struct {
	signals domain.SignalScores
}

func (c fixedCollector) Collect(ctx context.Context, symbol string, asOfDate time.Time) (domain.SignalScores, error) {
	return c.signals, nil
}

func Test_BuildSnapshot(t *testing.T) {
	ctx := context.Background()
	cache := validationTestCache()
	cfg := calculator.DefaultScoringConfig()
	asOfDate := util.NewDate(2024, 1, 5)

	t.Run("builds record from price and signals", func(t *testing.T) {
		collector := fixedCollector{signals: domain.SignalScores{
			domain.SignalTypeTechnical: {Score: 0.8, Confidence: 0.9},
			domain.SignalTypeSentiment: {Score: 0.7, Confidence: 0.6},
		}}

		opportunity, err := BuildSnapshot(ctx, cache, collector, "AAPL", asOfDate, cfg)
		require.NoError(t, err)

		require.Equal(t, "AAPL", opportunity.Symbol)
		require.Equal(t, asOfDate, opportunity.Date)
		require.Equal(t, "104", opportunity.PriceAtGeneration.String())

		require.NotNil(t, opportunity.TechnicalScore)
		require.Equal(t, 0.8, *opportunity.TechnicalScore)
		require.NotNil(t, opportunity.SentimentConfidence)
		require.Equal(t, 0.6, *opportunity.SentimentConfidence)
		require.Nil(t, opportunity.MarketScore)
		require.Nil(t, opportunity.MlScore)

		expected, err := calculator.CalculateCompositeScore(collector.signals, cfg)
		require.NoError(t, err)
		require.Equal(t, expected.CompositeScore, opportunity.CompositeScore)
		require.Equal(t, string(expected.Recommendation), opportunity.Recommendation)
		require.Equal(t, string(expected.RiskLevel), opportunity.RiskLevel)
	})

	t.Run("missing price is data unavailable", func(t *testing.T) {
		collector := fixedCollector{signals: domain.SignalScores{}}
		_, err := BuildSnapshot(ctx, cache, collector, "MSFT", asOfDate, cfg)
		require.ErrorAs(t, err, &internal.DataUnavailableError{})
	})

	t.Run("no signals yields the neutral record", func(t *testing.T) {
		collector := fixedCollector{signals: domain.SignalScores{}}
		opportunity, err := BuildSnapshot(ctx, cache, collector, "AAPL", asOfDate, cfg)
		require.NoError(t, err)
		require.Equal(t, 0.5, opportunity.CompositeScore)
		require.Equal(t, float64(0), opportunity.ConfidenceLevel)
		require.Equal(t, string(domain.RecommendationHold), opportunity.Recommendation)
		require.Equal(t, string(domain.RiskLevelHigh), opportunity.RiskLevel)
	})
}

func Test_upsertSnapshot(t *testing.T) {
	asOfDate := util.NewDate(2024, 1, 5)
	opportunity := &model.Opportunity{
		Symbol: "AAPL",
		Date:   asOfDate,
	}

	t.Run("existing record without force is untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		opportunityRepository := mock_repository.NewMockOpportunityRepository(ctrl)
		handler := opportunityServiceHandler{OpportunityRepository: opportunityRepository}

		opportunityRepository.EXPECT().
			Get("AAPL", asOfDate).
			Return(&model.Opportunity{OpportunityID: uuid.New()}, nil)

		status, err := handler.upsertSnapshot(nil, opportunity, false)
		require.NoError(t, err)
		require.Equal(t, ItemStatusGenerated, status)
	})

	t.Run("new record is written", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		opportunityRepository := mock_repository.NewMockOpportunityRepository(ctrl)
		handler := opportunityServiceHandler{OpportunityRepository: opportunityRepository}

		opportunityRepository.EXPECT().
			Get("AAPL", asOfDate).
			Return(nil, nil)
		opportunityRepository.EXPECT().
			Upsert(gomock.Any(), opportunity).
			Return(nil)

		status, err := handler.upsertSnapshot(nil, opportunity, false)
		require.NoError(t, err)
		require.Equal(t, ItemStatusGenerated, status)
	})

	t.Run("force always writes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		opportunityRepository := mock_repository.NewMockOpportunityRepository(ctrl)
		handler := opportunityServiceHandler{OpportunityRepository: opportunityRepository}

		opportunityRepository.EXPECT().
			Upsert(gomock.Any(), opportunity).
			Return(nil)

		status, err := handler.upsertSnapshot(nil, opportunity, true)
		require.NoError(t, err)
		require.Equal(t, ItemStatusGenerated, status)
	})
}

func Test_buildSnapshots(t *testing.T) {
	ctx := context.Background()
	cache := validationTestCache()
	handler := opportunityServiceHandler{}

	collector := fixedCollector{signals: domain.SignalScores{
		domain.SignalTypeTechnical: {Score: 0.8, Confidence: 0.9},
	}}
	in := GenerateForDateInput{
		Date:      util.NewDate(2024, 1, 5),
		Symbols:   []string{"AAPL", "MSFT"},
		Cache:     cache,
		Collector: collector,
		Config:    calculator.DefaultScoringConfig(),
	}

	computed := handler.buildSnapshots(ctx, in)
	require.Len(t, computed, 2)

	require.NoError(t, computed["AAPL"].Err)
	require.NotNil(t, computed["AAPL"].Opportunity)

	// MSFT has no prices loaded, so its work item carries the skip error
	require.ErrorAs(t, computed["MSFT"].Err, &internal.DataUnavailableError{})
	require.Nil(t, computed["MSFT"].Opportunity)
}

func Test_buildSnapshotsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	symbols := []string{}
	for i := 0; i < 50; i++ {
		symbols = append(symbols, fmt.Sprintf("SYM%02d", i))
	}
	handler := opportunityServiceHandler{}
	in := GenerateForDateInput{
		Date:      util.NewDate(2024, 1, 5),
		Symbols:   symbols,
		Cache:     validationTestCache(),
		Collector: fixedCollector{signals: domain.SignalScores{}},
		Config:    calculator.DefaultScoringConfig(),
	}

	// cancellation must never strand queued symbols; every one still
	// gets a work result and the collector loop terminates
	done := make(chan map[string]*snapshotWorkResult, 1)
	go func() {
		done <- handler.buildSnapshots(ctx, in)
	}()

	select {
	case computed := <-done:
		require.Len(t, computed, len(symbols))
		for _, symbol := range symbols {
			require.NotNil(t, computed[symbol])
			require.Error(t, computed[symbol].Err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("buildSnapshots did not return after cancellation")
	}
}

func Test_SignalScoresFromColumns(t *testing.T) {
	signals := domain.SignalScores{
		domain.SignalTypeTechnical: {Score: 0.8, Confidence: 0.9},
		domain.SignalTypeMl:        {Score: 0.4, Confidence: 0.5},
	}
	opportunity := &model.Opportunity{}
	setSignalColumns(opportunity, signals)

	require.Empty(t, cmp.Diff(signals, SignalScoresFromColumns(*opportunity)))
}
