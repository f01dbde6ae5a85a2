package calculator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/loiclinais34/aimarkets-sub003/internal"
	"github.com/loiclinais34/aimarkets-sub003/internal/domain"
)

func Test_CalculateCompositeScore(t *testing.T) {
	t.Run("weighted sum over present signals", func(t *testing.T) {
		cfg := ScoringConfig{
			Weights: map[domain.SignalType]float64{
				domain.SignalTypeTechnical: 0.8,
				domain.SignalTypeSentiment: 0.1,
				domain.SignalTypeMarket:    0.1,
			},
			Thresholds: Thresholds{
				Technical:  0.533,
				Composite:  0.651,
				Confidence: 0.6,
			},
			PrimarySignal: domain.SignalTypeTechnical,
		}
		signals := domain.SignalScores{
			domain.SignalTypeTechnical: {Score: 0.8, Confidence: 0.9},
			domain.SignalTypeSentiment: {Score: 0.6, Confidence: 0.9},
			domain.SignalTypeMarket:    {Score: 0.7, Confidence: 0.9},
		}

		out, err := CalculateCompositeScore(signals, cfg)
		require.NoError(t, err)

		// 0.8*0.8 + 0.6*0.1 + 0.7*0.1
		require.InDelta(t, 0.77, out.CompositeScore, 1e-9)
	})

	t.Run("all signals absent is a neutral hold", func(t *testing.T) {
		out, err := CalculateCompositeScore(domain.SignalScores{}, DefaultScoringConfig())
		require.NoError(t, err)

		require.Equal(t, "", cmp.Diff(
			CompositeScoreResult{
				CompositeScore:  0.5,
				ConfidenceLevel: 0,
				Recommendation:  domain.RecommendationHold,
				RiskLevel:       domain.RiskLevelHigh,
				CriteriaMet:     0,
			},
			out,
		))
	})

	t.Run("missing weights renormalize to 1", func(t *testing.T) {
		cfg := DefaultScoringConfig()
		r := rand.New(rand.NewSource(42))

		for i := 0; i < 200; i++ {
			signals := domain.SignalScores{}
			presentWeightSum := 0.0
			for _, signalType := range domain.AllSignalTypes {
				if r.Intn(2) == 0 {
					continue
				}
				signals[signalType] = domain.ScoreDetail{
					Score:      r.Float64(),
					Confidence: r.Float64(),
				}
				presentWeightSum += cfg.Weights[signalType]
			}

			renormalizedSum := 0.0
			for signalType := range signals {
				renormalizedSum += cfg.Weights[signalType] / presentWeightSum
			}
			if len(signals) > 0 {
				require.InDelta(t, 1.0, renormalizedSum, 1e-9)
			}

			out, err := CalculateCompositeScore(signals, cfg)
			require.NoError(t, err)
			require.GreaterOrEqual(t, out.CompositeScore, 0.0)
			require.LessOrEqual(t, out.CompositeScore, 1.0)
			require.GreaterOrEqual(t, out.ConfidenceLevel, 0.0)
			require.LessOrEqual(t, out.ConfidenceLevel, 1.0)
		}
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		cfg := DefaultScoringConfig()
		signals := domain.SignalScores{
			domain.SignalTypeTechnical: {Score: 0.71, Confidence: 0.8},
			domain.SignalTypeMl:        {Score: 0.44, Confidence: 0.35},
		}

		first, err := CalculateCompositeScore(signals, cfg)
		require.NoError(t, err)
		second, err := CalculateCompositeScore(signals, cfg)
		require.NoError(t, err)

		require.Equal(t, "", cmp.Diff(first, second))
	})

	t.Run("low per-signal confidence drags the blend down", func(t *testing.T) {
		cfg := DefaultScoringConfig()
		// perfect agreement, terrible individual confidence
		signals := domain.SignalScores{
			domain.SignalTypeTechnical: {Score: 0.8, Confidence: 0.1},
			domain.SignalTypeSentiment: {Score: 0.8, Confidence: 0.1},
		}

		out, err := CalculateCompositeScore(signals, cfg)
		require.NoError(t, err)

		// agreement term is 1.0, so the blend is 0.5 + 0.5*0.1
		require.InDelta(t, 0.55, out.ConfidenceLevel, 1e-9)
	})
}

func Test_determineRecommendation(t *testing.T) {
	thresholds := Thresholds{
		Technical:  0.533,
		Composite:  0.651,
		Confidence: 0.6,
	}

	tests := []struct {
		name        string
		composite   float64
		primary     float64
		confidence  float64
		want        domain.Recommendation
		criteriaMet int
	}{
		{"all three thresholds met", 0.77, 0.8, 0.9, domain.RecommendationBuyStrong, 3},
		{"composite and primary only", 0.77, 0.8, 0.3, domain.RecommendationBuyModerate, 2},
		{"composite only", 0.7, 0.2, 0.3, domain.RecommendationBuyWeak, 1},
		{"primary only", 0.45, 0.8, 0.3, domain.RecommendationBuyWeak, 1},
		{"neither but above hold floor", 0.45, 0.2, 0.9, domain.RecommendationHold, 1},
		{"below hold floor", 0.2, 0.1, 0.1, domain.RecommendationSellModerate, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, criteriaMet := determineRecommendation(tc.composite, tc.primary, tc.confidence, thresholds)
			require.Equal(t, tc.want, got)
			require.Equal(t, tc.criteriaMet, criteriaMet)
		})
	}
}

func Test_determineRiskLevel(t *testing.T) {
	require.Equal(t, domain.RiskLevelLow, determineRiskLevel(0.85, 3))
	require.Equal(t, domain.RiskLevelMedium, determineRiskLevel(0.65, 2))
	require.Equal(t, domain.RiskLevelHigh, determineRiskLevel(0.5, 2))
	// high confidence doesn't matter if the decision table barely passed
	require.Equal(t, domain.RiskLevelHigh, determineRiskLevel(0.95, 1))
}

func Test_ScoringConfigValidate(t *testing.T) {
	t.Run("default config is valid", func(t *testing.T) {
		require.NoError(t, DefaultScoringConfig().Validate())
	})

	t.Run("weights must sum to 1", func(t *testing.T) {
		cfg := DefaultScoringConfig()
		cfg.Weights[domain.SignalTypeMl] = 0.5

		err := cfg.Validate()
		require.Error(t, err)
		require.ErrorAs(t, err, &internal.ConfigurationError{})
	})

	t.Run("thresholds must be in range", func(t *testing.T) {
		cfg := DefaultScoringConfig()
		cfg.Thresholds.Composite = 1.5

		err := cfg.Validate()
		require.Error(t, err)
		require.ErrorAs(t, err, &internal.ConfigurationError{})
	})

	t.Run("primary signal needs a weight", func(t *testing.T) {
		cfg := DefaultScoringConfig()
		cfg.PrimarySignal = domain.SignalType("fundamentals")

		err := cfg.Validate()
		require.Error(t, err)
		require.ErrorAs(t, err, &internal.ConfigurationError{})
	})

	t.Run("NaN weight sums are rejected", func(t *testing.T) {
		cfg := DefaultScoringConfig()
		cfg.Weights[domain.SignalTypeMl] = math.NaN()

		require.Error(t, cfg.Validate())
	})
}
