package calculator

import (
	"github.com/montanaflynn/stats"

	"github.com/loiclinais34/aimarkets-sub003/internal/domain"
)

type ValidationOutcome struct {
	Recommendation        domain.Recommendation
	HorizonTradingDays    int32
	RealizedReturn        float64
	RecommendationCorrect bool
}

type TierStats struct {
	Count             int
	Correct           int
	HitRate           float64
	AvgRealizedReturn float64
}

type ValidationStatsResult struct {
	Total            int
	Correct          int
	HitRate          float64
	ByRecommendation map[domain.Recommendation]*TierStats
}

// CalculateValidationStats aggregates stored validation outcomes into
// hit rates per recommendation tier. HOLD rows are counted like any
// other tier - they're always recorded as correct, so their hit rate
// is trivially 1 and mostly useful as a volume gauge
func CalculateValidationStats(outcomes []ValidationOutcome) (*ValidationStatsResult, error) {
	result := &ValidationStatsResult{
		ByRecommendation: map[domain.Recommendation]*TierStats{},
	}
	returnsByTier := map[domain.Recommendation][]float64{}

	for _, outcome := range outcomes {
		result.Total++
		if outcome.RecommendationCorrect {
			result.Correct++
		}

		tier, ok := result.ByRecommendation[outcome.Recommendation]
		if !ok {
			tier = &TierStats{}
			result.ByRecommendation[outcome.Recommendation] = tier
		}
		tier.Count++
		if outcome.RecommendationCorrect {
			tier.Correct++
		}
		returnsByTier[outcome.Recommendation] = append(returnsByTier[outcome.Recommendation], outcome.RealizedReturn)
	}

	if result.Total > 0 {
		result.HitRate = float64(result.Correct) / float64(result.Total)
	}
	for recommendation, tier := range result.ByRecommendation {
		tier.HitRate = float64(tier.Correct) / float64(tier.Count)
		avg, err := stats.Mean(returnsByTier[recommendation])
		if err != nil {
			return nil, err
		}
		tier.AvgRealizedReturn = avg
	}

	return result, nil
}
