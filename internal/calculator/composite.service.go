package calculator

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/loiclinais34/aimarkets-sub003/internal"
	"github.com/loiclinais34/aimarkets-sub003/internal/domain"
)

type Thresholds struct {
	Technical  float64
	Composite  float64
	Confidence float64
}

// ScoringConfig is constructed once per batch invocation and never
// mutated afterwards, so regenerating with identical inputs always
// reproduces identical output
type ScoringConfig struct {
	Weights       map[domain.SignalType]float64
	Thresholds    Thresholds
	PrimarySignal domain.SignalType
}

func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		Weights: map[domain.SignalType]float64{
			domain.SignalTypeTechnical: 0.4,
			domain.SignalTypeSentiment: 0.2,
			domain.SignalTypeMarket:    0.2,
			domain.SignalTypeMl:        0.2,
		},
		Thresholds: Thresholds{
			Technical:  0.6,
			Composite:  0.65,
			Confidence: 0.6,
		},
		PrimarySignal: domain.PrimarySignalType,
	}
}

const weightSumTolerance = 1e-6

// Validate is run before any batch work starts; a bad config fails
// the whole run up front rather than per item
func (c ScoringConfig) Validate() error {
	if len(c.Weights) == 0 {
		return internal.ConfigurationError{Err: fmt.Errorf("scoring config has no signal weights")}
	}
	sum := 0.0
	for signalType, w := range c.Weights {
		if math.IsNaN(w) || w < 0 || w > 1 {
			return internal.ConfigurationError{Err: fmt.Errorf("weight for %s must be in [0, 1], got %f", signalType, w)}
		}
		sum += w
	}
	if math.Abs(sum-1) > weightSumTolerance {
		return internal.ConfigurationError{Err: fmt.Errorf("signal weights must sum to 1 over the full signal set, got %f", sum)}
	}
	if _, ok := c.Weights[c.PrimarySignal]; !ok {
		return internal.ConfigurationError{Err: fmt.Errorf("primary signal %s has no weight entry", c.PrimarySignal)}
	}
	for name, threshold := range map[string]float64{
		"technical":  c.Thresholds.Technical,
		"composite":  c.Thresholds.Composite,
		"confidence": c.Thresholds.Confidence,
	} {
		if threshold < 0 || threshold > 1 {
			return internal.ConfigurationError{Err: fmt.Errorf("%s threshold must be in [0, 1], got %f", name, threshold)}
		}
	}

	return nil
}

type CompositeScoreResult struct {
	CompositeScore  float64
	ConfidenceLevel float64
	Recommendation  domain.Recommendation
	RiskLevel       domain.RiskLevel
	// CriteriaMet counts how many of the three threshold checks
	// passed; risk tiers only apply when at least 2 of 3 passed
	CriteriaMet int
}

// CalculateCompositeScore combines whatever signals are present into a
// single score, confidence, recommendation and risk level. it is pure:
// no clocks, no randomness, no lookups
func CalculateCompositeScore(signals domain.SignalScores, cfg ScoringConfig) (CompositeScoreResult, error) {
	present := []domain.SignalType{}
	presentWeightSum := 0.0
	for _, signalType := range domain.AllSignalTypes {
		if _, ok := signals[signalType]; !ok {
			continue
		}
		if _, ok := cfg.Weights[signalType]; !ok {
			continue
		}
		present = append(present, signalType)
		presentWeightSum += cfg.Weights[signalType]
	}

	// with no signals at all we can't say anything - neutral score,
	// zero confidence, and the riskiest label we have
	if len(present) == 0 || presentWeightSum == 0 {
		return CompositeScoreResult{
			CompositeScore:  0.5,
			ConfidenceLevel: 0,
			Recommendation:  domain.RecommendationHold,
			RiskLevel:       domain.RiskLevelHigh,
			CriteriaMet:     0,
		}, nil
	}

	// renormalize weights over only the present signals so they
	// always sum to 1, however sparse the inputs
	composite := 0.0
	scores := make([]float64, 0, len(present))
	confidenceSum := 0.0
	for _, signalType := range present {
		detail := signals[signalType]
		weight := cfg.Weights[signalType] / presentWeightSum
		composite += weight * detail.Score
		scores = append(scores, detail.Score)
		confidenceSum += detail.Confidence
	}
	composite = clamp01(composite)

	confidence, err := blendConfidence(scores, confidenceSum/float64(len(present)))
	if err != nil {
		return CompositeScoreResult{}, err
	}

	primaryScore := 0.0
	if detail, ok := signals[cfg.PrimarySignal]; ok {
		primaryScore = detail.Score
	}

	recommendation, criteriaMet := determineRecommendation(composite, primaryScore, confidence, cfg.Thresholds)

	return CompositeScoreResult{
		CompositeScore:  composite,
		ConfidenceLevel: confidence,
		Recommendation:  recommendation,
		RiskLevel:       determineRiskLevel(confidence, criteriaMet),
		CriteriaMet:     criteriaMet,
	}, nil
}

// blendConfidence is a 50/50 blend of cross-signal agreement (one
// minus the normalized dispersion of present scores) and the mean
// per-signal confidence. low individual confidences pull the aggregate
// down even when the scores agree
func blendConfidence(scores []float64, meanConfidence float64) (float64, error) {
	dispersion, err := stats.StandardDeviationPopulation(scores)
	if err != nil {
		return 0, fmt.Errorf("failed to calculate score dispersion: %w", err)
	}
	// 0.5 is the max possible population stdev of values in [0, 1]
	agreement := 1 - clamp01(dispersion/0.5)

	return clamp01(0.5*agreement + 0.5*meanConfidence), nil
}

// determineRecommendation evaluates the decision table in order. the
// primary signal score is 0 when the primary signal is absent, which
// fails the technical-threshold criteria but can still reach BUY_WEAK
// or HOLD on composite alone
func determineRecommendation(composite, primary, confidence float64, t Thresholds) (domain.Recommendation, int) {
	compositeOk := composite >= t.Composite
	primaryOk := primary >= t.Technical
	confidenceOk := confidence >= t.Confidence

	criteriaMet := 0
	for _, ok := range []bool{compositeOk, primaryOk, confidenceOk} {
		if ok {
			criteriaMet++
		}
	}

	switch {
	case compositeOk && primaryOk && confidenceOk:
		return domain.RecommendationBuyStrong, criteriaMet
	case compositeOk && primaryOk:
		return domain.RecommendationBuyModerate, criteriaMet
	case compositeOk || primaryOk:
		return domain.RecommendationBuyWeak, criteriaMet
	case composite >= 0.4:
		return domain.RecommendationHold, criteriaMet
	default:
		return domain.RecommendationSellModerate, criteriaMet
	}
}

// risk tiers only kick in when the decision table passed with at
// least 2 of 3 criteria; anything weaker is HIGH regardless of
// how confident the signals claim to be
func determineRiskLevel(confidence float64, criteriaMet int) domain.RiskLevel {
	if criteriaMet < 2 {
		return domain.RiskLevelHigh
	}
	if confidence >= 0.8 {
		return domain.RiskLevelLow
	}
	if confidence >= 0.6 {
		return domain.RiskLevelMedium
	}
	return domain.RiskLevelHigh
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
