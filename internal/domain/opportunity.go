package domain

type SignalType string

const (
	SignalTypeTechnical SignalType = "technical"
	SignalTypeSentiment SignalType = "sentiment"
	SignalTypeMarket    SignalType = "market"
	SignalTypeMl        SignalType = "ml"
)

var AllSignalTypes = []SignalType{
	SignalTypeTechnical,
	SignalTypeSentiment,
	SignalTypeMarket,
	SignalTypeMl,
}

// PrimarySignalType is the signal the recommendation decision
// table keys on, in addition to the composite score
const PrimarySignalType = SignalTypeTechnical

type ScoreDetail struct {
	Score      float64
	Confidence float64
	Detail     string
}

// SignalScores is sparse - a missing key means the signal was
// unavailable for that (symbol, date), not that it scored 0
type SignalScores map[SignalType]ScoreDetail

type Recommendation string

const (
	RecommendationBuyStrong    Recommendation = "BUY_STRONG"
	RecommendationBuyModerate  Recommendation = "BUY_MODERATE"
	RecommendationBuyWeak      Recommendation = "BUY_WEAK"
	RecommendationHold         Recommendation = "HOLD"
	RecommendationSellModerate Recommendation = "SELL_MODERATE"
)

func (r Recommendation) IsBuy() bool {
	return r == RecommendationBuyStrong || r == RecommendationBuyModerate || r == RecommendationBuyWeak
}

func (r Recommendation) IsSell() bool {
	return r == RecommendationSellModerate
}

type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "LOW"
	RiskLevelMedium RiskLevel = "MEDIUM"
	RiskLevelHigh   RiskLevel = "HIGH"
)
