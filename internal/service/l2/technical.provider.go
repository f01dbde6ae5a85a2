package l2_service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/loiclinais34/aimarkets-sub003/internal"
	"github.com/loiclinais34/aimarkets-sub003/internal/domain"
	l1_service "github.com/loiclinais34/aimarkets-sub003/internal/service/l1"
	"github.com/loiclinais34/aimarkets-sub003/internal/util"
)

const (
	technicalLookbackDays = 20
	technicalMinReturns   = 10
)

// technicalProvider scores risk-adjusted momentum over the trailing
// 20 trading days, squashed into [0, 1]. it reads from the batch's
// preloaded price cache and only ever looks at days <= asOfDate
type technicalProvider struct {
	Cache *l1_service.PriceCache
}

func NewTechnicalProvider(cache *l1_service.PriceCache) AnalysisProvider {
	return technicalProvider{Cache: cache}
}

func (p technicalProvider) SignalType() domain.SignalType {
	return domain.SignalTypeTechnical
}

func (p technicalProvider) Analyze(ctx context.Context, symbol string, asOfDate time.Time) (*domain.ScoreDetail, error) {
	window := []time.Time{}
	for _, day := range p.Cache.TradingDays() {
		if util.DateLte(day, asOfDate) {
			window = append(window, day)
		}
	}
	if len(window) > technicalLookbackDays+1 {
		window = window[len(window)-technicalLookbackDays-1:]
	}

	dailyReturns := []float64{}
	for i := 1; i < len(window); i++ {
		prev, err := p.Cache.GetExact(symbol, window[i-1])
		if err != nil {
			continue
		}
		current, err := p.Cache.GetExact(symbol, window[i])
		if err != nil || prev == 0 {
			continue
		}
		dailyReturns = append(dailyReturns, (current-prev)/prev)
	}

	if len(dailyReturns) < technicalMinReturns {
		return nil, internal.DataUnavailableError{
			Err: fmt.Errorf("only %d daily returns for %s up to %s", len(dailyReturns), symbol, asOfDate.Format(time.DateOnly)),
		}
	}

	momentum := 0.0
	for _, r := range dailyReturns {
		momentum += r
	}

	stdev, err := stats.StandardDeviationSample(dailyReturns)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate return stdev for %s: %w", symbol, err)
	}

	riskAdjusted := 0.0
	if stdev > 0 {
		riskAdjusted = momentum / (stdev * math.Sqrt(float64(len(dailyReturns))))
	}

	// logistic squash: flat momentum scores 0.5, strong trends
	// saturate toward 0 or 1
	score := 1 / (1 + math.Exp(-3*riskAdjusted))

	confidence := float64(len(dailyReturns)) / float64(technicalLookbackDays)
	if confidence > 1 {
		confidence = 1
	}

	return &domain.ScoreDetail{
		Score:      score,
		Confidence: confidence,
		Detail:     fmt.Sprintf("momentum=%.4f stdev=%.4f n=%d", momentum, stdev, len(dailyReturns)),
	}, nil
}
