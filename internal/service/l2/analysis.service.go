package l2_service

import (
	"context"
	"errors"
	"time"

	"github.com/loiclinais34/aimarkets-sub003/internal"
	"github.com/loiclinais34/aimarkets-sub003/internal/domain"
	"github.com/loiclinais34/aimarkets-sub003/internal/logger"
)

// AnalysisProvider is one evidence source (technical, sentiment,
// market, ml). implementations must only use data timestamped on or
// before asOfDate - the whole engine's anti-lookahead guarantee rests
// on providers honoring this
type AnalysisProvider interface {
	SignalType() domain.SignalType
	Analyze(ctx context.Context, symbol string, asOfDate time.Time) (*domain.ScoreDetail, error)
}

type AnalysisCollectorService interface {
	Collect(ctx context.Context, symbol string, asOfDate time.Time) (domain.SignalScores, error)
}

type analysisCollectorHandler struct {
	Providers []AnalysisProvider
}

func NewAnalysisCollectorService(providers []AnalysisProvider) AnalysisCollectorService {
	return analysisCollectorHandler{Providers: providers}
}

// Collect gathers whatever signals are available. an unavailable
// signal is an absent map entry, not an error - downstream scoring
// proceeds on partial information
func (h analysisCollectorHandler) Collect(ctx context.Context, symbol string, asOfDate time.Time) (domain.SignalScores, error) {
	log := logger.FromContext(ctx)
	out := domain.SignalScores{}

	for _, provider := range h.Providers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		detail, err := provider.Analyze(ctx, symbol, asOfDate)
		if errors.As(err, &internal.DataUnavailableError{}) {
			continue
		}
		if err != nil {
			// a broken provider shouldn't sink the whole item -
			// treat it like a missing signal and move on
			log.Warnf("provider %s failed for %s on %s: %s",
				provider.SignalType(), symbol, asOfDate.Format(time.DateOnly), err.Error())
			continue
		}
		out[provider.SignalType()] = *detail
	}

	return out, nil
}
