package l3_service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/loiclinais34/aimarkets-sub003/internal"
	"github.com/loiclinais34/aimarkets-sub003/internal/db/models/postgres/public/model"
	"github.com/loiclinais34/aimarkets-sub003/internal/domain"
	"github.com/loiclinais34/aimarkets-sub003/internal/repository"
	l1_service "github.com/loiclinais34/aimarkets-sub003/internal/service/l1"
	"github.com/loiclinais34/aimarkets-sub003/internal/util"
)

const (
	neutralReturnBand = 0.01
	strongReturnBand  = 0.05
)

var DefaultValidationHorizons = []int{1, 5, 20}

type ValidationStatus string

const (
	ValidationStatusValidated     ValidationStatus = "VALIDATED"
	ValidationStatusNotYetMatured ValidationStatus = "NOT_YET_MATURED"
	ValidationStatusFailed        ValidationStatus = "FAILED"
)

type ValidateItemResult struct {
	Symbol             string
	Date               time.Time
	HorizonTradingDays int
	Status             ValidationStatus
	Validation         *model.OpportunityValidation
	Err                error
}

type ValidateOpportunityInput struct {
	Opportunity model.Opportunity
	Horizons    []int
	Cache       *l1_service.PriceCache
}

type ValidationService interface {
	// ValidateOpportunity scores one opportunity against every
	// requested horizon. horizons that have not matured yet are
	// skipped without writing anything; a later pass picks them up
	ValidateOpportunity(ctx context.Context, in ValidateOpportunityInput) []ValidateItemResult
}

type validationServiceHandler struct {
	Db                              *sql.DB
	OpportunityValidationRepository repository.OpportunityValidationRepository
}

func NewValidationService(db *sql.DB, opportunityValidationRepository repository.OpportunityValidationRepository) ValidationService {
	return validationServiceHandler{
		Db:                              db,
		OpportunityValidationRepository: opportunityValidationRepository,
	}
}

func (h validationServiceHandler) ValidateOpportunity(ctx context.Context, in ValidateOpportunityInput) []ValidateItemResult {
	horizons := in.Horizons
	if len(horizons) == 0 {
		horizons = DefaultValidationHorizons
	}

	results := []ValidateItemResult{}
	for _, horizon := range horizons {
		result := ValidateItemResult{
			Symbol:             in.Opportunity.Symbol,
			Date:               in.Opportunity.Date,
			HorizonTradingDays: horizon,
		}

		validation, err := ComputeValidation(in.Cache, in.Opportunity, horizon)
		switch {
		case errors.As(err, &internal.NotYetMaturedError{}):
			result.Status = ValidationStatusNotYetMatured
			result.Err = err
		case err != nil:
			result.Status = ValidationStatusFailed
			result.Err = err
		default:
			err = util.Retry(ctx, 3, 100*time.Millisecond, isTransientStoreError, func() error {
				return h.OpportunityValidationRepository.Upsert(h.Db, validation)
			})
			if err != nil {
				result.Status = ValidationStatusFailed
				result.Err = err
			} else {
				result.Status = ValidationStatusValidated
				result.Validation = validation
			}
		}

		results = append(results, result)
	}

	return results
}

// isTransientStoreError treats anything that is not one of our typed
// domain errors as potentially transient and worth another attempt
func isTransientStoreError(err error) bool {
	return !internal.IsDomainError(err)
}

// ComputeValidation resolves the realized price exactly n trading days
// after generation and scores the recommendation against it. the target
// date comes from the trading calendar, never calendar-day arithmetic
func ComputeValidation(cache *l1_service.PriceCache, opportunity model.Opportunity, horizonTradingDays int) (*model.OpportunityValidation, error) {
	targetDate, err := cache.AdvanceTradingDays(opportunity.Date, horizonTradingDays)
	if err != nil {
		return nil, err
	}

	realizedPrice, err := cache.GetExact(opportunity.Symbol, targetDate)
	if err != nil {
		// the calendar has matured but this symbol has no print on the
		// target day. treat it as not matured rather than failing so a
		// later ingest can still complete the validation
		if errors.As(err, &internal.DataUnavailableError{}) {
			return nil, internal.NotYetMaturedError{
				Err: fmt.Errorf("no realized price for %s on %s: %w", opportunity.Symbol, targetDate.Format(time.DateOnly), err),
			}
		}
		return nil, err
	}

	priceAtGeneration := opportunity.PriceAtGeneration.InexactFloat64()
	if priceAtGeneration <= 0 {
		return nil, internal.ComputationError{
			Err: fmt.Errorf("degenerate generation price %f for %s on %s", priceAtGeneration, opportunity.Symbol, opportunity.Date.Format(time.DateOnly)),
		}
	}

	realizedReturn := (realizedPrice - priceAtGeneration) / priceAtGeneration

	return &model.OpportunityValidation{
		OpportunityID:         opportunity.OpportunityID,
		HorizonTradingDays:    int32(horizonTradingDays),
		RealizedPrice:         decimal.NewFromFloat(realizedPrice),
		RealizedReturn:        realizedReturn,
		RecommendationCorrect: recommendationCorrect(domain.Recommendation(opportunity.Recommendation), realizedReturn),
		PerformanceCategory:   string(categorizeReturn(realizedReturn)),
		ComputedAt:            time.Now().UTC(),
	}, nil
}

// recommendationCorrect checks direction only, not magnitude. HOLD
// takes no directional view so it is never counted as wrong
func recommendationCorrect(recommendation domain.Recommendation, realizedReturn float64) bool {
	switch {
	case recommendation.IsBuy():
		return realizedReturn > 0
	case recommendation.IsSell():
		return realizedReturn < 0
	default:
		return true
	}
}

func categorizeReturn(realizedReturn float64) domain.PerformanceCategory {
	abs := math.Abs(realizedReturn)
	switch {
	case abs < neutralReturnBand:
		return domain.PerformanceCategoryNeutral
	case realizedReturn >= strongReturnBand:
		return domain.PerformanceCategoryStrongPositive
	case realizedReturn > 0:
		return domain.PerformanceCategoryPositive
	case realizedReturn <= -strongReturnBand:
		return domain.PerformanceCategoryStrongNegative
	default:
		return domain.PerformanceCategoryNegative
	}
}
