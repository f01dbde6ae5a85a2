package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/loiclinais34/aimarkets-sub003/internal/db/models/postgres/public/model"
	"github.com/loiclinais34/aimarkets-sub003/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

// ValidationOutcomeRow joins a validation row with the recommendation
// it was scored against, for hit-rate reporting
type ValidationOutcomeRow struct {
	model.OpportunityValidation

	Recommendation string
}

type OpportunityValidationRepository interface {
	Upsert(tx qrm.Executable, in *model.OpportunityValidation) error
	ListForOpportunity(opportunityID uuid.UUID) ([]model.OpportunityValidation, error)
	ListOutcomes(horizonTradingDays *int32) ([]ValidationOutcomeRow, error)
}

type opportunityValidationRepositoryHandler struct {
	Db *sql.DB
}

func NewOpportunityValidationRepository(db *sql.DB) OpportunityValidationRepository {
	return opportunityValidationRepositoryHandler{Db: db}
}

// Upsert is keyed by (opportunity_id, horizon_trading_days) so
// re-running a validation pass is always safe
func (h opportunityValidationRepositoryHandler) Upsert(tx qrm.Executable, in *model.OpportunityValidation) error {
	if in.ValidationID == uuid.Nil {
		in.ValidationID = uuid.New()
	}
	now := time.Now().UTC()
	in.CreatedAt = now
	in.UpdatedAt = now

	t := table.OpportunityValidation
	query := t.INSERT(t.AllColumns).
		MODEL(in).
		ON_CONFLICT(t.OpportunityID, t.HorizonTradingDays).
		DO_UPDATE(
			postgres.SET(
				t.RealizedPrice.SET(t.EXCLUDED.RealizedPrice),
				t.RealizedReturn.SET(t.EXCLUDED.RealizedReturn),
				t.RecommendationCorrect.SET(t.EXCLUDED.RecommendationCorrect),
				t.PerformanceCategory.SET(t.EXCLUDED.PerformanceCategory),
				t.ComputedAt.SET(t.EXCLUDED.ComputedAt),
				t.UpdatedAt.SET(t.EXCLUDED.UpdatedAt),
			),
		)

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to upsert validation for opportunity %s horizon %d: %w", in.OpportunityID, in.HorizonTradingDays, err)
	}

	return nil
}

func (h opportunityValidationRepositoryHandler) ListForOpportunity(opportunityID uuid.UUID) ([]model.OpportunityValidation, error) {
	query := table.OpportunityValidation.
		SELECT(table.OpportunityValidation.AllColumns).
		WHERE(table.OpportunityValidation.OpportunityID.EQ(postgres.UUID(opportunityID))).
		ORDER_BY(table.OpportunityValidation.HorizonTradingDays.ASC())

	out := []model.OpportunityValidation{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list validations for opportunity %s: %w", opportunityID, err)
	}

	return out, nil
}

func (h opportunityValidationRepositoryHandler) ListOutcomes(horizonTradingDays *int32) ([]ValidationOutcomeRow, error) {
	query := table.OpportunityValidation.
		INNER_JOIN(
			table.Opportunity,
			table.Opportunity.OpportunityID.EQ(table.OpportunityValidation.OpportunityID),
		).
		SELECT(
			table.OpportunityValidation.AllColumns,
			table.Opportunity.Recommendation.AS("validation_outcome_row.recommendation"),
		)
	if horizonTradingDays != nil {
		query = query.WHERE(
			table.OpportunityValidation.HorizonTradingDays.EQ(postgres.Int32(*horizonTradingDays)),
		)
	}

	out := []ValidationOutcomeRow{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list validation outcomes: %w", err)
	}

	return out, nil
}
