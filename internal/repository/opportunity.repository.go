package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/loiclinais34/aimarkets-sub003/internal/db/models/postgres/public/model"
	"github.com/loiclinais34/aimarkets-sub003/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type OpportunityListFilter struct {
	Symbols []string
	MinDate *time.Time
	MaxDate *time.Time
}

type OpportunityRepository interface {
	Get(symbol string, date time.Time) (*model.Opportunity, error)
	GetByID(opportunityID uuid.UUID) (*model.Opportunity, error)
	Upsert(tx qrm.Executable, in *model.Opportunity) error
	List(filter OpportunityListFilter) ([]model.Opportunity, error)
}

type opportunityRepositoryHandler struct {
	Db *sql.DB
}

func NewOpportunityRepository(db *sql.DB) OpportunityRepository {
	return opportunityRepositoryHandler{Db: db}
}

// Get returns nil without error when no record exists for the
// (symbol, date) key - absence is a normal answer here, not a failure
func (h opportunityRepositoryHandler) Get(symbol string, date time.Time) (*model.Opportunity, error) {
	query := table.Opportunity.
		SELECT(table.Opportunity.AllColumns).
		WHERE(postgres.AND(
			table.Opportunity.Symbol.EQ(postgres.String(symbol)),
			table.Opportunity.Date.EQ(postgres.DateT(date)),
		))

	result := model.Opportunity{}
	err := query.Query(h.Db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get opportunity for %s on %v: %w", symbol, date, err)
	}

	return &result, nil
}

func (h opportunityRepositoryHandler) GetByID(opportunityID uuid.UUID) (*model.Opportunity, error) {
	query := table.Opportunity.
		SELECT(table.Opportunity.AllColumns).
		WHERE(table.Opportunity.OpportunityID.EQ(postgres.UUID(opportunityID)))

	result := model.Opportunity{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get opportunity %s: %w", opportunityID, err)
	}

	return &result, nil
}

// Upsert replaces every mutable field on conflict and bumps
// updated_at; opportunity_id and created_at survive regeneration
func (h opportunityRepositoryHandler) Upsert(tx qrm.Executable, in *model.Opportunity) error {
	if in.OpportunityID == uuid.Nil {
		in.OpportunityID = uuid.New()
	}
	now := time.Now().UTC()
	in.CreatedAt = now
	in.UpdatedAt = now

	t := table.Opportunity
	query := t.INSERT(t.AllColumns).
		MODEL(in).
		ON_CONFLICT(t.Symbol, t.Date).
		DO_UPDATE(
			postgres.SET(
				t.TechnicalScore.SET(t.EXCLUDED.TechnicalScore),
				t.TechnicalConfidence.SET(t.EXCLUDED.TechnicalConfidence),
				t.SentimentScore.SET(t.EXCLUDED.SentimentScore),
				t.SentimentConfidence.SET(t.EXCLUDED.SentimentConfidence),
				t.MarketScore.SET(t.EXCLUDED.MarketScore),
				t.MarketConfidence.SET(t.EXCLUDED.MarketConfidence),
				t.MlScore.SET(t.EXCLUDED.MlScore),
				t.MlConfidence.SET(t.EXCLUDED.MlConfidence),
				t.CompositeScore.SET(t.EXCLUDED.CompositeScore),
				t.ConfidenceLevel.SET(t.EXCLUDED.ConfidenceLevel),
				t.Recommendation.SET(t.EXCLUDED.Recommendation),
				t.RiskLevel.SET(t.EXCLUDED.RiskLevel),
				t.PriceAtGeneration.SET(t.EXCLUDED.PriceAtGeneration),
				t.UpdatedAt.SET(t.EXCLUDED.UpdatedAt),
			),
		)

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to upsert opportunity for %s on %v: %w", in.Symbol, in.Date, err)
	}

	return nil
}

func (h opportunityRepositoryHandler) List(filter OpportunityListFilter) ([]model.Opportunity, error) {
	expressions := []postgres.BoolExpression{}
	if len(filter.Symbols) > 0 {
		symbolExpressions := []postgres.Expression{}
		for _, s := range filter.Symbols {
			symbolExpressions = append(symbolExpressions, postgres.String(s))
		}
		expressions = append(expressions, table.Opportunity.Symbol.IN(symbolExpressions...))
	}
	if filter.MinDate != nil {
		expressions = append(expressions, table.Opportunity.Date.GT_EQ(postgres.DateT(*filter.MinDate)))
	}
	if filter.MaxDate != nil {
		expressions = append(expressions, table.Opportunity.Date.LT_EQ(postgres.DateT(*filter.MaxDate)))
	}

	query := table.Opportunity.
		SELECT(table.Opportunity.AllColumns).
		ORDER_BY(table.Opportunity.Date.ASC(), table.Opportunity.Symbol.ASC())
	if len(expressions) > 0 {
		query = query.WHERE(postgres.AND(expressions...))
	}

	out := []model.Opportunity{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list opportunities: %w", err)
	}

	return out, nil
}
