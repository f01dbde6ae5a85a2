package api

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/loiclinais34/aimarkets-sub003/internal/db/models/postgres/public/model"
	"github.com/loiclinais34/aimarkets-sub003/internal/repository"
	l3_service "github.com/loiclinais34/aimarkets-sub003/internal/service/l3"
)

type opportunitySignal struct {
	Score      float64 `json:"score"`
	Confidence float64 `json:"confidence"`
}

type opportunityResponse struct {
	ID                uuid.UUID                    `json:"id"`
	Symbol            string                       `json:"symbol"`
	Date              string                       `json:"date"`
	Signals           map[string]opportunitySignal `json:"signals"`
	CompositeScore    float64                      `json:"compositeScore"`
	ConfidenceLevel   float64                      `json:"confidenceLevel"`
	Recommendation    string                       `json:"recommendation"`
	RiskLevel         string                       `json:"riskLevel"`
	PriceAtGeneration string                       `json:"priceAtGeneration"`
	CreatedAt         time.Time                    `json:"createdAt"`
	UpdatedAt         time.Time                    `json:"updatedAt"`
	Validations       []validationResponse         `json:"validations,omitempty"`
}

type validationResponse struct {
	HorizonTradingDays    int32   `json:"horizonTradingDays"`
	RealizedPrice         string  `json:"realizedPrice"`
	RealizedReturn        float64 `json:"realizedReturn"`
	RecommendationCorrect bool    `json:"recommendationCorrect"`
	PerformanceCategory   string  `json:"performanceCategory"`
	ComputedAt            string  `json:"computedAt"`
}

func (m ApiHandler) getOpportunities(c *gin.Context) {
	filter := repository.OpportunityListFilter{}
	if symbols := c.Query("symbols"); symbols != "" {
		filter.Symbols = strings.Split(symbols, ",")
	}
	minDate, err := parseOptionalDate(c.Query("minDate"))
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	maxDate, err := parseOptionalDate(c.Query("maxDate"))
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	filter.MinDate = minDate
	filter.MaxDate = maxDate

	opportunities, err := m.OpportunityRepository.List(filter)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	includeValidations := c.Query("includeValidations") == "true"

	out := []opportunityResponse{}
	for _, opportunity := range opportunities {
		response, err := m.opportunityToResponse(opportunity, includeValidations)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		out = append(out, response)
	}

	c.JSON(200, out)
}

func (m ApiHandler) opportunityToResponse(opportunity model.Opportunity, includeValidations bool) (opportunityResponse, error) {
	signals := map[string]opportunitySignal{}
	for signalType, detail := range l3_service.SignalScoresFromColumns(opportunity) {
		signals[string(signalType)] = opportunitySignal{
			Score:      detail.Score,
			Confidence: detail.Confidence,
		}
	}

	var validations []validationResponse
	if includeValidations {
		rows, err := m.OpportunityValidationRepository.ListForOpportunity(opportunity.OpportunityID)
		if err != nil {
			return opportunityResponse{}, err
		}
		for _, row := range rows {
			validations = append(validations, validationResponse{
				HorizonTradingDays:    row.HorizonTradingDays,
				RealizedPrice:         row.RealizedPrice.String(),
				RealizedReturn:        row.RealizedReturn,
				RecommendationCorrect: row.RecommendationCorrect,
				PerformanceCategory:   row.PerformanceCategory,
				ComputedAt:            row.ComputedAt.Format(time.RFC3339),
			})
		}
	}

	return opportunityResponse{
		ID:                opportunity.OpportunityID,
		Symbol:            opportunity.Symbol,
		Date:              opportunity.Date.Format(time.DateOnly),
		Signals:           signals,
		CompositeScore:    opportunity.CompositeScore,
		ConfidenceLevel:   opportunity.ConfidenceLevel,
		Recommendation:    opportunity.Recommendation,
		RiskLevel:         opportunity.RiskLevel,
		PriceAtGeneration: opportunity.PriceAtGeneration.String(),
		CreatedAt:         opportunity.CreatedAt,
		UpdatedAt:         opportunity.UpdatedAt,
		Validations:       validations,
	}, nil
}
