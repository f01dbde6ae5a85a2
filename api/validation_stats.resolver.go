package api

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/loiclinais34/aimarkets-sub003/internal/calculator"
	"github.com/loiclinais34/aimarkets-sub003/internal/domain"
)

func (m ApiHandler) getValidationStats(c *gin.Context) {
	var horizon *int32
	if raw := c.Query("horizon"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("failed to parse horizon: %w", err), c, 400)
			return
		}
		h := int32(parsed)
		horizon = &h
	}

	rows, err := m.OpportunityValidationRepository.ListOutcomes(horizon)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	outcomes := []calculator.ValidationOutcome{}
	for _, row := range rows {
		outcomes = append(outcomes, calculator.ValidationOutcome{
			Recommendation:        domain.Recommendation(row.Recommendation),
			HorizonTradingDays:    row.HorizonTradingDays,
			RealizedReturn:        row.RealizedReturn,
			RecommendationCorrect: row.RecommendationCorrect,
		})
	}

	stats, err := calculator.CalculateValidationStats(outcomes)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, stats)
}
