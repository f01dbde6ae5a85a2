package api

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/loiclinais34/aimarkets-sub003/internal/app"
)

type validateOpportunitiesRequest struct {
	Symbols   []string `json:"symbols"`
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
	Horizons  []int    `json:"validationHorizons"`
}

func (m ApiHandler) validateOpportunities(c *gin.Context) {
	var requestBody validateOpportunitiesRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}

	startDate, err := parseOptionalDate(requestBody.StartDate)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	endDate, err := parseOptionalDate(requestBody.EndDate)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	jobID := m.JobService.Start("validateOpportunities", func(ctx context.Context, progress chan<- app.ProgressUpdate) (*app.BatchReport, error) {
		return m.BatchRunner.RunValidation(ctx, app.ValidateBatchInput{
			Symbols:   requestBody.Symbols,
			StartDate: startDate,
			EndDate:   endDate,
			Horizons:  requestBody.Horizons,
			Progress:  progress,
		})
	})

	c.JSON(202, gin.H{"jobID": jobID})
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, fmt.Errorf("failed to parse date %q: %w", s, err)
	}
	return &d, nil
}
