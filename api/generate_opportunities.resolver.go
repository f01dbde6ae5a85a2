package api

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/loiclinais34/aimarkets-sub003/internal/app"
	"github.com/loiclinais34/aimarkets-sub003/internal/calculator"
)

type generateOpportunitiesRequest struct {
	Symbols []string `json:"symbols"`
	// either a single date or an inclusive range
	Date      string `json:"date"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Force     bool   `json:"force"`
}

func (m ApiHandler) generateOpportunities(c *gin.Context) {
	var requestBody generateOpportunitiesRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}

	startDate, endDate, err := resolveDateWindow(requestBody.Date, requestBody.StartDate, requestBody.EndDate)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	jobID := m.JobService.Start("generateOpportunities", func(ctx context.Context, progress chan<- app.ProgressUpdate) (*app.BatchReport, error) {
		return m.BatchRunner.RunGeneration(ctx, app.GenerateBatchInput{
			Symbols:   requestBody.Symbols,
			StartDate: startDate,
			EndDate:   endDate,
			Force:     requestBody.Force,
			Config:    calculator.DefaultScoringConfig(),
			Progress:  progress,
		})
	})

	c.JSON(202, gin.H{"jobID": jobID})
}

func resolveDateWindow(date, startDate, endDate string) (time.Time, time.Time, error) {
	if date != "" {
		if startDate != "" || endDate != "" {
			return time.Time{}, time.Time{}, fmt.Errorf("cannot combine date with startDate/endDate")
		}
		d, err := time.Parse(time.DateOnly, date)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("failed to parse date: %w", err)
		}
		return d, d, nil
	}

	start, err := time.Parse(time.DateOnly, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("failed to parse startDate: %w", err)
	}
	end, err := time.Parse(time.DateOnly, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("failed to parse endDate: %w", err)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("endDate precedes startDate")
	}

	return start, end, nil
}
