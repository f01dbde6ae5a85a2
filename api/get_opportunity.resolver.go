package api

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

func (m ApiHandler) getOpportunity(c *gin.Context) {
	opportunityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid opportunity id: %w", err), c, 400)
		return
	}

	opportunity, err := m.OpportunityRepository.GetByID(opportunityID)
	if errors.Is(err, qrm.ErrNoRows) {
		returnErrorJsonCode(fmt.Errorf("opportunity %s not found", opportunityID), c, 404)
		return
	}
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	response, err := m.opportunityToResponse(*opportunity, true)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, response)
}
