package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (m ApiHandler) getJob(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to parse job id: %w", err), c, 400)
		return
	}

	view, ok := m.JobService.Get(id)
	if !ok {
		returnErrorJsonCode(fmt.Errorf("job %s not found", id), c, 404)
		return
	}

	c.JSON(200, view)
}
