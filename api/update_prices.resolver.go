package api

import (
	"context"

	"github.com/gin-gonic/gin"

	l1_service "github.com/loiclinais34/aimarkets-sub003/internal/service/l1"
)

func (m ApiHandler) updatePrices(c *gin.Context) {
	err := l1_service.UpdateUniversePrices(
		context.Background(),
		m.Db,
		m.TickerRepository,
		m.EodPriceRepository,
	)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, map[string]string{
		"message": "ok",
	})
}
