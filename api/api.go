package api

import (
	"database/sql"
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/loiclinais34/aimarkets-sub003/internal"
	"github.com/loiclinais34/aimarkets-sub003/internal/app"
	"github.com/loiclinais34/aimarkets-sub003/internal/repository"
)

type ApiHandler struct {
	Db                              *sql.DB
	BatchRunner                     app.BatchRunner
	JobService                      *JobService
	TickerRepository                repository.TickerRepository
	EodPriceRepository              repository.EodPriceRepository
	OpportunityRepository           repository.OpportunityRepository
	OpportunityValidationRepository repository.OpportunityValidationRepository
	JwtSecret                       string
}

func (m ApiHandler) StartApi(port int) error {
	return m.Router().Run(fmt.Sprintf(":%d", port))
}

func (m ApiHandler) Router() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to aimarkets"})
	})
	router.GET("/opportunities", m.getOpportunities)
	router.GET("/opportunities/:id", m.getOpportunity)
	router.GET("/validationStats", m.getValidationStats)
	router.GET("/jobs/:id", m.getJob)

	// job triggers mutate the store, so they sit behind auth
	protected := router.Group("/", m.authMiddleware())
	protected.POST("/generateOpportunities", m.generateOpportunities)
	protected.POST("/validateOpportunities", m.validateOpportunities)
	protected.POST("/updatePrices", m.updatePrices)

	return router
}

func returnErrorJson(err error, c *gin.Context) {
	code := 500
	if internal.IsDomainError(err) {
		code = 400
	}
	returnErrorJsonCode(err, c, code)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}
