package cmd

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq"

	"github.com/loiclinais34/aimarkets-sub003/api"
	"github.com/loiclinais34/aimarkets-sub003/internal"
	"github.com/loiclinais34/aimarkets-sub003/internal/app"
	"github.com/loiclinais34/aimarkets-sub003/internal/repository"
	l1_service "github.com/loiclinais34/aimarkets-sub003/internal/service/l1"
	l2_service "github.com/loiclinais34/aimarkets-sub003/internal/service/l2"
	l3_service "github.com/loiclinais34/aimarkets-sub003/internal/service/l3"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := internal.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	tickerRepository := repository.NewTickerRepository(dbConn)
	eodPriceRepository := repository.NewEodPriceRepository(dbConn)
	opportunityRepository := repository.NewOpportunityRepository(dbConn)
	opportunityValidationRepository := repository.NewOpportunityValidationRepository(dbConn)

	priceService := l1_service.NewPriceService(dbConn, eodPriceRepository)
	opportunityService := l3_service.NewOpportunityService(dbConn, opportunityRepository)
	validationService := l3_service.NewValidationService(dbConn, opportunityValidationRepository)

	providers := func(cache *l1_service.PriceCache) []l2_service.AnalysisProvider {
		return []l2_service.AnalysisProvider{
			l2_service.NewTechnicalProvider(cache),
		}
	}

	batchRunner := app.NewBatchRunner(
		dbConn,
		tickerRepository,
		opportunityRepository,
		priceService,
		opportunityService,
		validationService,
		providers,
	)

	apiHandler := &api.ApiHandler{
		Db:                              dbConn,
		BatchRunner:                     batchRunner,
		JobService:                      api.NewJobService(),
		TickerRepository:                tickerRepository,
		EodPriceRepository:              eodPriceRepository,
		OpportunityRepository:           opportunityRepository,
		OpportunityValidationRepository: opportunityValidationRepository,
		JwtSecret:                       secrets.JwtSecret,
	}

	return apiHandler, nil
}
