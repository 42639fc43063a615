package cmd

import (
	"context"
	"fmt"

	"verdant/api"
	"verdant/internal/logger"
	"verdant/internal/repository"
	"verdant/internal/service"
	"verdant/internal/util"
)

func InitializeDependencies() (*api.ApiHandler, error) {
	log := logger.New()

	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	gptRepository, err := repository.NewGptRepository(secrets.OpenAIApiKey)
	if err != nil {
		return nil, err
	}

	catalogRepository, err := repository.NewCatalogRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	quoteRepository := repository.NewQuoteRepository()
	priceService := service.NewPriceService(quoteRepository, catalogRepository.Tickers(), log)

	screeningService := service.NewScreeningService(catalogRepository, priceService, log)
	priceService.SetOnRefreshed(func() {
		if _, err := screeningService.Recalculate(context.Background()); err != nil {
			log.Warnf("failed to recompute after quote refresh: %v", err)
		}
	})

	adviceService := service.NewAdviceService(gptRepository, screeningService, log)

	apiHandler := &api.ApiHandler{
		ScreeningService: screeningService,
		AdviceService:    adviceService,
		PriceService:     priceService,
		Log:              log,
	}

	return apiHandler, nil
}
