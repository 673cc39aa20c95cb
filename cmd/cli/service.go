package main

import (
	"context"

	"github.com/ijalalfrz/travel-planner-service/internal/app/config"
	"github.com/ijalalfrz/travel-planner-service/internal/app/service"
	"github.com/ijalalfrz/travel-planner-service/internal/pkg/itinerary"
	"github.com/ijalalfrz/travel-planner-service/internal/pkg/provider"
	"github.com/ijalalfrz/travel-planner-service/internal/pkg/provider/googleflights"
	"github.com/ijalalfrz/travel-planner-service/internal/pkg/provider/googlehotels"
)

// newService builds the planner service without redis: no cache and no
// distributed rate limit.
func newService(ctx context.Context, withPlanner bool) (*service.PlannerService, error) {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, err
	}

	providerConfig := provider.Config{
		BaseURL:    cfg.SerpAPI.BaseURL,
		APIKey:     cfg.SerpAPI.APIKey,
		Timeout:    cfg.SerpAPI.Timeout,
		MaxRetries: cfg.SerpAPI.MaxRetries,
		Currency:   cfg.SerpAPI.Currency,
		Language:   cfg.SerpAPI.Language,
		Country:    cfg.SerpAPI.Country,
	}

	svc := service.NewPlannerService(
		googleflights.NewProvider(providerConfig),
		googlehotels.NewProvider(providerConfig),
		nil, nil, 0, 0,
	)

	if withPlanner && cfg.LLM.Enabled() {
		planner, err := itinerary.NewGeminiPlanner(ctx, itinerary.Config{
			APIKey:      cfg.LLM.APIKey,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
		})
		if err != nil {
			return nil, err
		}

		svc.Planner = planner
	}

	return svc, nil
}
